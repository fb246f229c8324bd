// Package wiretext 在电汇信息与用户从银行粘贴的 "Label: value" 自由文本之间互相转换。
package wiretext

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/faktura/invoice"
)

var (
	wireLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Newline", Pattern: `\n`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Text", Pattern: `[^:\n]+`},
	})

	wireParser = participle.MustBuild[document](
		participle.Lexer(wireLexer),
		participle.UseLookahead(2),
	)
)

type document struct {
	Lines []*line `parser:"@@*"`
}

// line 是空行、"Label: value" 或自由文本。
type line struct {
	Blank bool     `parser:"  @Newline"`
	Label *string  `parser:"| ( @Text Colon"`
	Value []string `parser:"    @( Text | Colon )*"`
	Raw   []string `parser:"  | @( Text | Colon )+ ) Newline?"`
}

func (l *line) text() string {
	switch {
	case l.Blank:
		return ""
	case l.Label != nil:
		return *l.Label + ":" + strings.Join(l.Value, "")
	default:
		return strings.Join(l.Raw, "")
	}
}

const additionalHeader = "Additional Information"

type field int

const (
	fieldBank field = iota
	fieldAccountName
	fieldAccountNumber
	fieldRouting
	fieldSwift
	fieldIBAN
	fieldAdditional
)

var labels = map[string]field{
	"bank name":              fieldBank,
	"bank":                   fieldBank,
	"account name":           fieldAccountName,
	"account holder":         fieldAccountName,
	"beneficiary":            fieldAccountName,
	"account number":         fieldAccountNumber,
	"account no.":            fieldAccountNumber,
	"routing number":         fieldRouting,
	"aba":                    fieldRouting,
	"swift code":             fieldSwift,
	"swift":                  fieldSwift,
	"bic":                    fieldSwift,
	"swift/bic":              fieldSwift,
	"iban":                   fieldIBAN,
	"additional information": fieldAdditional,
}

func lookup(label string) (field, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(label), " "))
	f, ok := labels[key]
	return f, ok
}

// Parse 读取带标签的电汇信息。标签不区分大小写，值中可以包含冒号；
// 无法识别的行以及 "Additional Information:" 之后的所有行归入 AdditionalInfo。
func Parse(text string) (invoice.WireInstructions, error) {
	var out invoice.WireInstructions
	doc, err := wireParser.ParseString("", strings.ReplaceAll(text, "\r", ""))
	if err != nil {
		return out, fmt.Errorf("解析电汇信息失败: %w", err)
	}

	var (
		extra        []string
		inAdditional bool
	)
	for _, ln := range doc.Lines {
		if inAdditional {
			extra = append(extra, strings.TrimRight(ln.text(), " \t"))
			continue
		}
		if ln.Blank {
			continue
		}
		if ln.Label == nil {
			extra = append(extra, strings.TrimSpace(ln.text()))
			continue
		}
		f, ok := lookup(*ln.Label)
		if !ok {
			extra = append(extra, strings.TrimSpace(ln.text()))
			continue
		}
		value := strings.TrimSpace(strings.Join(ln.Value, ""))
		switch f {
		case fieldBank:
			out.BankName = value
		case fieldAccountName:
			out.AccountName = value
		case fieldAccountNumber:
			out.AccountNumber = value
		case fieldRouting:
			out.RoutingNumber = value
		case fieldSwift:
			out.SwiftCode = value
		case fieldIBAN:
			out.IBAN = value
		case fieldAdditional:
			inAdditional = true
			if value != "" {
				extra = append(extra, value)
			}
		}
	}
	out.AdditionalInfo = strings.TrimSpace(strings.Join(extra, "\n"))
	return out, nil
}

// Format 输出六行带标签的字段；有附加信息时再输出空行与附加信息块。
func Format(w invoice.WireInstructions) string {
	var b strings.Builder
	for _, kv := range [][2]string{
		{"Bank Name", w.BankName},
		{"Account Name", w.AccountName},
		{"Account Number", w.AccountNumber},
		{"Routing Number", w.RoutingNumber},
		{"SWIFT Code", w.SwiftCode},
		{"IBAN", w.IBAN},
	} {
		b.WriteString(kv[0] + ":")
		if v := singleLine(kv[1]); v != "" {
			b.WriteString(" " + v)
		}
		b.WriteByte('\n')
	}
	if info := strings.TrimSpace(w.AdditionalInfo); info != "" {
		b.WriteString("\n" + additionalHeader + ":\n")
		b.WriteString(info)
		b.WriteByte('\n')
	}
	return b.String()
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
