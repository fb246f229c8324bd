// Package format 提供发票渲染使用的货币与日期格式化。
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale 用于映射表之外的币种。
const DefaultLocale = "en-US"

const nbsp = "\u00a0"

var currencyLocales = map[string]string{
	"BRL": "pt-BR",
	"USD": "en-US",
	"EUR": "de-DE",
	"GBP": "en-GB",
}

var currencySymbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

type localeStyle struct {
	tag        language.Tag
	symbolLast bool // 1.234,56 €
	spaced     bool // R$ 1.234,56
}

var localeStyles = map[string]localeStyle{
	"pt-BR": {tag: language.MustParse("pt-BR"), spaced: true},
	"en-US": {tag: language.AmericanEnglish},
	"de-DE": {tag: language.MustParse("de-DE"), symbolLast: true, spaced: true},
	"en-GB": {tag: language.BritishEnglish},
}

// LocaleFor 返回币种对应的工作 locale，未知币种回退到 en-US。
func LocaleFor(code string) string {
	if loc, ok := currencyLocales[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return loc
	}
	return DefaultLocale
}

// Currency 按币种 locale 输出金额，固定两位小数。
// 无法格式化时回退为 "<CODE> <amount>"，不会 panic。
func Currency(amount float64, code string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallbackCurrency(amount, code)
		}
	}()

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fallbackCurrency(amount, code)
	}
	iso, ok := normalizeCode(code)
	if !ok {
		return fallbackCurrency(amount, code)
	}
	style := localeStyles[LocaleFor(iso)]

	rounded := decimal.NewFromFloat(amount).Round(2)
	negative := rounded.IsNegative()
	abs, _ := rounded.Abs().Float64()

	p := message.NewPrinter(style.tag)
	digits := p.Sprint(number.Decimal(abs, number.Scale(2)))

	symbol, known := currencySymbols[iso]
	if !known {
		// 无专用符号时显示 ISO 代码，并与数字之间保留不换行空格。
		symbol = iso
	}

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	switch {
	case style.symbolLast:
		b.WriteString(digits)
		b.WriteString(nbsp)
		b.WriteString(symbol)
	case style.spaced || !known:
		b.WriteString(symbol)
		b.WriteString(nbsp)
		b.WriteString(digits)
	default:
		b.WriteString(symbol)
		b.WriteString(digits)
	}
	return b.String()
}

// normalizeCode 接受任意大小写的三位字母代码。已登记的代码使用 x/text 的规范写法。
func normalizeCode(code string) (string, bool) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return "", false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	if unit, err := currency.ParseISO(c); err == nil {
		return unit.String(), true
	}
	return c, true
}

// fallbackCurrency 不经过 decimal，NaN/Inf 也能输出。
func fallbackCurrency(amount float64, code string) string {
	return code + " " + strconv.FormatFloat(amount, 'f', 2, 64)
}
