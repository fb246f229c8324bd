package canvasrenderer

import (
	"math"
	"strings"
	"unicode"

	"github.com/ByLCY/faktura/layout"
)

// measurer 返回单行文本的宽度（mm），*canvas.FontFace 满足该接口。
type measurer interface {
	TextWidth(s string) float64
}

// greedyWrapTokens 按宽度贪心折行：优先在空白处分割，单词超宽时在词内拆分。
// 显式换行始终生效；wrap 为 "nowrap" 时只按显式换行划分。
func greedyWrapTokens(content string, width float64, face measurer, wrap string) []layout.TextLine {
	content = strings.ReplaceAll(content, "\r", "")
	if wrap == "nowrap" {
		parts := strings.Split(content, "\n")
		lines := make([]layout.TextLine, 0, len(parts))
		for _, p := range parts {
			lines = append(lines, layout.TextLine{Content: p, Width: face.TextWidth(p)})
		}
		return lines
	}

	limit := width
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var (
		lines   []layout.TextLine
		builder strings.Builder
		current float64
	)
	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, layout.TextLine{})
			}
			return
		}
		// 行尾空白不参与宽度
		text := strings.TrimRightFunc(builder.String(), unicode.IsSpace)
		lines = append(lines, layout.TextLine{Content: text, Width: face.TextWidth(text)})
		builder.Reset()
		current = 0
	}
	push := func(token string, w float64) {
		// 行首空白丢弃
		if builder.Len() == 0 && strings.TrimSpace(token) == "" {
			return
		}
		builder.WriteString(token)
		current += w
	}

	for _, token := range tokenizeContent(content) {
		if token == "\n" {
			emit(true)
			continue
		}
		w := face.TextWidth(token)
		if current > 0 && current+w > limit && strings.TrimSpace(token) != "" {
			emit(false)
		}
		if w <= limit {
			push(token, w)
			continue
		}
		for _, chunk := range splitTokenByWidth(token, limit, face) {
			cw := face.TextWidth(chunk)
			if current > 0 && current+cw > limit {
				emit(false)
			}
			push(chunk, cw)
		}
	}
	emit(true)
	return lines
}

// tokenizeContent 将文本切分为交替的空白/非空白片段，换行单独成为一个片段。
func tokenizeContent(s string) []string {
	var (
		tokens  []string
		builder strings.Builder
		inSpace bool
	)
	flush := func() {
		if builder.Len() > 0 {
			tokens = append(tokens, builder.String())
			builder.Reset()
		}
	}
	for _, r := range s {
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			continue
		}
		isSpace := unicode.IsSpace(r) && r != '\u00a0' // 不间断空格不作为折行点
		if builder.Len() > 0 && inSpace != isSpace {
			flush()
		}
		inSpace = isSpace
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

func splitTokenByWidth(token string, limit float64, face measurer) []string {
	var (
		parts []string
		cur   []rune
	)
	for _, r := range token {
		cur = append(cur, r)
		if len(cur) > 1 && face.TextWidth(string(cur)) > limit {
			parts = append(parts, string(cur[:len(cur)-1]))
			cur = []rune{r}
		}
	}
	if len(cur) > 0 {
		parts = append(parts, string(cur))
	}
	return parts
}
