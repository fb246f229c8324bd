package layout

import (
	"strings"
	"unicode"
)

// drawNotes 依次绘制备注与条款，空白内容的块不出现。
func (e *engine) drawNotes(y float64) (float64, error) {
	var err error
	if strings.TrimSpace(e.inv.Notes) != "" {
		if y, err = e.drawTextBlock("Notes", e.inv.Notes, y); err != nil {
			return y, err
		}
	}
	if strings.TrimSpace(e.inv.Terms) != "" {
		if y, err = e.drawTextBlock("Terms & Conditions", e.inv.Terms, y); err != nil {
			return y, err
		}
	}
	return y, nil
}

// drawTextBlock 游标按实际折出的行数推进，每行前检查是否需要换页。
func (e *engine) drawTextBlock(title, body string, y float64) (float64, error) {
	left := e.geometry.Margin.Left
	width := e.geometry.PrintableWidth()

	lines, err := e.wrap(strings.TrimRightFunc(body, unicode.IsSpace), width, styleBody)
	if err != nil {
		return y, err
	}

	y = e.ensureSpace(y+sectionGap, lineHeight+textLeading)
	e.text(SectionNotes, title, left, y, width, styleHeading)
	y += lineHeight
	for _, ln := range lines {
		y = e.ensureSpace(y, textLeading)
		e.text(SectionNotes, ln, left, y, width, styleBody)
		y += textLeading
	}
	return y, nil
}
