package layout

// drawHeader 绘制 "INVOICE" 标题与一条横跨可打印宽度的装饰线。
func (e *engine) drawHeader(y float64) (float64, error) {
	y = e.ensureSpace(y, headerHeight)
	left := e.geometry.Margin.Left
	width := e.geometry.PrintableWidth()

	e.text(SectionHeader, "INVOICE", left, y, width, styleTitle)

	ruleY := y + sizeTitle.ToMM() + ruleOffset
	e.surface.Line(Line{
		Section: SectionHeader,
		X1:      left,
		Y1:      ruleY,
		X2:      left + width,
		Y2:      ruleY,
		Color:   colorPrimary,
		Width:   ruleWidth,
	})
	return y + headerHeight, nil
}
