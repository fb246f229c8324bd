package layout

type labeledValue struct {
	label string
	value string
}

// drawDetails 绘制发票编号与日期；发货日期仅在提供时出现。
func (e *engine) drawDetails(y float64) (float64, error) {
	rows := []labeledValue{
		{"Invoice #", e.inv.Number},
		{"Date", e.formatDate("date", e.inv.Date)},
		{"Due Date", e.formatDate("dueDate", e.inv.DueDate)},
	}
	if e.inv.ShippingDate.Present() {
		rows = append(rows, labeledValue{"Shipping Date", e.formatDate("shippingDate", e.inv.ShippingDate)})
	}

	left := e.geometry.Margin.Left
	width := e.geometry.PrintableWidth()

	// 标题与首行保持在同一页
	y = e.ensureSpace(y, 2*lineHeight)
	e.text(SectionDetails, "Invoice Details", left, y, width, styleHeading)
	y += lineHeight

	for _, row := range rows {
		y = e.ensureSpace(y, lineHeight)
		e.text(SectionDetails, row.label+":", left, y, labelWidth, styleLabel)
		e.text(SectionDetails, row.value, left+labelWidth, y, width-labelWidth, styleBody)
		y += lineHeight
	}
	return y + detailsTrailing, nil
}
