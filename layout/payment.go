package layout

import "strings"

// paymentLabelWidth 付款信息标签较长，数值列比其它段落更靠右。
const paymentLabelWidth = 35.0

// drawPayment 绘制电汇信息与中转行。没有任何付款信息时整段省略。
func (e *engine) drawPayment(y float64) (float64, error) {
	if !e.inv.HasPayment() {
		return y, nil
	}
	left := e.geometry.Margin.Left
	width := e.geometry.PrintableWidth()

	y = e.ensureSpace(y+paymentLeadIn, 2*lineHeight)
	e.text(SectionPayment, "Payment Instructions", left, y, width, styleHeading)
	y += lineHeight

	wire := e.inv.WireInstructions
	fields := []labeledValue{
		{"Bank Name", wire.BankName},
		{"Account Name", wire.AccountName},
		{"Account Number", wire.AccountNumber},
		{"Routing Number", wire.RoutingNumber},
		{"SWIFT Code", wire.SwiftCode},
		{"IBAN", wire.IBAN},
	}
	if !wire.IsZero() {
		y = e.ensureSpace(y, 2*lineHeight)
		e.text(SectionPayment, "Wire Instructions:", left, y, width, styleLabel.sized(sizeSmall))
		y += lineHeight
		y = e.drawFields(y, fields)

		if info := strings.TrimSpace(wire.AdditionalInfo); info != "" {
			lines, err := e.wrap(info, width, styleBody.sized(sizeSmall))
			if err != nil {
				return y, err
			}
			y = e.ensureSpace(y+blockSpacing, lineHeight+textLeading)
			e.text(SectionPayment, "Additional Information:", left, y, width, styleLabel.sized(sizeSmall))
			y += lineHeight
			for _, ln := range lines {
				y = e.ensureSpace(y, textLeading)
				e.text(SectionPayment, ln, left, y, width, styleBody.sized(sizeSmall).colored(colorLightText))
				y += textLeading
			}
		}
	}

	if bank := e.inv.IntermediaryBank; !bank.IsZero() {
		y = e.ensureSpace(y+blockSpacing, 2*lineHeight)
		e.text(SectionPayment, "Intermediary Bank:", left, y, width, styleLabel.sized(sizeSmall))
		y += lineHeight
		y = e.drawFields(y, []labeledValue{
			{"Country", bank.Country},
			{"Bank Name", bank.BankName},
			{"SWIFT Code", bank.SwiftCode},
		})
	}
	return y + sectionGap, nil
}

// drawFields 逐行绘制非空的 label/value。
func (e *engine) drawFields(y float64, fields []labeledValue) float64 {
	left := e.geometry.Margin.Left
	width := e.geometry.PrintableWidth()
	st := styleBody.sized(sizeSmall)
	for _, f := range fields {
		value := strings.TrimSpace(f.value)
		if value == "" {
			continue
		}
		y = e.ensureSpace(y, lineHeight)
		e.text(SectionPayment, f.label+":", left, y, paymentLabelWidth, st.bold())
		e.text(SectionPayment, value, left+paymentLabelWidth, y, width-paymentLabelWidth, st)
		y += lineHeight
	}
	return y
}
