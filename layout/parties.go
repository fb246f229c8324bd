package layout

import "strings"

// drawParties 并排绘制收款对象（左）与收款方（右）。
// 两栏逐行输出，只有该栏在当前行仍有内容时才绘制，因此两栏始终对齐。
func (e *engine) drawParties(y float64) (float64, error) {
	colWidth := e.geometry.PrintableWidth()/2 - columnGutter
	leftX := e.geometry.Margin.Left
	rightX := leftX + e.geometry.PrintableWidth()/2 + columnGutter/2

	st := styleBody.sized(sizeSmall)

	recipient := []string{e.inv.ClientName}
	recipient = append(recipient, e.inv.ClientAddress.Lines()...)
	recipient = append(recipient, e.inv.ClientEmail)

	company := e.inv.CompanyDetails
	payee := []string{company.Name}
	payee = append(payee, company.Address.Lines()...)
	payee = append(payee, company.Phone, company.Email)

	leftLines, err := e.flattenLines(recipient, colWidth, st)
	if err != nil {
		return y, err
	}
	rightLines, err := e.flattenLines(payee, colWidth, st)
	if err != nil {
		return y, err
	}

	y = e.ensureSpace(y, 2*lineHeight)
	e.text(SectionParties, "Recipient:", leftX, y, colWidth, st.bold())
	e.text(SectionParties, "Payee:", rightX, y, colWidth, st.bold())
	y += lineHeight

	rows := max(len(leftLines), len(rightLines))
	for i := 0; i < rows; i++ {
		y = e.ensureSpace(y, lineHeight)
		if i < len(leftLines) {
			e.text(SectionParties, leftLines[i], leftX, y, colWidth, st)
		}
		if i < len(rightLines) {
			e.text(SectionParties, rightLines[i], rightX, y, colWidth, st)
		}
		y += lineHeight
	}
	return y + lineHeight, nil
}

// flattenLines 丢弃空条目，将每个条目独立折行后按顺序展开为显示行。
func (e *engine) flattenLines(entries []string, width float64, st textStyle) ([]string, error) {
	var out []string
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		wrapped, err := e.wrap(entry, width, st)
		if err != nil {
			return nil, err
		}
		for _, ln := range wrapped {
			if strings.TrimSpace(ln) != "" {
				out = append(out, ln)
			}
		}
	}
	return out, nil
}
