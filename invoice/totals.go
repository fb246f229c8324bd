package invoice

import "github.com/shopspring/decimal"

// LineTotal 返回 数量 × 单价，保留两位小数。
func (i Item) LineTotal() float64 {
	return round2(i.lineTotal())
}

func (i Item) lineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Qty()).Mul(decimal.NewFromFloat(i.Price))
}

func (inv Invoice) subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.lineTotal())
	}
	return sum
}

// Subtotal 为 Σ(数量·单价)，不含税。
func (inv Invoice) Subtotal() float64 {
	return round2(inv.subtotal())
}

// TaxAmount 为 subtotal·tax/100。
func (inv Invoice) TaxAmount() float64 {
	return round2(inv.taxAmount())
}

func (inv Invoice) taxAmount() decimal.Decimal {
	return inv.subtotal().Mul(decimal.NewFromFloat(inv.Tax)).Div(decimal.NewFromInt(100))
}

// Total 为 subtotal + subtotal·tax/100，只在最后舍入一次。
func (inv Invoice) Total() float64 {
	return round2(inv.subtotal().Add(inv.taxAmount()))
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
