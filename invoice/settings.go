package invoice

import "strings"

// Settings 是用户级默认值，在发票进入布局引擎前统一应用一次。
type Settings struct {
	Currency       string         `json:"currency"`
	PaymentTerms   int            `json:"paymentTerms"` // days
	CompanyDetails CompanyDetails `json:"companyDetails"`
}

// Resolve 返回 inv 的副本，用 settings 填充空白的币种、收款方信息，
// 并按付款期限推算到期日。settings 为 nil 时原样返回。
func Resolve(inv Invoice, settings *Settings) Invoice {
	if settings == nil {
		return inv
	}
	out := inv
	out.Items = append([]Item(nil), inv.Items...)
	if inv.IntermediaryBank != nil {
		bank := *inv.IntermediaryBank
		out.IntermediaryBank = &bank
	}

	if strings.TrimSpace(out.Currency) == "" {
		out.Currency = strings.ToUpper(strings.TrimSpace(settings.Currency))
	}
	if out.CompanyDetails.IsZero() {
		out.CompanyDetails = settings.CompanyDetails
	}
	if out.DueDate.IsZero() && settings.PaymentTerms > 0 {
		if issued, ok := out.Date.Time(); ok {
			out.DueDate = DateOf(issued.AddDate(0, 0, settings.PaymentTerms))
		}
	}
	return out
}

// WithDefaultCurrency 返回币种缺省为 code 的设置，不修改入参。
// code 非空而 settings 为 nil 时返回新的 Settings。
func WithDefaultCurrency(settings *Settings, code string) *Settings {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return settings
	}
	out := &Settings{}
	if settings != nil {
		*out = *settings
	}
	if strings.TrimSpace(out.Currency) == "" {
		out.Currency = code
	}
	return out
}
