// Package invoice 定义输入布局引擎的发票文档结构。
package invoice

import (
	"encoding/json"
	"strings"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Invoice 是只读快照，布局引擎不会修改它。
type Invoice struct {
	ID               string            `json:"id,omitempty"`
	Number           string            `json:"number"`
	Date             Date              `json:"date"`
	DueDate          Date              `json:"dueDate"`
	ShippingDate     Date              `json:"shippingDate,omitzero"`
	ClientName       string            `json:"clientName"`
	ClientEmail      string            `json:"clientEmail,omitempty"`
	ClientAddress    Address           `json:"clientAddress"`
	CompanyDetails   CompanyDetails    `json:"companyDetails"`
	Items            []Item            `json:"items"`
	Tax              float64           `json:"tax"`
	Currency         string            `json:"currency"`
	WireInstructions WireInstructions  `json:"wireInstructions"`
	IntermediaryBank *IntermediaryBank `json:"intermediaryBank,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	Terms            string            `json:"terms,omitempty"`
	Status           Status            `json:"status,omitempty"`
}

// Address 供双方共用。Zip 为规范字段名，旧文档中的 "zipCode" 仍可读取。
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (a *Address) UnmarshalJSON(data []byte) error {
	type plain Address
	var aux struct {
		plain
		ZipCode string `json:"zipCode"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = Address(aux.plain)
	if a.Zip == "" {
		a.Zip = aux.ZipCode
	}
	return nil
}

// Lines 将地址展开为显示行：街道、"city, state, zip"、国家，空条目被丢弃。
func (a Address) Lines() []string {
	var locality []string
	for _, part := range []string{a.City, a.State, a.Zip} {
		if p := strings.TrimSpace(part); p != "" {
			locality = append(locality, p)
		}
	}

	var lines []string
	for _, line := range []string{a.Street, strings.Join(locality, ", "), a.Country} {
		if l := strings.TrimSpace(line); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func (a Address) IsZero() bool { return len(a.Lines()) == 0 }

// CompanyDetails 是收款方。
type CompanyDetails struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email,omitempty"`
	Address Address `json:"address"`
}

func (c CompanyDetails) IsZero() bool {
	return strings.TrimSpace(c.Name) == "" && strings.TrimSpace(c.Phone) == "" &&
		strings.TrimSpace(c.Email) == "" && c.Address.IsZero()
}

type Item struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Price       float64  `json:"price"`
}

// Qty 返回数量，缺省按 1 计。
func (i Item) Qty() float64 {
	if i.Quantity == nil {
		return 1
	}
	return *i.Quantity
}

type WireInstructions struct {
	BankName       string `json:"bankName,omitempty"`
	AccountName    string `json:"accountName,omitempty"`
	AccountNumber  string `json:"accountNumber,omitempty"`
	RoutingNumber  string `json:"routingNumber,omitempty"`
	SwiftCode      string `json:"swiftCode,omitempty"`
	IBAN           string `json:"iban,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

func (w WireInstructions) IsZero() bool {
	for _, v := range []string{w.BankName, w.AccountName, w.AccountNumber, w.RoutingNumber, w.SwiftCode, w.IBAN, w.AdditionalInfo} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

type IntermediaryBank struct {
	Country   string `json:"country,omitempty"`
	BankName  string `json:"bankName,omitempty"`
	SwiftCode string `json:"swiftCode,omitempty"`
}

// IsZero 报告三个字段是否都为空。
func (b *IntermediaryBank) IsZero() bool {
	if b == nil {
		return true
	}
	return strings.TrimSpace(b.Country) == "" && strings.TrimSpace(b.BankName) == "" &&
		strings.TrimSpace(b.SwiftCode) == ""
}

// HasPayment 报告发票是否带有任何付款信息。
func (inv Invoice) HasPayment() bool {
	return !inv.WireInstructions.IsZero() || !inv.IntermediaryBank.IsZero()
}

// HasNotes 报告备注或条款是否非空。
func (inv Invoice) HasNotes() bool {
	return strings.TrimSpace(inv.Notes) != "" || strings.TrimSpace(inv.Terms) != ""
}
