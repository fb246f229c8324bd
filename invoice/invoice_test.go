package invoice_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/faktura/format"
	"github.com/ByLCY/faktura/invoice"
)

func qty(v float64) *float64 { return &v }

func TestTotals(t *testing.T) {
	inv := invoice.Invoice{
		Items: []invoice.Item{
			{Description: "Design", Quantity: qty(3), Price: 19.99},
			{Description: "Hosting", Quantity: qty(1), Price: 120},
			{Description: "Support"}, // missing quantity counts as 1
		},
		Tax: 12.5,
	}
	inv.Items[2].Price = 0.1

	assert.Equal(t, 180.07, inv.Subtotal())
	assert.Equal(t, 22.51, inv.TaxAmount())
	assert.Equal(t, 202.58, inv.Total())
	assert.Equal(t, 59.97, inv.Items[0].LineTotal())
}

// 对固定样本对比浮点参考公式，验证 total == round2(S + S·tax/100)。
func TestTotalMatchesReferenceFormula(t *testing.T) {
	samples := []struct {
		items [][2]float64
		tax   float64
	}{
		{items: nil, tax: 10},
		{items: [][2]float64{{1, 100}}, tax: 0},
		{items: [][2]float64{{2, 49.5}, {3, 10.25}}, tax: 100},
		{items: [][2]float64{{7, 3.33}, {0, 99}, {1.5, 2.2}}, tax: 17},
		{items: [][2]float64{{10, 0.07}}, tax: 33.333},
	}
	round2 := func(v float64) float64 { return math.Round(v*100) / 100 }

	for _, s := range samples {
		inv := invoice.Invoice{Tax: s.tax}
		sum := 0.0
		for _, it := range s.items {
			inv.Items = append(inv.Items, invoice.Item{Quantity: qty(it[0]), Price: it[1]})
			sum += it[0] * it[1]
		}
		assert.InDelta(t, round2(sum+sum*s.tax/100), inv.Total(), 0.0051, "sample %+v", s)
		assert.InDelta(t, round2(sum), inv.Subtotal(), 0.0051, "sample %+v", s)
	}
}

func TestAddressLines(t *testing.T) {
	a := invoice.Address{Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62701", Country: "USA"}
	assert.Equal(t, []string{"1 Main St", "Springfield, IL, 62701", "USA"}, a.Lines())

	partial := invoice.Address{City: "Lisbon", Country: "Portugal"}
	assert.Equal(t, []string{"Lisbon", "Portugal"}, partial.Lines())

	assert.Empty(t, invoice.Address{}.Lines())
	assert.True(t, invoice.Address{Street: "  "}.IsZero())
}

func TestAddressAcceptsLegacyZipCode(t *testing.T) {
	var a invoice.Address
	require.NoError(t, json.Unmarshal([]byte(`{"street":"Rua A","city":"São Paulo","zipCode":"01000-000"}`), &a))
	assert.Equal(t, "01000-000", a.Zip)

	require.NoError(t, json.Unmarshal([]byte(`{"zip":"111","zipCode":"222"}`), &a))
	assert.Equal(t, "111", a.Zip)

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"zip":"111"`)
	assert.NotContains(t, string(out), "zipCode")
}

func TestDateUnmarshalShapes(t *testing.T) {
	want := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	docs := map[string]string{
		"ISO":        `"2024-03-05T12:00:00Z"`,
		"Millis":     `1709640000000`,
		"Timestamp":  `{"seconds":1709640000,"nanoseconds":0}`,
		"Underscore": `{"_seconds":1709640000,"_nanoseconds":0}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			var d invoice.Date
			require.NoError(t, json.Unmarshal([]byte(doc), &d))
			got, ok := d.Time()
			require.True(t, ok)
			assert.True(t, want.Equal(got), "got %v", got)
		})
	}

	var d invoice.Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
	assert.Error(t, json.Unmarshal([]byte(`{"foo":1}`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestInvoiceJSONRoundTrip(t *testing.T) {
	doc := `{
		"number": "2024-001",
		"date": {"seconds": 1709640000, "nanoseconds": 0},
		"dueDate": "2024-04-04",
		"clientName": "ACME",
		"clientAddress": {"street": "1 Road", "city": "Town", "zipCode": "999"},
		"items": [{"id": "1", "description": "Widget", "price": 2.5}],
		"tax": 10,
		"currency": "EUR"
	}`
	var inv invoice.Invoice
	require.NoError(t, json.Unmarshal([]byte(doc), &inv))
	assert.Equal(t, "999", inv.ClientAddress.Zip)
	assert.True(t, inv.ShippingDate.IsZero())
	assert.Equal(t, 1.0, inv.Items[0].Qty())
	assert.Equal(t, "05/03/2024", format.FormatDate(inv.Date.Raw(), "pt-BR"))

	out, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "shippingDate")

	var back invoice.Invoice
	require.NoError(t, json.Unmarshal(out, &back))
	got, ok := back.Date.Time()
	require.True(t, ok)
	assert.Equal(t, int64(1709640000), got.Unix())
}

func TestPresenceHelpers(t *testing.T) {
	var inv invoice.Invoice
	assert.False(t, inv.HasPayment())
	assert.False(t, inv.HasNotes())

	inv.IntermediaryBank = &invoice.IntermediaryBank{}
	assert.False(t, inv.HasPayment())
	inv.IntermediaryBank.SwiftCode = "CHASUS33"
	assert.True(t, inv.HasPayment())

	inv.Terms = "  "
	assert.False(t, inv.HasNotes())
	inv.Terms = "Net 30"
	assert.True(t, inv.HasNotes())
}
