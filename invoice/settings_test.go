package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/faktura/invoice"
)

func TestResolve(t *testing.T) {
	issued := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	settings := &invoice.Settings{
		Currency:     "brl",
		PaymentTerms: 30,
		CompanyDetails: invoice.CompanyDetails{
			Name:  "Faktura Ltda",
			Phone: "+55 11 5555-0000",
		},
	}

	t.Run("FillsBlanks", func(t *testing.T) {
		in := invoice.Invoice{Number: "1", Date: invoice.DateOf(issued)}
		out := invoice.Resolve(in, settings)

		assert.Equal(t, "BRL", out.Currency)
		assert.Equal(t, "Faktura Ltda", out.CompanyDetails.Name)
		due, ok := out.DueDate.Time()
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), due)

		assert.Empty(t, in.Currency, "input must not be mutated")
		assert.True(t, in.DueDate.IsZero())
	})

	t.Run("KeepsExplicitValues", func(t *testing.T) {
		in := invoice.Invoice{
			Currency:       "USD",
			Date:           invoice.DateOf(issued),
			DueDate:        invoice.NewDate("2024-02-10"),
			CompanyDetails: invoice.CompanyDetails{Name: "Own Co"},
		}
		out := invoice.Resolve(in, settings)

		assert.Equal(t, "USD", out.Currency)
		assert.Equal(t, "Own Co", out.CompanyDetails.Name)
		assert.Equal(t, "2024-02-10", out.DueDate.Raw())
	})

	t.Run("NilSettings", func(t *testing.T) {
		in := invoice.Invoice{Number: "7"}
		assert.Equal(t, in, invoice.Resolve(in, nil))
	})

	t.Run("NoIssueDate", func(t *testing.T) {
		out := invoice.Resolve(invoice.Invoice{}, settings)
		assert.True(t, out.DueDate.IsZero())
	})
}

func TestWithDefaultCurrency(t *testing.T) {
	assert.Nil(t, invoice.WithDefaultCurrency(nil, "  "))

	got := invoice.WithDefaultCurrency(nil, "brl")
	require.NotNil(t, got)
	assert.Equal(t, "BRL", got.Currency)

	own := &invoice.Settings{Currency: "EUR", PaymentTerms: 14}
	got = invoice.WithDefaultCurrency(own, "USD")
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, 14, got.PaymentTerms)

	blank := &invoice.Settings{PaymentTerms: 7}
	got = invoice.WithDefaultCurrency(blank, "gbp")
	assert.Equal(t, "GBP", got.Currency)
	assert.Empty(t, blank.Currency, "input settings must not be modified")
}
