package export_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ByLCY/faktura/export"
	"github.com/ByLCY/faktura/invoice"
	"github.com/ByLCY/faktura/layout"
)

var fixedNow = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// expectTypesetting lets the layout engine measure text: one line per call, 2mm per rune.
func expectTypesetting(m *export.MockRenderer) {
	m.EXPECT().
		LayoutLines(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(content string, _ float64, _ layout.FontResource, fontSize, _ float64, _ string) ([]layout.TextLine, error) {
			return []layout.TextLine{{Content: content, Height: fontSize}}, nil
		}).
		AnyTimes()
	m.EXPECT().
		TextWidth(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(content string, _ layout.FontResource, _ float64) (float64, error) {
			return float64(len([]rune(content))) * 2, nil
		}).
		AnyTimes()
}

func sampleInvoice() invoice.Invoice {
	qty := 2.0
	return invoice.Invoice{
		Number:         "2024-001",
		Date:           invoice.DateOf(fixedNow),
		DueDate:        invoice.NewDate("2024-04-04"),
		ClientName:     "Acme Corp",
		CompanyDetails: invoice.CompanyDetails{Name: "Faktura Studio"},
		Items:          []invoice.Item{{Description: "Design", Quantity: &qty, Price: 50}},
		Currency:       "USD",
		Status:         invoice.StatusPending,
	}
}

func TestGenerator_Generate(t *testing.T) {
	type testCase struct {
		name      string
		inv       func() invoice.Invoice
		settings  *invoice.Settings
		setupMock func(m *export.MockRenderer)
		check     func(t *testing.T, doc *export.Document)
		wantErr   error
	}

	renderErr := errors.New("disk full")
	tests := []testCase{
		{
			name: "Success",
			inv:  sampleInvoice,
			setupMock: func(m *export.MockRenderer) {
				m.EXPECT().
					Render(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, res *layout.Result) ([]byte, error) {
						assert.Equal(t, "Invoice 2024-001", res.Meta.Title)
						assert.Equal(t, "faktura", res.Meta.Creator)
						return []byte("%PDF-1.7"), nil
					})
			},
			check: func(t *testing.T, doc *export.Document) {
				assert.Equal(t, "invoice-2024-001.pdf", doc.FileName)
				assert.Equal(t, []byte("%PDF-1.7"), doc.Bytes)
				assert.Equal(t, 1, doc.Pages)
			},
		},
		{
			name: "SettingsFillCurrency",
			inv: func() invoice.Invoice {
				inv := sampleInvoice()
				inv.Currency = ""
				inv.DueDate = invoice.Date{}
				return inv
			},
			settings: &invoice.Settings{Currency: "eur", PaymentTerms: 14},
			setupMock: func(m *export.MockRenderer) {
				m.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
			},
			check: func(t *testing.T, doc *export.Document) {
				assert.Equal(t, "EUR", doc.Invoice.Currency)
				due, ok := doc.Invoice.DueDate.Time()
				require.True(t, ok)
				assert.Equal(t, "2024-03-19", due.Format("2006-01-02"))
			},
		},
		{
			name: "MissingCurrency",
			inv: func() invoice.Invoice {
				inv := sampleInvoice()
				inv.Currency = ""
				return inv
			},
			wantErr: layout.ErrMissingCurrency,
		},
		{
			name: "RenderError",
			inv:  sampleInvoice,
			setupMock: func(m *export.MockRenderer) {
				m.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, renderErr)
			},
			wantErr: renderErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := export.NewMockRenderer(ctrl)
			expectTypesetting(r)
			if tt.setupMock != nil {
				tt.setupMock(r)
			}

			g := export.NewGenerator(r, export.Options{Creator: "faktura", Clock: clock})
			doc, err := g.Generate(context.Background(), tt.inv(), tt.settings)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, doc)
				return
			}
			require.NoError(t, err)
			tt.check(t, doc)
		})
	}
}

func TestGenerator_GenerateCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := export.NewMockRenderer(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := export.NewGenerator(r, export.Options{}).Generate(ctx, sampleInvoice(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_LogsGeneratedDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := export.NewMockRenderer(ctrl)
	expectTypesetting(r)
	r.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)

	core, logs := observer.New(zap.InfoLevel)
	g := export.NewGenerator(r, export.Options{Logger: zap.New(core), Clock: clock})
	_, err := g.Generate(context.Background(), sampleInvoice(), nil)
	require.NoError(t, err)

	entries := logs.FilterMessage("invoice generated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "invoice-2024-001.pdf", fields["file"])
	assert.EqualValues(t, 1, fields["pages"])
}

func TestGenerator_FileName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		number  string
		want    string
	}{
		{name: "Default", number: "2024-001", want: "invoice-2024-001.pdf"},
		{name: "NoNumber", number: "  ", want: "invoice-1709640000000.pdf"},
		{name: "CustomPattern", pattern: "${clientName}_${number}", number: "7", want: "Acme Corp_7.pdf"},
		{name: "Sanitized", pattern: "${clientName}/${number}.PDF", number: "A:1", want: "Acme Corp-A-1.PDF"},
		{name: "UnknownField", pattern: "${nope}.pdf", number: "9", want: "invoice-9.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := sampleInvoice()
			inv.Number = tt.number
			g := export.NewGenerator(nil, export.Options{FileNamePattern: tt.pattern, Clock: clock})
			assert.Equal(t, tt.want, g.FileName(inv))
		})
	}
}
