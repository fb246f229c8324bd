package format

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateAcceptsAllShapes(t *testing.T) {
	instant := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	inputs := map[string]any{
		"Native":        instant,
		"NativePointer": &instant,
		"ISOString":     "2024-03-05T12:00:00Z",
		"ISOWithOffset": "2024-03-05T09:00:00-03:00",
		"EpochMillis":   int64(1709640000000),
		"EpochFloat":    float64(1709640000000),
		"JSONNumber":    json.Number("1709640000000"),
		"Timestamp":     Timestamp{Seconds: 1709640000},
		"TimestampPtr":  &Timestamp{Seconds: 1709640000},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "05/03/2024", FormatDate(in, "pt-BR"))
		})
	}
}

func TestFormatDateInvalid(t *testing.T) {
	var nilTime *time.Time
	var nilStamp *Timestamp

	inputs := map[string]any{
		"Nil":        nil,
		"NilTimePtr": nilTime,
		"NilStamp":   nilStamp,
		"Empty":      "",
		"Garbage":    "not a date",
		"Struct":     struct{ A int }{A: 1},
		"NaN":        math.NaN(),
		"ZeroTime":   time.Time{},
		"Bool":       true,
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, NotAvailable, FormatDate(in, "en-US"))
			})
		})
	}
}

func TestFormatDateLocaleAndLocation(t *testing.T) {
	instant := time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "31/12/2024", FormatDate(instant, "en-GB"))
	assert.Equal(t, "31.12.2024", FormatDate(instant, "de-DE"))

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	f := DateFormatter{Location: tokyo}
	assert.Equal(t, "01/01/2025", f.Format(instant, "en-US"))
}

func TestNormalizeDatePlainDate(t *testing.T) {
	got, ok := NormalizeDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
}
