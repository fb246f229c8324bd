package invoice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ByLCY/faktura/format"
)

// Date 保存后端给出的任意日期形态：time.Time、ISO 字符串、毫秒时间戳或时间戳包装类型。
// 形态判断只在 format.NormalizeDate 中进行，Date 仅保存原始值。
type Date struct {
	raw any
}

// NewDate 包装任意受支持的日期形态。
func NewDate(v any) Date { return Date{raw: v} }

// DateOf 包装 time.Time。
func DateOf(t time.Time) Date { return Date{raw: t} }

// Raw 返回原始值。
func (d Date) Raw() any { return d.raw }

// Time 返回归一化后的时间。
func (d Date) Time() (time.Time, bool) { return format.NormalizeDate(d.raw) }

// Present 报告是否提供了值（无论是否有效）。
func (d Date) Present() bool {
	if s, ok := d.raw.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return d.raw != nil
}

// IsZero 报告是否没有可用的日期。
func (d Date) IsZero() bool {
	_, ok := d.Time()
	return !ok
}

func (d Date) MarshalJSON() ([]byte, error) {
	t, ok := d.Time()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.raw = nil
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		d.raw = s
	case '{':
		var stamp struct {
			Seconds      *int64 `json:"seconds"`
			Nanoseconds  int32  `json:"nanoseconds"`
			USeconds     *int64 `json:"_seconds"`
			UNanoseconds int32  `json:"_nanoseconds"`
		}
		if err := json.Unmarshal(data, &stamp); err != nil {
			return err
		}
		switch {
		case stamp.Seconds != nil:
			d.raw = format.Timestamp{Seconds: *stamp.Seconds, Nanoseconds: stamp.Nanoseconds}
		case stamp.USeconds != nil:
			d.raw = format.Timestamp{Seconds: *stamp.USeconds, Nanoseconds: stamp.UNanoseconds}
		default:
			return fmt.Errorf("invoice: 不支持的日期对象 %s", data)
		}
	default:
		var n json.Number
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("invoice: 不支持的日期值 %s: %w", data, err)
		}
		d.raw = n
	}
	return nil
}
