package format

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// NotAvailable 是无法解析日期时的占位文本。
const NotAvailable = "N/A"

// DateConverter 描述后端时间戳包装类型（例如文档数据库的 Timestamp）。
type DateConverter interface {
	ToDate() time.Time
}

// Timestamp 是后端文档中常见的 {seconds, nanoseconds} 时间戳。
type Timestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int32 `json:"nanoseconds"`
}

// ToDate 实现 DateConverter。
func (t Timestamp) ToDate() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanoseconds)).UTC()
}

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeDate 将 time.Time、ISO-8601 字符串、毫秒时间戳与 DateConverter 统一为 time.Time。
// 这是唯一按输入形态分支的地方，下游只处理 time.Time。
func NormalizeDate(v any) (time.Time, bool) {
	var t time.Time
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		t = d
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		t = *d
	case string:
		parsed, ok := parseISO(d)
		if !ok {
			return time.Time{}, false
		}
		t = parsed
	case int:
		t = time.UnixMilli(int64(d))
	case int64:
		t = time.UnixMilli(d)
	case float64:
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return time.Time{}, false
		}
		t = time.UnixMilli(int64(d))
	case json.Number:
		if ms, err := d.Int64(); err == nil {
			t = time.UnixMilli(ms)
		} else if f, err := d.Float64(); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			t = time.UnixMilli(int64(f))
		} else {
			return time.Time{}, false
		}
	case DateConverter:
		converted, ok := convertDate(d)
		if !ok {
			return time.Time{}, false
		}
		t = converted
	default:
		return time.Time{}, false
	}
	if t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// convertDate 容忍 nil 指针包装类型在 ToDate 中 panic。
func convertDate(d DateConverter) (t time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	return d.ToDate(), true
}

func parseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateFormatter 以日/月/年输出日期。Location 为空时使用 UTC。
type DateFormatter struct {
	Location *time.Location
}

// Format 返回 v 在 locale 下的日期文本；无法识别时返回 "N/A"。
func (f DateFormatter) Format(v any, locale string) string {
	t, ok := NormalizeDate(v)
	if !ok {
		return NotAvailable
	}
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateLayout(locale))
}

// FormatDate 使用 UTC 格式化日期。
func FormatDate(v any, locale string) string {
	return DateFormatter{}.Format(v, locale)
}

func dateLayout(locale string) string {
	if strings.EqualFold(locale, "de-DE") {
		return "02.01.2006"
	}
	return "02/01/2006"
}
