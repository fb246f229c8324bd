package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 8, 9, 11, 14, 72, 1000}
	for _, pt := range samples {
		mm := Pt(pt).ToMM()
		back := Mm(mm).ToPT()
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt mm=%g back=%g diff=%g", pt, mm, back, diff)
		}
	}
}

// TestLengthToConversions 覆盖 Length 在常见单位上的转换正确性。
func TestLengthToConversions(t *testing.T) {
	if got := (Length{Value: 1, Unit: UnitIN}).ToMM(); math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("1in 转 mm 期望 25.4，实际 %g", got)
	}
	if got := (Length{Value: 2.54, Unit: UnitCM}).ToMM(); math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("2.54cm 转 mm 期望 25.4，实际 %g", got)
	}
	if got := Pt(12).ToMM(); math.Abs(got-12*PtToMm) > 1e-9 {
		t.Fatalf("12pt 转 mm 期望 %g，实际 %g", 12*PtToMm, got)
	}
	if got := Mm(10).ToPT(); math.Abs(got-10*MmToPt) > 1e-9 {
		t.Fatalf("10mm 转 pt 期望 %g，实际 %g", 10*MmToPt, got)
	}
	if got := Pt(72).ToMM(); math.Abs(got-25.4) > 1e-12 {
		t.Fatalf("72pt 应恰为 1in（25.4mm），实际 %g", got)
	}
	if got := Pt(36).ToMM(); math.Abs(got-12.7) > 1e-12 {
		t.Fatalf("36pt 转 mm 期望 12.7，实际 %g", got)
	}
	if got := (Length{Value: 7}).ToMM(); got != 7 {
		t.Fatalf("无单位数值应按 mm 处理，实际 %g", got)
	}
}

// TestParseRawLengthStr 验证边距配置字符串的解析。
func TestParseRawLengthStr(t *testing.T) {
	cases := map[string]float64{
		"15mm":   15,
		" 1.5cm": 15,
		"1in":    25.4,
		"20":     20,
		"72PT":   72 * PtToMm,
	}
	for in, want := range cases {
		l, err := ParseRawLengthStr(in)
		if err != nil {
			t.Fatalf("%q 解析失败: %v", in, err)
		}
		if diff := math.Abs(l.ToMM() - want); diff > 1e-9 {
			t.Fatalf("%q 解析结果错误: got=%g want=%g", in, l.ToMM(), want)
		}
	}
	for _, bad := range []string{"", "mm", "abc", "-3mm"} {
		if _, err := ParseRawLengthStr(bad); err == nil {
			t.Fatalf("%q 应当解析失败", bad)
		}
	}
}
