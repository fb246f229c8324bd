package canvasrenderer

import (
	"strings"
	"testing"

	"github.com/ByLCY/faktura/fonts"
	"github.com/ByLCY/faktura/layout"
)

func loadEmbedded(src string) ([]byte, error) { return fonts.Load(src) }

// 当第一行宽度与容器宽度恰好相等且后面紧跟一个显式换行时，不应产生额外的空行。
func TestNoBlankLineWhenEqualWidthThenNewline(t *testing.T) {
	r := NewRenderer()
	fontSizeMM := 12 * layout.PtToMm
	lineHeightMM := fontSizeMM * 1.2

	first := "SAMPLE-A"
	measured, err := r.LayoutLines(first, 1e6, regular, fontSizeMM, lineHeightMM, "")
	if err != nil {
		t.Fatalf("measure error: %v", err)
	}
	if len(measured) != 1 {
		t.Fatalf("unexpected measured lines: %d", len(measured))
	}
	limit := measured[0].Width
	if limit <= 0 {
		t.Fatalf("invalid measured width: %g", limit)
	}

	lines, err := r.LayoutLines(first+"\n"+first, limit, regular, fontSizeMM, lineHeightMM, "")
	if err != nil {
		t.Fatalf("LayoutLines error: %v", err)
	}
	if got := len(lines); got != 2 {
		t.Fatalf("expected 2 lines without blank, got %d", got)
	}
	for i, ln := range lines {
		if ln.Content != first {
			t.Fatalf("line %d mismatch: got=%q want=%q", i, ln.Content, first)
		}
	}
}

// fixedWidth 每个 rune 宽 1mm。
type fixedWidth struct{}

func (fixedWidth) TextWidth(s string) float64 { return float64(len([]rune(s))) }

func TestWrapKeepsNonBreakingSpace(t *testing.T) {
	lines := greedyWrapTokens("1.234,50\u00a0€ and more", 11, fixedWidth{}, "anywhere")
	if len(lines) < 2 || lines[0].Content != "1.234,50\u00a0€" {
		t.Fatalf("amount should stay on one line, got %+v", lines)
	}
}

func TestWrapDropsBoundaryWhitespace(t *testing.T) {
	lines := greedyWrapTokens("alpha    beta", 6, fixedWidth{}, "")
	var got []string
	for _, ln := range lines {
		got = append(got, ln.Content)
	}
	if strings.Join(got, "|") != "alpha|beta" {
		t.Fatalf("unexpected lines %q", got)
	}
}

func TestWrapNowrapSplitsOnNewlineOnly(t *testing.T) {
	lines := greedyWrapTokens("a very long line\nnext", 2, fixedWidth{}, "nowrap")
	if len(lines) != 2 || lines[0].Width != 16 {
		t.Fatalf("unexpected nowrap lines %+v", lines)
	}
}
