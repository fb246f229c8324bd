package layout

import (
	"math"

	"go.uber.org/zap"

	"github.com/ByLCY/faktura/format"
	"github.com/ByLCY/faktura/invoice"
)

// engine 持有一次布局调用的全部状态；每次 Build 独占一个 engine，不在调用之间共享。
type engine struct {
	inv      invoice.Invoice
	geometry Geometry
	surface  Surface
	res      ResourceSet
	ts       Typesetter
	dates    format.DateFormatter
	locale   string
	logger   *zap.Logger
}

// textStyle 描述单个文本元素的字体、字号、颜色与对齐。
type textStyle struct {
	font  string
	size  Length
	color Color
	align string
}

var (
	styleTitle   = textStyle{font: fontBold, size: sizeTitle, color: colorText}
	styleHeading = textStyle{font: fontBold, size: sizeHeading, color: colorText}
	styleLabel   = textStyle{font: fontBold, size: sizeNormal, color: colorText}
	styleBody    = textStyle{font: fontRegular, size: sizeNormal, color: colorText}
)

func (s textStyle) bold() textStyle {
	s.font = fontBold
	return s
}

func (s textStyle) aligned(align string) textStyle {
	s.align = align
	return s
}

func (s textStyle) colored(c Color) textStyle {
	s.color = c
	return s
}

func (s textStyle) sized(size Length) textStyle {
	s.size = size
	return s
}

// ensureSpace 在 y 处放不下 height 时换页，返回新的游标。
// 已在页首时不再换页，避免单个超高元素导致无限换页。
func (e *engine) ensureSpace(y, height float64) float64 {
	if y+height <= e.geometry.ContentBottom() {
		return y
	}
	if y <= e.geometry.ContentTop() {
		return y
	}
	e.surface.NewPage()
	e.logger.Debug("page break", zap.Int("page", e.surface.PageCount()), zap.Float64("needed", height))
	return e.geometry.ContentTop()
}

func (e *engine) font(name string) FontResource {
	if f, ok := e.res.Fonts[name]; ok {
		return f
	}
	return e.res.Fonts[fontRegular]
}

// text 放置一个不折行的单行文本，width 仅用于对齐。
func (e *engine) text(section, content string, x, y, width float64, st textStyle) {
	size := st.size.ToMM()
	e.surface.Text(TextBox{
		Section:    section,
		Content:    content,
		X:          x,
		Y:          y,
		Width:      width,
		LineHeight: size,
		Font:       st.font,
		FontSize:   size,
		Color:      st.color,
		Lines:      []TextLine{{Content: content, Height: size}},
		Height:     size,
		Align:      st.align,
		Wrap:       "nowrap",
	})
}

// wrap 将 content 按宽度折行，返回每一行的文本。
func (e *engine) wrap(content string, width float64, st textStyle) ([]string, error) {
	size := st.size.ToMM()
	lines, err := e.ts.LayoutLines(content, width, e.font(st.font), size, size*1.2, "anywhere")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		out = append(out, ln.Content)
	}
	return out, nil
}

func (e *engine) textWidth(content string, st textStyle) (float64, error) {
	return e.ts.TextWidth(content, e.font(st.font), st.size.ToMM())
}

// composeTextBox 生成可折行的文本块（表格单元格使用），Height == Σ(line.GapBefore + line.Height)。
func (e *engine) composeTextBox(section, content string, x, y, width float64, st textStyle) (TextBox, error) {
	fontSize := st.size.ToMM()
	lh := fontSize * 1.2
	lines, err := e.ts.LayoutLines(content, width, e.font(st.font), fontSize, lh, "anywhere")
	if err != nil {
		return TextBox{}, err
	}
	if len(lines) == 0 {
		lines = []TextLine{{Content: "", Height: fontSize}}
	}

	total := 0.0
	defaultLeading := math.Max(lh-fontSize, 0)
	for i := range lines {
		if lines[i].Height <= 0 {
			lines[i].Height = fontSize
		}
		if i == 0 {
			lines[i].GapBefore = 0
		} else if lines[i].GapBefore <= 0 {
			lines[i].GapBefore = defaultLeading
		}
		total += lines[i].GapBefore + lines[i].Height
	}

	return TextBox{
		Section:    section,
		Content:    content,
		X:          x,
		Y:          y,
		Width:      width,
		LineHeight: lh,
		Font:       st.font,
		FontSize:   fontSize,
		Color:      st.color,
		Lines:      lines,
		Height:     total,
		Align:      st.align,
		Wrap:       "anywhere",
	}, nil
}

// formatDate 调用日期格式化；失败时返回 "N/A" 并记录异常，不中断渲染。
func (e *engine) formatDate(field string, d invoice.Date) string {
	out := e.dates.Format(d.Raw(), e.locale)
	if out == format.NotAvailable {
		e.logger.Warn("date could not be formatted",
			zap.String("field", field),
			zap.Any("value", d.Raw()),
		)
	}
	return out
}
