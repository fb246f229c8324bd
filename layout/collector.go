package layout

// Surface 是布局引擎唯一的绘制目标：放置文本、线段与表格，并按需开新页。
type Surface interface {
	Text(tb TextBox)
	Line(ln Line)
	Table(t TableBox)
	NewPage()
	PageCount() int
}

type pageAccumulator struct {
	texts  []TextBox
	tables []TableBox
	lines  []Line
}

// pageCollector 记录每一页的绘制元素，最终转换为 []Page。
type pageCollector struct {
	geometry Geometry
	accs     []*pageAccumulator
	current  int
}

var _ Surface = (*pageCollector)(nil)

func newPageCollector(g Geometry) *pageCollector {
	pc := &pageCollector{geometry: g}
	pc.NewPage()
	return pc
}

func (pc *pageCollector) NewPage() {
	pc.accs = append(pc.accs, &pageAccumulator{})
	pc.current = len(pc.accs) - 1
}

func (pc *pageCollector) PageCount() int { return len(pc.accs) }

func (pc *pageCollector) curr() *pageAccumulator {
	if len(pc.accs) == 0 {
		pc.NewPage()
	}
	return pc.accs[pc.current]
}

func (pc *pageCollector) Text(tb TextBox) {
	acc := pc.curr()
	acc.texts = append(acc.texts, tb)
}

func (pc *pageCollector) Line(ln Line) {
	acc := pc.curr()
	acc.lines = append(acc.lines, ln)
}

func (pc *pageCollector) Table(t TableBox) {
	acc := pc.curr()
	acc.tables = append(acc.tables, t)
}

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Width:  pc.geometry.Width,
			Height: pc.geometry.Height,
			Margin: pc.geometry.Margin,
			Texts:  acc.texts,
			Tables: acc.tables,
			Lines:  acc.lines,
		}
	}
	return out
}
