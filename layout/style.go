package layout

// 发票版式常量（mm / pt）。
const (
	lineHeight   = 6.0  // 标签/数值行
	headerHeight = 20.0 // 标题 + 装饰线
	labelWidth   = 25.0 // 标签列到数值列的偏移
	ruleOffset   = 3.0  // 装饰线相对标题顶部
	ruleWidth    = 0.5
	columnGutter = 10.0 // 双栏之间的间隔
	cellPadding  = 1.5
	textLeading  = 4.0 // 自由文本每行步进

	detailsTrailing = 5.0
	itemsTitleGap   = 8.0
	itemsTotalGap   = 10.0
	itemsTrailing   = 10.0
	sectionGap      = 5.0
	paymentLeadIn   = 10.0
	blockSpacing    = 3.0
)

const (
	fontRegular = "Regular"
	fontBold    = "Bold"
)

var (
	sizeTitle   = Pt(14)
	sizeHeading = Pt(11)
	sizeNormal  = Pt(9)
	sizeSmall   = Pt(8)
)

var (
	colorPrimary   = Color{R: 79, G: 70, B: 229}   // #4F46E5
	colorSecondary = Color{R: 243, G: 244, B: 246} // #F3F4F6
	colorText      = Color{R: 17, G: 24, B: 39}    // #111827
	colorLightText = Color{R: 107, G: 114, B: 128} // #6B7280
	colorWhite     = Color{R: 255, G: 255, B: 255}
)

// itemColumns 为描述/数量/单价/小计四列占可打印宽度的比例。
var itemColumns = [4]float64{0.45, 0.15, 0.20, 0.20}

// DefaultResources 返回布局使用的字体资源，src 指向内置字体。
func DefaultResources() ResourceSet {
	return ResourceSet{Fonts: map[string]FontResource{
		fontRegular: {Name: fontRegular, Src: "embed:sans-regular", Family: "Sans"},
		fontBold:    {Name: fontBold, Src: "embed:sans-bold", Style: "bold", Family: "Sans"},
	}}
}
