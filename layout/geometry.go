package layout

import (
	"fmt"
	"strings"
)

// Geometry 描述页面尺寸与边距（mm）。
type Geometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin Margin  `json:"margin"`
}

var pagePresets = map[string][2]float64{
	"A4":     {210, 297},
	"A5":     {148, 210},
	"LETTER": {215.9, 279.4},
}

// DefaultGeometry 为 A4 纵向、四边 15mm 边距。
func DefaultGeometry() Geometry {
	return Geometry{Width: 210, Height: 297, Margin: UniformMargin(15)}
}

// UniformMargin 返回四边相同的边距。
func UniformMargin(v float64) Margin {
	return Margin{Top: v, Right: v, Bottom: v, Left: v}
}

// NewGeometry 按纸张名称与方向构造页面几何。
func NewGeometry(size string, landscape bool, margin Margin) (Geometry, error) {
	base, ok := pagePresets[strings.ToUpper(strings.TrimSpace(size))]
	if !ok {
		return Geometry{}, fmt.Errorf("暂不支持的纸张尺寸：%s", size)
	}
	g := Geometry{Width: base[0], Height: base[1], Margin: margin}
	if landscape {
		g.Width, g.Height = g.Height, g.Width
	}
	if err := g.validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// PrintableWidth 是左右边距之间的宽度。
func (g Geometry) PrintableWidth() float64 {
	return g.Width - g.Margin.Left - g.Margin.Right
}

// ContentTop 是每页内容区域的起始 Y。
func (g Geometry) ContentTop() float64 { return g.Margin.Top }

// ContentBottom 是每页内容区域的最大 Y。
func (g Geometry) ContentBottom() float64 { return g.Height - g.Margin.Bottom }

func (g Geometry) validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("页面尺寸无效：%gx%g", g.Width, g.Height)
	}
	if g.PrintableWidth() <= 0 || g.ContentBottom() <= g.ContentTop() {
		return fmt.Errorf("边距过大，页面没有可用内容区域")
	}
	return nil
}
