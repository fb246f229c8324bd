package layout

import (
	"go.uber.org/zap"

	"github.com/ByLCY/faktura/format"
)

// BuildOptions 配置布局阶段所需的依赖，例如排版后端与日志。
type BuildOptions struct {
	Typesetter Typesetter
	Geometry   Geometry
	Dates      format.DateFormatter
	Logger     *zap.Logger
	Creator    string // 写入 PDF 元信息
}

// Typesetter 负责根据字体与宽度约束将文本拆成可绘制的行，并测量单行宽度。
// 约定：width/fontSize/lineHeight 均为毫米（mm）。
type Typesetter interface {
	LayoutLines(content string, width float64, font FontResource, fontSize float64, lineHeight float64, wrap string) ([]TextLine, error)
	TextWidth(content string, font FontResource, fontSize float64) (float64, error)
}
