package renderer

import (
	"context"

	"github.com/ByLCY/faktura/layout"
)

// Renderer 将布局结果输出为最终文件，例如 PDF。
// Render 返回生成的二进制数据以及可能的错误；ctx 取消时尽快返回。
type Renderer interface {
	Render(ctx context.Context, result *layout.Result) ([]byte, error)
}

// Backend 同时负责排版测量与最终输出，布局与渲染必须使用同一套字体度量。
type Backend interface {
	Renderer
	layout.Typesetter
}
