// Package export 将发票生成为可下载的 PDF 文档。
package export

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ByLCY/faktura/binding"
	"github.com/ByLCY/faktura/format"
	"github.com/ByLCY/faktura/invoice"
	"github.com/ByLCY/faktura/layout"
)

//go:generate mockgen -source=export.go -destination=renderer_mock.go -package=export

// DefaultFileNamePattern 在 Options.FileNamePattern 为空时使用。
const DefaultFileNamePattern = "invoice-${number}.pdf"

// Renderer 为布局引擎测量文本并输出最终结果，布局与渲染必须使用同一套字体度量。
type Renderer interface {
	Render(ctx context.Context, result *layout.Result) ([]byte, error)
	LayoutLines(content string, width float64, font layout.FontResource, fontSize, lineHeight float64, wrap string) ([]layout.TextLine, error)
	TextWidth(content string, font layout.FontResource, fontSize float64) (float64, error)
}

type Options struct {
	Logger          *zap.Logger
	FileNamePattern string
	Geometry        layout.Geometry
	Dates           format.DateFormatter
	Creator         string
	Clock           func() time.Time
}

// Document 是渲染完成、可直接下载的发票。
type Document struct {
	FileName string
	Bytes    []byte
	Pages    int
	Invoice  invoice.Invoice // after settings were applied
}

type Generator struct {
	renderer Renderer
	opts     Options
	logger   *zap.Logger
}

func NewGenerator(r Renderer, opts Options) *Generator {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if strings.TrimSpace(opts.FileNamePattern) == "" {
		opts.FileNamePattern = DefaultFileNamePattern
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Generator{renderer: r, opts: opts, logger: opts.Logger}
}

// Layout 应用用户设置并完成布局，不渲染。
func (g *Generator) Layout(ctx context.Context, inv invoice.Invoice, settings *invoice.Settings) (*layout.Result, invoice.Invoice, error) {
	if settings != nil {
		inv = invoice.Resolve(inv, settings)
	}
	if err := ctx.Err(); err != nil {
		return nil, inv, err
	}
	res, err := layout.Build(inv, layout.BuildOptions{
		Typesetter: g.renderer,
		Geometry:   g.opts.Geometry,
		Dates:      g.opts.Dates,
		Logger:     g.logger,
		Creator:    g.opts.Creator,
	})
	if err != nil {
		return nil, inv, err
	}
	return res, inv, nil
}

// Generate 布局并渲染发票。布局前与渲染前都会检查 ctx，调用方的截止时间可以中止生成。
func (g *Generator) Generate(ctx context.Context, inv invoice.Invoice, settings *invoice.Settings) (*Document, error) {
	start := g.opts.Clock()
	res, resolved, err := g.Layout(ctx, inv, settings)
	if err != nil {
		return nil, fmt.Errorf("发票 %q 布局失败: %w", inv.Number, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := g.renderer.Render(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("发票 %q 渲染失败: %w", inv.Number, err)
	}

	doc := &Document{
		FileName: g.FileName(resolved),
		Bytes:    data,
		Pages:    len(res.Pages),
		Invoice:  resolved,
	}
	g.logger.Info("invoice generated",
		zap.String("number", resolved.Number),
		zap.String("file", doc.FileName),
		zap.Int("pages", doc.Pages),
		zap.Int("bytes", len(data)),
		zap.Duration("took", g.opts.Clock().Sub(start)),
	)
	return doc, nil
}

// FileName 用发票的 JSON 字段展开文件名模板；没有编号的发票使用时间戳命名。
func (g *Generator) FileName(inv invoice.Invoice) string {
	fallback := fmt.Sprintf("invoice-%d.pdf", g.opts.Clock().UnixMilli())
	if strings.TrimSpace(inv.Number) == "" {
		return fallback
	}
	view, err := binding.View(inv)
	if err != nil {
		g.logger.Warn("file name pattern skipped", zap.Error(err))
		return fallback
	}
	name := binding.Interpolate(g.opts.FileNamePattern, view)
	if binding.HasPlaceholders(name) {
		g.logger.Warn("file name pattern has unresolved fields", zap.String("pattern", g.opts.FileNamePattern))
		name = binding.Interpolate(DefaultFileNamePattern, view)
	}
	name = sanitize(name)
	if !strings.EqualFold(path.Ext(name), ".pdf") {
		name += ".pdf"
	}
	return name
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, strings.ContainsRune(`/\:*?"<>|`, r):
			return '-'
		default:
			return r
		}
	}, strings.TrimSpace(name))
}
