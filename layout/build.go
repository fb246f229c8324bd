package layout

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ByLCY/faktura/format"
	"github.com/ByLCY/faktura/invoice"
)

// 段落名称，同时写入 TextBox/Line/TableBox 的 Section 字段。
const (
	SectionHeader  = "header"
	SectionDetails = "details"
	SectionParties = "parties"
	SectionItems   = "items"
	SectionPayment = "payment"
	SectionNotes   = "notes"
)

// ErrNoTypesetter 表示调用方未提供排版后端。
var ErrNoTypesetter = errors.New("layout: 缺少排版后端")

// SectionError 记录布局失败的段落。
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("布局段落 %s 失败: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

type section struct {
	name string
	draw func(y float64) (float64, error)
}

// Build 依次排版各段落，返回分页后的布局结果。
//
// 游标从内容顶部开始，每个段落返回新的游标传给下一个段落。
// 任一段落失败时不返回部分结果。
func Build(inv invoice.Invoice, opts BuildOptions) (*Result, error) {
	if opts.Typesetter == nil {
		return nil, ErrNoTypesetter
	}
	geometry := opts.Geometry
	if geometry == (Geometry{}) {
		geometry = DefaultGeometry()
	}
	if err := geometry.validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("invoice", inv.Number))

	collector := newPageCollector(geometry)
	e := &engine{
		inv:      inv,
		geometry: geometry,
		surface:  collector,
		res:      DefaultResources(),
		ts:       opts.Typesetter,
		dates:    opts.Dates,
		locale:   format.LocaleFor(inv.Currency),
		logger:   logger,
	}

	sections := []section{
		{SectionHeader, e.drawHeader},
		{SectionDetails, e.drawDetails},
		{SectionParties, e.drawParties},
		{SectionItems, e.drawItems},
		{SectionPayment, e.drawPayment},
	}
	if inv.HasNotes() {
		sections = append(sections, section{SectionNotes, e.drawNotes})
	}

	y := geometry.ContentTop()
	for _, s := range sections {
		next, err := s.draw(y)
		if err != nil {
			logger.Error("section layout failed", zap.String("section", s.name), zap.Error(err))
			return nil, &SectionError{Section: s.name, Err: err}
		}
		logger.Debug("section laid out",
			zap.String("section", s.name),
			zap.Float64("from", y),
			zap.Float64("to", next),
			zap.Int("pages", collector.PageCount()),
		)
		y = next
	}

	return &Result{
		Pages:     collector.pages(),
		Resources: e.res,
		Meta:      documentMeta(inv, opts.Creator),
	}, nil
}

func documentMeta(inv invoice.Invoice, creator string) DocumentMeta {
	meta := DocumentMeta{
		Title:   strings.TrimSpace("Invoice " + inv.Number),
		Author:  inv.CompanyDetails.Name,
		Subject: inv.ClientName,
		Creator: creator,
	}
	for _, kw := range []string{strings.ToUpper(strings.TrimSpace(inv.Currency)), string(inv.Status)} {
		if kw != "" {
			meta.Keywords = append(meta.Keywords, kw)
		}
	}
	return meta
}
