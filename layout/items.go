package layout

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ByLCY/faktura/format"
	"github.com/ByLCY/faktura/invoice"
)

// ErrMissingCurrency 表示发票未设置币种，明细表无法格式化金额。
var ErrMissingCurrency = errors.New("发票缺少币种（currency）")

var itemHeaders = [4]string{"Description", "Quantity", "Price", "Total"}

var itemAligns = [4]string{"left", "center", "right", "right"}

// drawItems 绘制明细表与表下方的合计。表格跨页时拆段，每段重复表头。
// 合计为各行小计之和，不含税。
func (e *engine) drawItems(y float64) (float64, error) {
	currency := strings.TrimSpace(e.inv.Currency)
	if currency == "" {
		return y, ErrMissingCurrency
	}

	left := e.geometry.Margin.Left
	width := e.geometry.PrintableWidth()
	widths := make([]float64, len(itemColumns))
	for i, ratio := range itemColumns {
		widths[i] = width * ratio
	}

	header, err := e.buildRow(itemHeaders, left, widths, true)
	if err != nil {
		return y, err
	}
	body := make([]TableRow, 0, len(e.inv.Items))
	for _, item := range e.inv.Items {
		row, err := e.buildRow(itemCells(item, currency), left, widths, false)
		if err != nil {
			return y, err
		}
		body = append(body, row)
	}

	need := itemsTitleGap + header.Height
	if len(body) > 0 {
		need += body[0].Height
	}
	y = e.ensureSpace(y, need)
	e.text(SectionItems, "Items", left, y, width, styleHeading)
	y += itemsTitleGap

	newSegment := func(top float64) TableBox {
		fill := colorPrimary
		return TableBox{
			Section:      SectionItems,
			X:            left,
			Y:            top,
			Width:        width,
			ColumnWidths: widths,
			Rows:         []TableRow{placeRow(header, top)},
			BorderColor:  colorSecondary,
			HeaderFill:   &fill,
		}
	}

	seg := newSegment(y)
	for _, row := range body {
		bottom := seg.Y + seg.Height()
		// 只有表头的分段不换页，避免超高行导致空表
		if bottom+row.Height > e.geometry.ContentBottom() && len(seg.Rows) > 1 {
			e.surface.Table(seg)
			e.surface.NewPage()
			seg = newSegment(e.geometry.ContentTop())
			bottom = seg.Y + seg.Height()
		}
		seg.Rows = append(seg.Rows, placeRow(row, bottom))
	}
	e.surface.Table(seg)
	y = seg.Y + seg.Height()

	total := "Total: " + format.Currency(e.inv.Subtotal(), currency)
	st := styleHeading.aligned("right")
	tw, err := e.textWidth(total, st)
	if err != nil {
		return y, err
	}
	ty := e.ensureSpace(y+itemsTotalGap, lineHeight)
	e.text(SectionItems, total, left+width-tw, ty, tw, st)
	return ty + itemsTrailing, nil
}

func itemCells(item invoice.Item, currency string) [4]string {
	qty := "1"
	if item.Quantity != nil {
		qty = strconv.FormatFloat(*item.Quantity, 'f', -1, 64)
	}
	return [4]string{
		item.Description,
		qty,
		format.Currency(item.Price, currency),
		format.Currency(item.LineTotal(), currency),
	}
}

// buildRow 在 y=0 处排版一行，由 placeRow 平移到最终位置。
func (e *engine) buildRow(cells [4]string, x float64, widths []float64, header bool) (TableRow, error) {
	row := TableRow{IsHeader: header}
	maxHeight := 0.0
	cx := x
	for i, content := range cells {
		st := styleBody.aligned(itemAligns[i])
		if header {
			st = styleLabel
			st.color = colorWhite
		}
		cellWidth := widths[i] - 2*cellPadding
		if cellWidth <= 0 {
			cellWidth = widths[i]
		}
		tb, err := e.composeTextBox(SectionItems, content, cx+cellPadding, cellPadding, cellWidth, st)
		if err != nil {
			return TableRow{}, err
		}
		row.Cells = append(row.Cells, TableCell{Text: tb})
		maxHeight = max(maxHeight, tb.Height)
		cx += widths[i]
	}
	row.Height = maxHeight + 2*cellPadding
	return row, nil
}

func placeRow(row TableRow, y float64) TableRow {
	out := row
	out.Y = y
	out.Cells = make([]TableCell, len(row.Cells))
	for i, c := range row.Cells {
		c.Text.Y += y
		out.Cells[i] = c
	}
	return out
}
