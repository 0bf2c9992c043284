package pdf

import (
	"github.com/matzehuels/mdpdf/pkg/layout"
)

// table lays out a grid centered in the content box. Column widths follow
// the widest cell in each column and shrink proportionally when the table is
// wider than the page. Short rows are padded with empty cells. A row moves to
// the next page when it does not fit; only a row taller than a whole page is
// split, line by line. The header is not repeated.
func (p *paginator) table(c layout.TableBlock) {
	ncols := 0
	for _, r := range c.Rows {
		ncols = max(ncols, len(r))
	}
	if ncols == 0 {
		return
	}

	ts := p.styles.Table()
	header := layout.Style{Font: ts.HeaderFont, Size: ts.Size, Leading: ts.Leading, Color: ts.HeaderColor, Align: layout.AlignCenter}
	bodyStyle := layout.Style{Font: ts.BodyFont, Size: ts.Size, Leading: ts.Leading, Color: ts.BodyColor, Align: layout.AlignCenter}
	isHeader := func(i int) bool { return c.Header && i == 0 }

	widths := make([]float64, ncols)
	for i, r := range c.Rows {
		st := bodyStyle
		if isHeader(i) {
			st = header
		}
		for j, cell := range r {
			widths[j] = max(widths[j], p.m.width(st.Font, st.Size, cell)+2*ts.PadX)
		}
	}
	for j := range widths {
		widths[j] = max(widths[j], 2*ts.PadX+ts.Size)
	}

	total := 0.0
	for _, w := range widths {
		total += w
	}
	if cw := p.geom.ContentWidth(); total > cw {
		scale := cw / total
		for j := range widths {
			widths[j] *= scale
		}
		total = cw
	}
	x0 := p.left() + (p.geom.ContentWidth()-total)/2

	for i, r := range c.Rows {
		row := tableRow{style: bodyStyle, bg: ts.BodyBackground, padBottom: ts.PadBottom}
		if isHeader(i) {
			row = tableRow{style: header, bg: ts.HeaderBackground, padBottom: ts.HeaderPadBottom}
		}

		row.cells = make([][]line, ncols)
		nlines := 1
		for j := range ncols {
			text := ""
			if j < len(r) {
				text = r[j]
			}
			row.cells[j] = p.m.layoutText([]layout.Span{layout.Plain(text)}, row.style, widths[j]-2*ts.PadX)
			nlines = max(nlines, len(row.cells[j]))
		}

		p.ensure(ts.PadTop + float64(nlines)*ts.Leading + row.padBottom)
		for from := 0; from < nlines; {
			room := p.bottom() - p.y - ts.PadTop - row.padBottom
			n := min(nlines-from, int((room+epsilon)/ts.Leading))
			if n < 1 {
				if !p.atTop() {
					p.newPage()
					continue
				}
				n = 1
			}
			p.tableRowPart(row, x0, widths, from, from+n)
			from += n
			if from < nlines {
				p.newPage()
			}
		}
	}
	p.y += ts.SpaceAfter
}

type tableRow struct {
	style     layout.Style
	bg        layout.Color
	padBottom float64
	cells     [][]line
}

// tableRowPart draws lines [from, to) of every cell of a row at the cursor.
func (p *paginator) tableRowPart(row tableRow, x0 float64, widths []float64, from, to int) {
	ts := p.styles.Table()
	h := ts.PadTop + float64(to-from)*ts.Leading + row.padBottom
	top := p.y
	x := x0
	grid := ts.GridColor
	for j, cell := range row.cells {
		fill := row.bg
		p.page().Rects = append(p.page().Rects, RectOp{
			X: x, Y: top, W: widths[j], H: h, Fill: &fill, Stroke: &grid, LineWidth: ts.GridWidth,
		})
		p.y = top + ts.PadTop
		for k := from; k < min(to, len(cell)); k++ {
			p.drawLine(cell[k], row.style, x+ts.PadX, widths[j]-2*ts.PadX, "")
		}
		x += widths[j]
	}
	p.y = top + h
}
