package pdf

import (
	"strings"

	"github.com/matzehuels/mdpdf/pkg/errors"
	"github.com/matzehuels/mdpdf/pkg/layout"
)

// TextOp draws one run of text. Y is the baseline measured from the top of
// the page.
type TextOp struct {
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
	Text  string       `json:"text"`
	Font  layout.Font  `json:"font"`
	Size  float64      `json:"size"`
	Color layout.Color `json:"color"`
	Width float64      `json:"width"`
	URL   string       `json:"url,omitempty"`
	Link  string       `json:"link,omitempty"`
}

// RectOp fills and/or strokes a rectangle. Y is the top edge measured from
// the top of the page.
type RectOp struct {
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	W         float64       `json:"w"`
	H         float64       `json:"h"`
	Fill      *layout.Color `json:"fill,omitempty"`
	Stroke    *layout.Color `json:"stroke,omitempty"`
	LineWidth float64       `json:"line_width,omitempty"`
}

// Mark is an outline entry placed on a page.
type Mark struct {
	Text  string  `json:"text"`
	Level int     `json:"level"`
	Y     float64 `json:"y"`
}

// Page is the drawing list of one physical page. Rects are drawn before Texts.
type Page struct {
	Number int      `json:"number"`
	Rects  []RectOp `json:"rects,omitempty"`
	Texts  []TextOp `json:"texts,omitempty"`
	Marks  []Mark   `json:"marks,omitempty"`
}

func (p *Page) empty() bool {
	return len(p.Rects) == 0 && len(p.Texts) == 0 && len(p.Marks) == 0
}

// Anchor locates a link target.
type Anchor struct {
	Page int     `json:"page"`
	Y    float64 `json:"y"`
}

// Layout is the result of the first pass: every page's drawing list and the
// position of every anchor. The page count is final once Paginate returns.
type Layout struct {
	Geometry Geometry          `json:"geometry"`
	Pages    []*Page           `json:"pages"`
	Anchors  map[string]Anchor `json:"anchors"`

	styles *layout.Styles
}

// PageCount returns the total number of pages.
func (l *Layout) PageCount() int { return len(l.Pages) }

// Paginate lays out cmds on pages of the given geometry. A nil styles uses
// layout.DefaultStyles. The result always has at least one page.
func Paginate(cmds []layout.Command, geom Geometry, styles *layout.Styles) (*Layout, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if styles == nil {
		styles = layout.DefaultStyles()
	}

	p := &paginator{
		geom:    geom,
		styles:  styles,
		m:       newMetrics(),
		anchors: make(map[string]Anchor),
	}
	p.newPage()

	for _, c := range cmds {
		switch c := c.(type) {
		case layout.TitleText:
			p.title(c)
		case layout.BodyText:
			p.body(c)
		case layout.Preformatted:
			p.preformatted(c)
		case layout.TableBlock:
			p.table(c)
		case layout.Spacer:
			p.spacer(c.Size)
		case layout.PageBreak:
			if !p.atTop() {
				p.newPage()
			}
		}
		if err := p.m.err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "measure text")
		}
	}

	if n := len(p.pages); n > 1 && p.pages[n-1].empty() {
		p.pages = p.pages[:n-1]
	}

	return &Layout{
		Geometry: geom,
		Pages:    p.pages,
		Anchors:  p.anchors,
		styles:   styles,
	}, nil
}

type paginator struct {
	geom    Geometry
	styles  *layout.Styles
	m       *metrics
	pages   []*Page
	anchors map[string]Anchor
	y       float64
}

const epsilon = 0.01

func (p *paginator) top() float64    { return p.geom.Margins.Top }
func (p *paginator) bottom() float64 { return p.geom.Height - p.geom.Margins.Bottom }
func (p *paginator) left() float64   { return p.geom.Margins.Left }
func (p *paginator) atTop() bool     { return p.y <= p.top()+epsilon }
func (p *paginator) page() *Page     { return p.pages[len(p.pages)-1] }

func (p *paginator) newPage() {
	p.pages = append(p.pages, &Page{Number: len(p.pages) + 1})
	p.y = p.top()
}

// fits reports whether h more points fit on the current page.
func (p *paginator) fits(h float64) bool {
	return p.y+h <= p.bottom()+epsilon
}

// ensure starts a new page when h does not fit, unless the page is still
// empty at the top.
func (p *paginator) ensure(h float64) {
	if !p.fits(h) && !p.atTop() {
		p.newPage()
	}
}

func (p *paginator) before(space float64) {
	if !p.atTop() {
		p.y += space
	}
}

func (p *paginator) spacer(size float64) {
	if !p.fits(size) && !p.atTop() {
		p.newPage()
		return
	}
	p.y += size
}

func (p *paginator) title(c layout.TitleText) {
	st := p.styles.Tier(c.Tier)
	x0 := p.left() + st.IndentLeft
	avail := p.geom.ContentWidth() - st.IndentLeft - st.IndentRight
	lines := p.m.layoutText([]layout.Span{layout.Plain(c.Text)}, st, avail)

	// Keep the title with at least one line of what follows.
	body := p.styles.Tier(layout.BodyTier)
	need := float64(len(lines))*st.Leading + body.Leading
	if !p.atTop() {
		need += st.SpaceBefore
	}
	if !p.fits(need) && !p.atTop() {
		p.newPage()
	}
	p.before(st.SpaceBefore)

	if c.Anchor != "" {
		p.anchors[c.Anchor] = Anchor{Page: len(p.pages), Y: p.y}
	}
	if c.Outline > 0 {
		p.page().Marks = append(p.page().Marks, Mark{Text: c.Text, Level: c.Outline, Y: p.y})
	}

	for _, ln := range lines {
		p.ensure(st.Leading)
		p.drawLine(ln, st, x0, avail, "")
	}
	p.y += st.SpaceAfter
}

func (p *paginator) body(c layout.BodyText) {
	st := p.styles.Tier(layout.BodyTier)
	x0 := p.left() + st.IndentLeft
	avail := p.geom.ContentWidth() - st.IndentLeft - st.IndentRight
	lines := p.m.layoutText(c.Spans, st, avail)

	p.before(st.SpaceBefore)
	for _, ln := range lines {
		p.ensure(st.Leading)
		p.drawLine(ln, st, x0, avail, c.Link)
	}
	p.y += st.SpaceAfter
}

// codePad is the vertical padding inside a code block background.
const codePad = 4.0

func (p *paginator) preformatted(c layout.Preformatted) {
	st := p.styles.Tier(layout.Code)
	indent := p.codeIndent(st)
	x0 := p.left() + indent
	avail := p.geom.ContentWidth() - indent

	var lines []line
	for _, raw := range strings.Split(c.Text, "\n") {
		lines = append(lines, p.codeLines(raw, st, avail)...)
	}

	p.before(st.SpaceBefore)
	p.ensure(2*codePad + st.Leading)
	start := p.y
	p.y += codePad

	closeBox := func() {
		if st.Background != nil {
			bg := *st.Background
			p.page().Rects = append(p.page().Rects, RectOp{
				X: x0 - codePad, Y: start, W: avail + 2*codePad, H: p.y + codePad - start, Fill: &bg,
			})
		}
	}

	for _, ln := range lines {
		if !p.fits(st.Leading + codePad) {
			closeBox()
			p.newPage()
			start = p.y
			p.y += codePad
		}
		p.drawLine(ln, st, x0, avail, "")
	}
	closeBox()
	p.y += codePad + st.SpaceAfter
}

// codeIndent returns the left indent of a code block. The right indent is not
// applied, and the left one shrinks when layout.CodeWidth characters would not
// fit otherwise.
func (p *paginator) codeIndent(st layout.Style) float64 {
	need := p.m.width(st.Font, st.Size, strings.Repeat("M", layout.CodeWidth))
	return max(0, min(st.IndentLeft, p.geom.ContentWidth()-need))
}

// codeLines keeps a preformatted line verbatim, splitting it between
// characters only when it is wider than the content box.
func (p *paginator) codeLines(raw string, st layout.Style, avail float64) []line {
	ts := textStyle{font: st.Font, size: st.Size, color: st.Color}
	if raw == "" {
		return []line{{}}
	}
	w := p.m.width(ts.font, ts.size, raw)
	tok := token{kind: tokWord, segs: []segment{{text: raw, style: ts, width: w}}, width: w}
	if w <= avail+epsilon {
		return []line{{segs: tok.segs, width: w}}
	}
	var out []line
	for _, piece := range p.m.splitWord(tok, avail) {
		out = append(out, line{segs: piece.segs, width: piece.width})
	}
	return out
}

// drawLine emits one line at the cursor and advances by the style's leading.
func (p *paginator) drawLine(ln line, st layout.Style, x0, avail float64, link string) {
	x := x0
	switch st.Align {
	case layout.AlignCenter:
		x += (avail - ln.width) / 2
	case layout.AlignRight:
		x += avail - ln.width
	}
	baseline := p.y + st.Leading - 0.2*st.Size
	pg := p.page()
	for _, s := range ln.segs {
		pg.Texts = append(pg.Texts, TextOp{
			X:     x,
			Y:     baseline,
			Text:  s.text,
			Font:  s.style.font,
			Size:  s.style.size,
			Color: s.style.color,
			Width: s.width,
			URL:   s.style.url,
			Link:  link,
		})
		if s.style.strike {
			c := s.style.color
			pg.Rects = append(pg.Rects, RectOp{
				X: x, Y: baseline - 0.3*s.style.size, W: s.width, H: 0.05 * s.style.size, Fill: &c,
			})
		}
		x += s.width
	}
	p.y += st.Leading
}
