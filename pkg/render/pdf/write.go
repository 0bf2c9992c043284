package pdf

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/mdpdf/pkg/errors"
	"github.com/matzehuels/mdpdf/pkg/layout"
)

// PageNumberFunc formats the footer of page n out of total.
type PageNumberFunc func(n, total int) string

// DefaultPageNumbers renders "Page n of total".
func DefaultPageNumbers(n, total int) string {
	return fmt.Sprintf("Page %d of %d", n, total)
}

// PDFOption configures PDF rendering via [RenderPDF].
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	pageNumbers PageNumberFunc
	title       string
	author      string
	subject     string
	keywords    string
	creator     string
	created     time.Time
	compress    bool
}

// WithPageNumbers replaces the footer format.
func WithPageNumbers(f PageNumberFunc) PDFOption {
	return func(r *pdfRenderer) {
		if f != nil {
			r.pageNumbers = f
		}
	}
}

// WithTitle sets the document title metadata.
func WithTitle(s string) PDFOption { return func(r *pdfRenderer) { r.title = s } }

// WithAuthor sets the document author metadata.
func WithAuthor(s string) PDFOption { return func(r *pdfRenderer) { r.author = s } }

// WithSubject sets the document subject metadata.
func WithSubject(s string) PDFOption { return func(r *pdfRenderer) { r.subject = s } }

// WithKeywords sets the document keywords metadata.
func WithKeywords(s string) PDFOption { return func(r *pdfRenderer) { r.keywords = s } }

// WithCreator sets the producing application metadata.
func WithCreator(s string) PDFOption { return func(r *pdfRenderer) { r.creator = s } }

// WithCreationDate pins the creation timestamp. Tests use it for stable output.
func WithCreationDate(t time.Time) PDFOption { return func(r *pdfRenderer) { r.created = t } }

// WithCompression toggles stream compression (on by default).
func WithCompression(on bool) PDFOption { return func(r *pdfRenderer) { r.compress = on } }

// RenderPDF replays a paginated layout into a PDF file. Every page gets a
// footer computed from the final page count, so the text of each footer is
// known before any page is drawn.
func RenderPDF(l *Layout, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{pageNumbers: DefaultPageNumbers, compress: true}
	for _, opt := range opts {
		opt(&r)
	}

	g := l.Geometry
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.Width, Ht: g.Height},
	})
	doc.SetMargins(g.Margins.Left, g.Margins.Top, g.Margins.Right)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(r.compress)
	r.metadata(doc)

	tr := doc.UnicodeTranslatorFromDescriptor("")

	links := make(map[string]int, len(l.Anchors))
	for _, name := range slices.Sorted(maps.Keys(l.Anchors)) {
		a := l.Anchors[name]
		id := doc.AddLink()
		doc.SetLink(id, a.Y, a.Page)
		links[name] = id
	}

	total := l.PageCount()
	styles := l.styles
	if styles == nil {
		styles = layout.DefaultStyles()
	}
	footer := styles.Footer()

	for _, pg := range l.Pages {
		doc.AddPage()

		for _, m := range pg.Marks {
			doc.Bookmark(m.Text, m.Level-1, m.Y)
		}
		for _, op := range pg.Rects {
			drawRect(doc, op)
		}
		for _, op := range pg.Texts {
			setFont(doc, op.Font, op.Size)
			doc.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
			doc.Text(op.X, op.Y, tr(op.Text))

			top := op.Y - 0.8*op.Size
			if op.URL != "" {
				doc.LinkString(op.X, top, op.Width, op.Size, op.URL)
			}
			if id, ok := links[op.Link]; ok && op.Link != "" {
				doc.Link(op.X, top, op.Width, op.Size, id)
			}
		}

		text := tr(r.pageNumbers(pg.Number, total))
		setFont(doc, footer.Font, footer.Size)
		doc.SetTextColor(footer.Color.R, footer.Color.G, footer.Color.B)
		w := doc.GetStringWidth(text)
		doc.Text(g.Width-footer.Offset-w, g.Height-footer.Offset, text)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "write pdf")
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) metadata(doc *fpdf.Fpdf) {
	if r.title != "" {
		doc.SetTitle(r.title, true)
	}
	if r.author != "" {
		doc.SetAuthor(r.author, true)
	}
	if r.subject != "" {
		doc.SetSubject(r.subject, true)
	}
	if r.keywords != "" {
		doc.SetKeywords(r.keywords, true)
	}
	if r.creator != "" {
		doc.SetCreator(r.creator, true)
	}
	if !r.created.IsZero() {
		doc.SetCreationDate(r.created)
	}
}

func setFont(doc *fpdf.Fpdf, f layout.Font, size float64) {
	doc.SetFont(f.Family, fontStyle(f.Flags), size)
}

func drawRect(doc *fpdf.Fpdf, op RectOp) {
	style := ""
	if op.Fill != nil {
		doc.SetFillColor(op.Fill.R, op.Fill.G, op.Fill.B)
		style += "F"
	}
	if op.Stroke != nil {
		doc.SetDrawColor(op.Stroke.R, op.Stroke.G, op.Stroke.B)
		if op.LineWidth > 0 {
			doc.SetLineWidth(op.LineWidth)
		}
		style += "D"
	}
	if style == "" {
		return
	}
	doc.Rect(op.X, op.Y, op.W, op.H, style)
}
