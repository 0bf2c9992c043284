package pdf

import (
	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/mdpdf/pkg/layout"
)

// metrics measures strings with the core font width tables. It owns a
// page-less fpdf instance used only for GetStringWidth.
type metrics struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newMetrics() *metrics {
	p := fpdf.New("P", "pt", "Letter", "")
	return &metrics{pdf: p, tr: p.UnicodeTranslatorFromDescriptor("")}
}

// width returns the rendered width of s in points.
func (m *metrics) width(f layout.Font, size float64, s string) float64 {
	if s == "" {
		return 0
	}
	m.pdf.SetFont(f.Family, fontStyle(f.Flags), size)
	return m.pdf.GetStringWidth(m.tr(s))
}

// err reports a failure recorded by the measuring instance.
func (m *metrics) err() error {
	return m.pdf.Error()
}

// fontStyle maps font flags to an fpdf style string. Strikethrough is drawn
// separately and does not change the font.
func fontStyle(f layout.FontFlag) string {
	s := ""
	if f.Has(layout.Bold) {
		s += "B"
	}
	if f.Has(layout.Italic) {
		s += "I"
	}
	return s
}
