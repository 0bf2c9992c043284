package pdf

import (
	"encoding/json"

	"github.com/matzehuels/mdpdf/pkg/errors"
)

type jsonOutput struct {
	PageCount int      `json:"page_count"`
	Footers   []string `json:"footers"`
	*Layout
}

// RenderJSON exports the paginated layout as a pretty-printed JSON document:
// the geometry, every page's drawing list, the anchor table and the footer
// text each page will carry. It is meant for debugging pagination and for
// tests that inspect positions without parsing PDF.
func RenderJSON(l *Layout, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{pageNumbers: DefaultPageNumbers}
	for _, opt := range opts {
		opt(&r)
	}

	total := l.PageCount()
	out := jsonOutput{PageCount: total, Footers: make([]string, total), Layout: l}
	for i := range total {
		out.Footers[i] = r.pageNumbers(i+1, total)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode layout")
	}
	return data, nil
}
