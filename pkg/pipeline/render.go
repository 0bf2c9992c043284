package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/mdpdf/pkg/assemble"
	"github.com/matzehuels/mdpdf/pkg/buildinfo"
	"github.com/matzehuels/mdpdf/pkg/layout"
	"github.com/matzehuels/mdpdf/pkg/observability"
	"github.com/matzehuels/mdpdf/pkg/render/pdf"
)

// Render paginates doc and encodes it in opts.Format. It returns the encoded
// bytes and the page count.
func (r *Runner) Render(ctx context.Context, doc *layout.Document, opts Options, runID string) ([]byte, int, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, 0, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()

	data, pages, err := r.render(ctx, doc, opts, runID)
	hooks.OnRenderComplete(ctx, opts.Format, pages, time.Since(start), err)
	return data, pages, err
}

func (r *Runner) render(ctx context.Context, doc *layout.Document, opts Options, runID string) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	l, err := pdf.Paginate(doc.Commands(), opts.Geometry(), r.Styles)
	if err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	var data []byte
	switch opts.Format {
	case FormatJSON:
		data, err = pdf.RenderJSON(l)
	default:
		data, err = pdf.RenderPDF(l, pdfOptions(opts, runID)...)
	}
	if err != nil {
		return nil, 0, err
	}
	return data, l.PageCount(), nil
}

func pdfOptions(opts Options, runID string) []pdf.PDFOption {
	title := opts.Title
	if title == "" {
		title = assemble.DefaultTitle
	}
	out := []pdf.PDFOption{
		pdf.WithTitle(title),
		pdf.WithSubject("Generated from: " + opts.Source),
		pdf.WithCreator("mdpdf " + buildinfo.Version),
		pdf.WithKeywords("mdpdf build " + runID),
	}
	if opts.Author != "" {
		out = append(out, pdf.WithAuthor(opts.Author))
	}
	if !opts.Generated.IsZero() {
		out = append(out, pdf.WithCreationDate(opts.Generated))
	}
	return out
}
