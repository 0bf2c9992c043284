// Package render groups the output backends for layout commands.
//
// The [pdf] subpackage paginates a [layout.Document] and writes it either as
// a PDF file or as a JSON dump of the page layout:
//
//	l, err := pdf.Paginate(doc.Commands(), geom, nil)
//	data, err := pdf.RenderPDF(l, pdf.WithTitle("Handbook"))
//
// [pdf]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/render/pdf
// [layout.Document]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/layout#Document
package render
