// Package pdf lays out a layout.Document onto pages and writes it as PDF.
//
// Rendering happens in two explicit passes:
//
//  1. Paginate breaks text into lines using the core PDF font metrics, splits
//     paragraphs, code blocks and tables across pages, and returns a Layout:
//     one snapshot of positioned drawing operations per page plus the final
//     page count.
//  2. RenderPDF replays each snapshot into a fresh PDF and stamps the footer
//     ("Page 3 of 12") using the now-known total, then installs internal
//     links and bookmarks.
//
// Because the page count is only needed in pass 2, every page can show the
// final total without patching pages after the fact. RenderJSON dumps the
// same Layout for inspection:
//
//	l, err := pdf.Paginate(doc.Commands(), geom, styles)
//	if err != nil {
//	    return err
//	}
//	data, err := pdf.RenderPDF(l, pdf.WithTitle("Project Documentation"))
//
// Text uses the standard 14 PDF fonts (Helvetica, Courier), so non Latin-1
// characters are approximated by the cp1252 translation table.
package pdf
