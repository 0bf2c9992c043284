// Package pkg provides the libraries behind mdpdf, which turns a folder of
// Markdown files into one paginated PDF.
//
// # Architecture
//
// The data flow through mdpdf:
//
//	Markdown folder
//	         ↓
//	    [discover] package (find .md files, order by numeric prefixes)
//	         ↓
//	    [markup] package (parse each file into a node tree)
//	         ↓
//	    [translate] package (nodes → layout commands)
//	         ↓
//	    [assemble] package (title page + TOC + every file)
//	         ↓
//	    [render/pdf] package (paginate, then draw with page footers)
//	         ↓
//	    PDF or JSON output
//
// [pipeline] wires these stages together and writes the output file.
// [config] loads mdpdf.toml, [errors] defines the coded errors every stage
// returns and [observability] exposes hooks for each stage.
//
// # Quick Start
//
//	opts := pipeline.Options{Source: "docs", Output: "handbook.pdf"}
//	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Stats.Pages, "pages")
//
// [discover]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/discover
// [markup]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/markup
// [translate]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/translate
// [assemble]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/assemble
// [render/pdf]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/render/pdf
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mdpdf/pkg/observability
package pkg
