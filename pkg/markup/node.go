// Package markup turns Markdown source into a flat sequence of block nodes.
//
// The node set is deliberately small: headings, paragraphs, code blocks, lists,
// block quotes, tables and horizontal rules. Everything else the Markdown
// parser understands (raw HTML blocks, link reference definitions, ...) is
// dropped while building the sequence.
//
// Node is a closed set: only the types in this package implement it, so a
// type switch over Node sees every variant.
package markup

// Node is a top-level block of a parsed document.
type Node interface {
	node()
}

// Heading is an ATX or setext heading.
type Heading struct {
	Level int    // 1..6
	Text  string // Plain text of the heading
	ID    string // Stable identifier derived from the text ("getting-started")
}

// Paragraph is a block of inline content.
type Paragraph struct {
	Inlines []Inline
}

// CodeBlock is a fenced or indented code block.
type CodeBlock struct {
	Text     string // Raw lines joined with "\n", without a trailing newline
	Language string // Info string of a fenced block, if any
}

// List is an ordered or unordered list. Each item is the flattened text of
// the item, including the text of any nested lists.
type List struct {
	Ordered bool
	Items   []string
}

// BlockQuote is a quoted block flattened to plain text.
type BlockQuote struct {
	Text string
}

// Table is a GFM table. Header is nil when the table has no header row.
type Table struct {
	Header []string
	Rows   [][]string
}

// HorizontalRule is a thematic break.
type HorizontalRule struct{}

func (Heading) node()        {}
func (Paragraph) node()      {}
func (CodeBlock) node()      {}
func (List) node()           {}
func (BlockQuote) node()     {}
func (Table) node()          {}
func (HorizontalRule) node() {}

// Inline is a run of paragraph text sharing one set of attributes.
// Line breaks inside a paragraph appear as a run whose Text is "\n".
type Inline struct {
	Text     string
	Strong   bool
	Emphasis bool
	Code     bool
	Strike   bool
	URL      string // Link target when the run is part of a link
}

// PlainText concatenates the text of inlines.
func PlainText(inlines []Inline) string {
	n := 0
	for _, in := range inlines {
		n += len(in.Text)
	}
	buf := make([]byte, 0, n)
	for _, in := range inlines {
		buf = append(buf, in.Text...)
	}
	return string(buf)
}
