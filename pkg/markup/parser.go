package markup

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/matzehuels/mdpdf/pkg/errors"
)

// Document is the parsed form of one Markdown file.
type Document struct {
	Nodes       []Node
	FrontMatter map[string]any // Metadata block stripped from the top of the file, if any
}

// Parser converts Markdown source into Documents using goldmark with the GFM
// extensions (tables, strikethrough, task lists, autolinks) and automatic
// heading identifiers. A Parser holds no per-call state and can be reused.
type Parser struct {
	md goldmark.Markdown
}

// NewParser returns a Parser with the GFM extension set enabled.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Parse parses source. Source must be valid UTF-8; a leading YAML or TOML
// front matter block is stripped and returned in Document.FrontMatter.
// Failures are PARSE errors.
func (p *Parser) Parse(source []byte) (*Document, error) {
	if !utf8.Valid(source) {
		return nil, errors.New(errors.ErrCodeParse, "source is not valid UTF-8")
	}

	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "front matter")
	}

	root := p.md.Parser().Parse(text.NewReader(body))
	b := builder{source: body}

	doc := &Document{FrontMatter: meta}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if node, ok := b.block(n); ok {
			doc.Nodes = append(doc.Nodes, node)
		}
	}
	return doc, nil
}

// builder converts goldmark AST blocks into Nodes.
type builder struct {
	source []byte
}

func (b builder) block(n ast.Node) (Node, bool) {
	switch n := n.(type) {
	case *ast.Heading:
		h := Heading{Level: n.Level, Text: PlainText(b.inlines(n, Inline{}))}
		if id, ok := n.AttributeString("id"); ok {
			if raw, ok := id.([]byte); ok {
				h.ID = string(raw)
			}
		}
		return h, true
	case *ast.Paragraph:
		return Paragraph{Inlines: b.inlines(n, Inline{})}, true
	case *ast.TextBlock:
		return Paragraph{Inlines: b.inlines(n, Inline{})}, true
	case *ast.FencedCodeBlock:
		return CodeBlock{Text: b.lines(n), Language: string(n.Language(b.source))}, true
	case *ast.CodeBlock:
		return CodeBlock{Text: b.lines(n)}, true
	case *ast.List:
		l := List{Ordered: n.IsOrdered()}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			l.Items = append(l.Items, b.flatten(item))
		}
		return l, true
	case *ast.Blockquote:
		return BlockQuote{Text: b.flatten(n)}, true
	case *east.Table:
		return b.table(n), true
	case *ast.ThematicBreak:
		return HorizontalRule{}, true
	default:
		return nil, false
	}
}

func (b builder) table(n *east.Table) Table {
	var t Table
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, PlainText(b.inlines(cell, Inline{})))
		}
		if _, ok := row.(*east.TableHeader); ok {
			t.Header = cells
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// lines returns the raw content lines of a code block.
func (b builder) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(b.source))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// flatten returns all text below a block node on a single line, with runs of
// whitespace collapsed. Nested lists end up inline in their parent item.
func (b builder) flatten(n ast.Node) string {
	var parts []string
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
				parts = append(parts, PlainText(b.inlines(c, Inline{})))
			case *ast.FencedCodeBlock, *ast.CodeBlock:
				parts = append(parts, b.lines(c))
			case *east.Table:
				t := b.table(c)
				parts = append(parts, strings.Join(t.Header, " "))
				for _, row := range t.Rows {
					parts = append(parts, strings.Join(row, " "))
				}
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// inlines collects the inline runs below n, inheriting the attributes in st.
func (b builder) inlines(n ast.Node, st Inline) []Inline {
	var out []Inline
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, b.inline(c, st)...)
	}
	return merge(out)
}

func (b builder) inline(n ast.Node, st Inline) []Inline {
	switch n := n.(type) {
	case *ast.Text:
		out := []Inline{withText(st, string(n.Segment.Value(b.source)))}
		if n.SoftLineBreak() || n.HardLineBreak() {
			out = append(out, withText(Inline{}, "\n"))
		}
		return out
	case *ast.String:
		return []Inline{withText(st, string(n.Value))}
	case *ast.CodeSpan:
		st.Code = true
		return b.inlines(n, st)
	case *ast.Emphasis:
		if n.Level >= 2 {
			st.Strong = true
		} else {
			st.Emphasis = true
		}
		return b.inlines(n, st)
	case *east.Strikethrough:
		st.Strike = true
		return b.inlines(n, st)
	case *ast.Link:
		st.URL = string(n.Destination)
		return b.inlines(n, st)
	case *ast.AutoLink:
		st.URL = string(n.URL(b.source))
		return []Inline{withText(st, string(n.Label(b.source)))}
	case *ast.Image:
		return b.inlines(n, st)
	case *east.TaskCheckBox:
		if n.IsChecked {
			return []Inline{withText(st, "[x] ")}
		}
		return []Inline{withText(st, "[ ] ")}
	case *ast.RawHTML:
		return nil
	default:
		return b.inlines(n, st)
	}
}

func withText(st Inline, s string) Inline {
	st.Text = s
	return st
}

// merge joins adjacent runs with identical attributes.
func merge(in []Inline) []Inline {
	var out []Inline
	for _, r := range in {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && r.Text != "\n" && out[n-1].Text != "\n" && sameAttrs(out[n-1], r) {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

func sameAttrs(a, b Inline) bool {
	return a.Strong == b.Strong && a.Emphasis == b.Emphasis && a.Code == b.Code &&
		a.Strike == b.Strike && a.URL == b.URL
}
