package markup

import (
	"reflect"
	"testing"

	"github.com/matzehuels/mdpdf/pkg/errors"
)

func parse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := NewParser().Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestParseHeadings(t *testing.T) {
	doc := parse(t, "# Getting Started\n\n## Install *now*\n\n#### Small print\n")

	want := []Node{
		Heading{Level: 1, Text: "Getting Started", ID: "getting-started"},
		Heading{Level: 2, Text: "Install now", ID: "install-now"},
		Heading{Level: 4, Text: "Small print", ID: "small-print"},
	}
	if !reflect.DeepEqual(doc.Nodes, want) {
		t.Errorf("Nodes = %#v, want %#v", doc.Nodes, want)
	}
}

func TestParseParagraphInlines(t *testing.T) {
	doc := parse(t, "Run `make build` then **ship** it, *carefully* ~~maybe~~.\n")

	if len(doc.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(doc.Nodes))
	}
	p, ok := doc.Nodes[0].(Paragraph)
	if !ok {
		t.Fatalf("node is %T, want Paragraph", doc.Nodes[0])
	}

	want := []Inline{
		{Text: "Run "},
		{Text: "make build", Code: true},
		{Text: " then "},
		{Text: "ship", Strong: true},
		{Text: " it, "},
		{Text: "carefully", Emphasis: true},
		{Text: " "},
		{Text: "maybe", Strike: true},
		{Text: "."},
	}
	if !reflect.DeepEqual(p.Inlines, want) {
		t.Errorf("Inlines = %#v, want %#v", p.Inlines, want)
	}
}

func TestParseNewlineBecomesBreak(t *testing.T) {
	doc := parse(t, "first line\nsecond line\n")

	p := doc.Nodes[0].(Paragraph)
	want := []Inline{{Text: "first line"}, {Text: "\n"}, {Text: "second line"}}
	if !reflect.DeepEqual(p.Inlines, want) {
		t.Errorf("Inlines = %#v, want %#v", p.Inlines, want)
	}
}

func TestParseLinks(t *testing.T) {
	doc := parse(t, "See [the docs](https://example.com/docs).\n")

	p := doc.Nodes[0].(Paragraph)
	if len(p.Inlines) != 3 {
		t.Fatalf("Inlines = %#v", p.Inlines)
	}
	if p.Inlines[1].Text != "the docs" || p.Inlines[1].URL != "https://example.com/docs" {
		t.Errorf("link run = %#v", p.Inlines[1])
	}
}

func TestParseCodeBlock(t *testing.T) {
	doc := parse(t, "```go\nfunc main() {\n\n\tprintln(1)\n}\n```\n")

	want := CodeBlock{Text: "func main() {\n\n\tprintln(1)\n}", Language: "go"}
	if len(doc.Nodes) != 1 || !reflect.DeepEqual(doc.Nodes[0], want) {
		t.Errorf("Nodes = %#v, want [%#v]", doc.Nodes, want)
	}
}

func TestParseLists(t *testing.T) {
	doc := parse(t, "- one\n- two\n  - nested a\n  - nested b\n- [x] done\n\n1. first\n2. second\n")

	want := []Node{
		List{Items: []string{"one", "two nested a nested b", "[x] done"}},
		List{Ordered: true, Items: []string{"first", "second"}},
	}
	if !reflect.DeepEqual(doc.Nodes, want) {
		t.Errorf("Nodes = %#v, want %#v", doc.Nodes, want)
	}
}

func TestParseBlockQuote(t *testing.T) {
	doc := parse(t, "> Simple is\n> better.\n")

	want := []Node{BlockQuote{Text: "Simple is better."}}
	if !reflect.DeepEqual(doc.Nodes, want) {
		t.Errorf("Nodes = %#v, want %#v", doc.Nodes, want)
	}
}

func TestParseTable(t *testing.T) {
	doc := parse(t, "| Name | Value |\n|------|-------|\n| a | 1 |\n| b | `2` |\n")

	want := []Node{Table{
		Header: []string{"Name", "Value"},
		Rows:   [][]string{{"a", "1"}, {"b", "2"}},
	}}
	if !reflect.DeepEqual(doc.Nodes, want) {
		t.Errorf("Nodes = %#v, want %#v", doc.Nodes, want)
	}
}

func TestParseHorizontalRuleAndSkippedHTML(t *testing.T) {
	doc := parse(t, "above\n\n---\n\n<div>raw</div>\n\nbelow\n")

	if len(doc.Nodes) != 3 {
		t.Fatalf("got %d nodes (%#v), want 3", len(doc.Nodes), doc.Nodes)
	}
	if _, ok := doc.Nodes[1].(HorizontalRule); !ok {
		t.Errorf("node 1 is %T, want HorizontalRule", doc.Nodes[1])
	}
}

func TestParseFrontMatter(t *testing.T) {
	doc := parse(t, "---\ntitle: Intro\n---\n# Hello\n")

	if doc.FrontMatter["title"] != "Intro" {
		t.Errorf("FrontMatter = %v, want title Intro", doc.FrontMatter)
	}
	want := []Node{Heading{Level: 1, Text: "Hello", ID: "hello"}}
	if !reflect.DeepEqual(doc.Nodes, want) {
		t.Errorf("Nodes = %#v, want %#v", doc.Nodes, want)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	_, err := NewParser().Parse([]byte{'#', ' ', 0xff, 0xfe})
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeParse)
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText([]Inline{{Text: "a "}, {Text: "b", Strong: true}, {Text: "\n"}, {Text: "c"}})
	if got != "a b\nc" {
		t.Errorf("PlainText() = %q", got)
	}
}
