// Package layout defines the abstract layout commands handed to a renderer and
// the fixed style presets they are drawn with.
//
// A Document is an append-only sequence of Commands. Command is a closed set:
// TitleText, BodyText, Preformatted, TableBlock, Spacer and PageBreak.
package layout

// Command is one abstract layout instruction.
type Command interface {
	command()
}

// TitleText draws a heading-like line in one of the title tiers.
type TitleText struct {
	Text    string
	Tier    StyleTier
	Anchor  string // Link target name; empty when nothing links here
	Outline int    // Bookmark level (1 = top); 0 adds no bookmark
}

// BodyText draws a paragraph of styled spans. A span whose text is "\n"
// forces a line break.
type BodyText struct {
	Spans []Span
	Link  string // Anchor the whole paragraph links to, if any
}

// Preformatted draws monospace text verbatim, one output line per "\n".
type Preformatted struct {
	Text string
}

// CodeWidth is the number of characters a Preformatted line may hold before
// it has to be wrapped. Renderers draw lines of this width unsplit.
const CodeWidth = 80

// TableBlock draws a grid. When Header is set, row 0 is the header row.
type TableBlock struct {
	Rows   [][]string
	Header bool
}

// Spacer advances the cursor by Size points.
type Spacer struct {
	Size float64
}

// PageBreak starts a new page.
type PageBreak struct{}

func (TitleText) command()    {}
func (BodyText) command()     {}
func (Preformatted) command() {}
func (TableBlock) command()   {}
func (Spacer) command()       {}
func (PageBreak) command()    {}

// FontFlag selects font variations for a span.
type FontFlag uint8

const (
	Bold FontFlag = 1 << iota
	Italic
	Mono
	Strike
)

// Has reports whether all bits of o are set in f.
func (f FontFlag) Has(o FontFlag) bool { return f&o == o }

// Span is a run of text in one font variation.
type Span struct {
	Text string
	Font FontFlag
	URL  string // External link target, if any
}

// Plain returns a span of unstyled text.
func Plain(text string) Span { return Span{Text: text} }

// Styled returns a span of text in the given font variation.
func Styled(text string, f FontFlag) Span { return Span{Text: text, Font: f} }

// Body returns a BodyText holding the given spans.
func Body(spans ...Span) BodyText { return BodyText{Spans: spans} }

// Document is an append-only sequence of commands.
// The zero value is an empty document ready to use.
type Document struct {
	cmds []Command
}

// Append adds commands to the end of the document.
func (d *Document) Append(cmds ...Command) {
	d.cmds = append(d.cmds, cmds...)
}

// Len returns the number of commands.
func (d *Document) Len() int { return len(d.cmds) }

// Commands returns a copy of the command sequence.
func (d *Document) Commands() []Command {
	out := make([]Command, len(d.cmds))
	copy(out, d.cmds)
	return out
}
