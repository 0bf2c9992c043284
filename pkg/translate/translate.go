// Package translate maps parsed Markdown nodes to layout commands.
//
// Every file's commands start with a section label (the file's relative path
// in the Heading2 tier) framed by two spacers. Each node then maps to a fixed
// rule:
//
//	Heading 1/2/3   → TitleText (Title / Heading2 / Heading3)
//	Heading 4-6     → bold BodyText
//	Paragraph       → BodyText, inline code in the monospace font
//	CodeBlock       → Preformatted, hard wrapped at 80 columns
//	List            → one BodyText per item, "• " or "N. " prefixed
//	BlockQuote      → italic BodyText
//	Table           → TableBlock (see MaterializeTable) and a spacer
//	HorizontalRule  → spacer, underscore rule, spacer
package translate

import (
	"strconv"
	"strings"

	"github.com/matzehuels/mdpdf/pkg/layout"
	"github.com/matzehuels/mdpdf/pkg/markup"
)

const (
	// Bullet prefixes unordered list items.
	Bullet = "• "

	// ruleWidth is the number of underscores drawn for a horizontal rule.
	// 72 body-font underscores fit the content width of letter and A4 pages
	// at the default margin; 80 would wrap onto a second line.
	ruleWidth = 72
)

// FileContext identifies the file being translated.
type FileContext struct {
	RelPath string // Shown as the section label
	Anchor  string // Link target for the section label; empty for none
}

// SectionAnchor returns the anchor name used for a file's section label.
func SectionAnchor(relPath string) string { return "file:" + relPath }

// Translator converts markup nodes to layout commands using fixed presets.
type Translator struct {
	styles *layout.Styles
}

// New returns a Translator using styles for spacer sizes.
// A nil styles uses layout.DefaultStyles.
func New(styles *layout.Styles) *Translator {
	if styles == nil {
		styles = layout.DefaultStyles()
	}
	return &Translator{styles: styles}
}

// Translate returns the commands for one file: the section label prologue
// followed by the commands for each node in order. Nodes with no rule are
// skipped.
func (t *Translator) Translate(nodes []markup.Node, fc FileContext) []layout.Command {
	sp := t.styles.Spacing()

	cmds := []layout.Command{
		layout.Spacer{Size: sp.SectionBefore},
		layout.TitleText{Text: fc.RelPath, Tier: layout.Heading2, Anchor: fc.Anchor, Outline: 1},
		layout.Spacer{Size: sp.SectionAfter},
	}
	for _, n := range nodes {
		cmds = append(cmds, t.node(n, fc)...)
	}
	return cmds
}

func (t *Translator) node(n markup.Node, fc FileContext) []layout.Command {
	sp := t.styles.Spacing()

	switch n := n.(type) {
	case markup.Heading:
		return []layout.Command{heading(n, fc)}
	case markup.Paragraph:
		return []layout.Command{layout.BodyText{Spans: spans(n.Inlines)}}
	case markup.CodeBlock:
		return []layout.Command{layout.Preformatted{Text: WrapCode(n.Text)}}
	case markup.List:
		return listItems(n)
	case markup.BlockQuote:
		return []layout.Command{layout.Body(layout.Styled(n.Text, layout.Italic))}
	case markup.Table:
		tb, ok := MaterializeTable(n)
		if !ok {
			return nil
		}
		return []layout.Command{tb, layout.Spacer{Size: sp.TableAfter}}
	case markup.HorizontalRule:
		return []layout.Command{
			layout.Spacer{Size: sp.Rule},
			layout.Body(layout.Plain(strings.Repeat("_", ruleWidth))),
			layout.Spacer{Size: sp.Rule},
		}
	default:
		return nil
	}
}

func heading(h markup.Heading, fc FileContext) layout.Command {
	switch h.Level {
	case 1:
		tt := layout.TitleText{Text: h.Text, Tier: layout.Title}
		if fc.Anchor != "" && h.ID != "" {
			tt.Anchor = fc.Anchor + "#" + h.ID
			tt.Outline = 2
		}
		return tt
	case 2:
		return layout.TitleText{Text: h.Text, Tier: layout.Heading2}
	case 3:
		return layout.TitleText{Text: h.Text, Tier: layout.Heading3}
	default:
		return layout.Body(layout.Styled(h.Text, layout.Bold))
	}
}

// listItems emits one BodyText per item. Nested lists have already been
// flattened into their parent item's text by the parser.
func listItems(l markup.List) []layout.Command {
	cmds := make([]layout.Command, 0, len(l.Items))
	for i, item := range l.Items {
		prefix := Bullet
		if l.Ordered {
			prefix = strconv.Itoa(i+1) + ". "
		}
		cmds = append(cmds, layout.Body(layout.Plain(prefix+item)))
	}
	return cmds
}

// spans converts paragraph inlines to styled spans; inline code becomes the
// monospace font.
func spans(inlines []markup.Inline) []layout.Span {
	out := make([]layout.Span, 0, len(inlines))
	for _, in := range inlines {
		var f layout.FontFlag
		if in.Strong {
			f |= layout.Bold
		}
		if in.Emphasis {
			f |= layout.Italic
		}
		if in.Code {
			f |= layout.Mono
		}
		if in.Strike {
			f |= layout.Strike
		}
		out = append(out, layout.Span{Text: in.Text, Font: f, URL: in.URL})
	}
	return out
}
