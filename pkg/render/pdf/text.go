package pdf

import (
	"unicode"

	"github.com/matzehuels/mdpdf/pkg/layout"
)

// textStyle is everything that distinguishes one drawn run from another.
type textStyle struct {
	font   layout.Font
	size   float64
	color  layout.Color
	url    string
	strike bool
}

// spanStyle applies a span's font flags on top of a tier preset.
func spanStyle(base layout.Style, s layout.Span) textStyle {
	font := base.Font
	font.Flags |= s.Font & (layout.Bold | layout.Italic)
	if s.Font.Has(layout.Mono) {
		font.Family = "Courier"
	}
	return textStyle{
		font:   font,
		size:   base.Size,
		color:  base.Color,
		url:    s.URL,
		strike: s.Font.Has(layout.Strike),
	}
}

// segment is a run of text in one style with its measured width.
type segment struct {
	text  string
	style textStyle
	width float64
}

// line is a laid-out line of segments.
type line struct {
	segs  []segment
	width float64
}

func (l *line) add(s segment) {
	l.width += s.width
	if n := len(l.segs); n > 0 && l.segs[n-1].style == s.style {
		l.segs[n-1].text += s.text
		l.segs[n-1].width += s.width
		return
	}
	l.segs = append(l.segs, s)
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokSpace
	tokBreak
)

// token is a word (one or more segments with no space between them), a
// collapsible space, or a forced line break.
type token struct {
	kind  tokenKind
	segs  []segment
	width float64
}

// tokenize splits styled spans into words, spaces and breaks. Runs of
// whitespace collapse to a single space; "\n" forces a break.
func (m *metrics) tokenize(spans []layout.Span, base layout.Style) []token {
	var toks []token
	var word token
	var buf []rune
	var st textStyle

	flushRun := func() {
		if len(buf) == 0 {
			return
		}
		text := string(buf)
		w := m.width(st.font, st.size, text)
		word.segs = append(word.segs, segment{text: text, style: st, width: w})
		word.width += w
		buf = buf[:0]
	}
	endWord := func() {
		flushRun()
		if len(word.segs) > 0 {
			word.kind = tokWord
			toks = append(toks, word)
		}
		word = token{}
	}

	for _, sp := range spans {
		flushRun()
		st = spanStyle(base, sp)
		for _, r := range sp.Text {
			switch {
			case r == '\n':
				endWord()
				toks = append(toks, token{kind: tokBreak})
			case unicode.IsSpace(r):
				endWord()
				if n := len(toks); n > 0 && toks[n-1].kind == tokSpace {
					continue
				}
				sw := m.width(st.font, st.size, " ")
				toks = append(toks, token{kind: tokSpace, segs: []segment{{text: " ", style: st, width: sw}}, width: sw})
			default:
				buf = append(buf, r)
			}
		}
	}
	endWord()
	return toks
}

// wrap breaks tokens into lines no wider than avail. Words wider than a full
// line are split between characters.
func (m *metrics) wrap(toks []token, avail float64) []line {
	var lines []line
	var cur line
	var space *token

	flush := func() {
		lines = append(lines, cur)
		cur = line{}
		space = nil
	}

	for i := range toks {
		t := toks[i]
		switch t.kind {
		case tokSpace:
			if len(cur.segs) > 0 {
				space = &toks[i]
			}
		case tokBreak:
			flush()
		case tokWord:
			sw := 0.0
			if space != nil {
				sw = space.width
			}
			if len(cur.segs) > 0 && cur.width+sw+t.width > avail {
				flush()
				sw = 0
			}
			if len(cur.segs) == 0 && t.width > avail {
				pieces := m.splitWord(t, avail)
				for _, p := range pieces[:len(pieces)-1] {
					for _, s := range p.segs {
						cur.add(s)
					}
					flush()
				}
				t = pieces[len(pieces)-1]
			}
			if sw > 0 {
				cur.add(space.segs[0])
			}
			for _, s := range t.segs {
				cur.add(s)
			}
			space = nil
		}
	}
	if len(cur.segs) > 0 || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// splitWord cuts a word into pieces no wider than avail, keeping at least one
// character per piece.
func (m *metrics) splitWord(t token, avail float64) []token {
	var pieces []token
	var cur token
	for _, s := range t.segs {
		var run []rune
		runW := 0.0
		for _, r := range s.text {
			rw := m.width(s.style.font, s.style.size, string(r))
			if cur.width+runW+rw > avail && (len(cur.segs) > 0 || len(run) > 0) {
				if len(run) > 0 {
					cur.segs = append(cur.segs, segment{text: string(run), style: s.style, width: runW})
					cur.width += runW
				}
				pieces = append(pieces, cur)
				cur = token{kind: tokWord}
				run, runW = nil, 0
			}
			run = append(run, r)
			runW += rw
		}
		if len(run) > 0 {
			cur.segs = append(cur.segs, segment{text: string(run), style: s.style, width: runW})
			cur.width += runW
		}
	}
	if len(cur.segs) > 0 || len(pieces) == 0 {
		pieces = append(pieces, cur)
	}
	return pieces
}

// layoutText tokenizes and wraps spans in one step.
func (m *metrics) layoutText(spans []layout.Span, base layout.Style, avail float64) []line {
	return m.wrap(m.tokenize(spans, base), avail)
}
