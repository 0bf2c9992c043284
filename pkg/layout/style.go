package layout

import (
	"fmt"
	"strconv"
)

// StyleTier names a visual role.
type StyleTier int

const (
	Title StyleTier = iota
	Heading2
	Heading3
	BodyTier
	Code
	tierCount
)

var tierNames = [tierCount]string{"title", "heading2", "heading3", "body", "code"}

func (t StyleTier) String() string {
	if t < 0 || t >= tierCount {
		return "tier(" + strconv.Itoa(int(t)) + ")"
	}
	return tierNames[t]
}

// MarshalText encodes the tier by name (used by the JSON layout dump).
func (t StyleTier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Color is an RGB color.
type Color struct{ R, G, B int }

// Hex parses "#rrggbb". It panics on malformed input and is meant for constants.
func Hex(s string) Color {
	var c Color
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		panic(fmt.Sprintf("layout: bad color %q", s))
	}
	return c
}

// Align is horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font identifies a core PDF font family and variation.
type Font struct {
	Family string   // "Helvetica", "Courier", "Times"
	Flags  FontFlag // Bold/Italic applied to the family
}

// Style is the preset for one tier.
type Style struct {
	Font        Font
	Size        float64 // Font size in points
	Leading     float64 // Line height in points
	Color       Color
	Background  *Color // Fill behind the block, nil for none
	SpaceBefore float64
	SpaceAfter  float64
	IndentLeft  float64
	IndentRight float64
	Align       Align
}

// TableStyle is the preset for TableBlocks.
type TableStyle struct {
	HeaderFont       Font
	HeaderColor      Color
	HeaderBackground Color
	BodyFont         Font
	BodyColor        Color
	BodyBackground   Color
	Size             float64
	Leading          float64
	GridColor        Color
	GridWidth        float64
	PadX             float64
	PadTop           float64
	PadBottom        float64
	HeaderPadBottom  float64
	SpaceAfter       float64
}

// FooterStyle is the preset for the page-number annotation.
type FooterStyle struct {
	Font   Font
	Size   float64
	Color  Color
	Offset float64 // Distance of the text baseline and right edge from the page corner
}

// Spacing holds the fixed spacer sizes emitted by the translator and assembler.
type Spacing struct {
	SectionBefore float64 // Before a file's section label
	SectionAfter  float64 // After a file's section label
	Rule          float64 // Around a horizontal rule
	TableAfter    float64 // After a table
	TitleTop      float64 // Top of the title page
	TitleGap      float64 // Between title page lines
	DateGap       float64 // Before the generation date
	TOCGap        float64 // Between the TOC title and its entries
}

// Styles is the immutable set of presets for one run. Build it once with
// DefaultStyles and share the pointer; it has no setters.
type Styles struct {
	tiers   [tierCount]Style
	table   TableStyle
	footer  FooterStyle
	spacing Spacing
}

// Tier returns the preset for t. Unknown tiers fall back to the body preset.
func (s *Styles) Tier(t StyleTier) Style {
	if t < 0 || t >= tierCount {
		return s.tiers[BodyTier]
	}
	return s.tiers[t]
}

// Table returns the table preset.
func (s *Styles) Table() TableStyle { return s.table }

// Footer returns the page-number preset.
func (s *Styles) Footer() FooterStyle { return s.footer }

// Spacing returns the fixed spacer sizes.
func (s *Styles) Spacing() Spacing { return s.spacing }

const inch = 72.0

// DefaultStyles returns the standard presets.
func DefaultStyles() *Styles {
	codeBg := Hex("#f3f4f6")
	black := Color{}

	return &Styles{
		tiers: [tierCount]Style{
			Title: {
				Font:       Font{Family: "Helvetica", Flags: Bold},
				Size:       24,
				Leading:    28.8,
				Color:      Hex("#1e40af"),
				SpaceAfter: 30,
				Align:      AlignCenter,
			},
			Heading2: {
				Font:        Font{Family: "Helvetica", Flags: Bold},
				Size:        18,
				Leading:     21.6,
				Color:       Hex("#2563eb"),
				SpaceBefore: 12,
				SpaceAfter:  12,
			},
			Heading3: {
				Font:        Font{Family: "Helvetica", Flags: Bold | Italic},
				Size:        14,
				Leading:     16.8,
				Color:       Hex("#3b82f6"),
				SpaceBefore: 10,
				SpaceAfter:  10,
			},
			BodyTier: {
				Font:       Font{Family: "Helvetica"},
				Size:       11,
				Leading:    13.2,
				Color:      black,
				SpaceAfter: 12,
			},
			Code: {
				Font:        Font{Family: "Courier"},
				Size:        9,
				Leading:     10.8,
				Color:       black,
				Background:  &codeBg,
				SpaceBefore: 10,
				SpaceAfter:  10,
				IndentLeft:  20,
			},
		},
		table: TableStyle{
			HeaderFont:       Font{Family: "Helvetica", Flags: Bold},
			HeaderColor:      Color{245, 245, 245},
			HeaderBackground: Color{128, 128, 128},
			BodyFont:         Font{Family: "Helvetica"},
			BodyColor:        black,
			BodyBackground:   Color{245, 245, 220},
			Size:             10,
			Leading:          12,
			GridColor:        black,
			GridWidth:        1,
			PadX:             6,
			PadTop:           3,
			PadBottom:        3,
			HeaderPadBottom:  12,
		},
		footer: FooterStyle{
			Font:   Font{Family: "Helvetica"},
			Size:   9,
			Color:  black,
			Offset: 0.75 * inch,
		},
		spacing: Spacing{
			SectionBefore: 0.2 * inch,
			SectionAfter:  0.1 * inch,
			Rule:          0.1 * inch,
			TableAfter:    0.2 * inch,
			TitleTop:      2 * inch,
			TitleGap:      0.5 * inch,
			DateGap:       0.3 * inch,
			TOCGap:        0.5 * inch,
		},
	}
}
