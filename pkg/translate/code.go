package translate

import (
	"strings"

	"github.com/matzehuels/mdpdf/pkg/layout"
)

const (
	// CodeWidth is the maximum number of characters per preformatted line.
	CodeWidth = layout.CodeWidth

	// ContinuationIndent prefixes every line produced by wrapping.
	ContinuationIndent = "    "
)

// WrapCode hard-wraps every line of a code block longer than CodeWidth
// characters. The overflow is carried to a new line prefixed with
// ContinuationIndent, and that line is checked again until it fits. Existing
// line breaks are kept; lines are never merged or reordered.
func WrapCode(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string) []string {
	r := []rune(line)
	if len(r) <= CodeWidth {
		return []string{line}
	}
	var out []string
	for len(r) > CodeWidth {
		out = append(out, string(r[:CodeWidth]))
		r = append([]rune(ContinuationIndent), r[CodeWidth:]...)
	}
	return append(out, string(r))
}
