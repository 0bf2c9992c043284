package discover

import (
	"cmp"
	"math"
	"regexp"
	"strconv"
)

// Unnumbered is the primary number given to files without a numeric prefix.
// It places them after every realistically numbered file.
const Unnumbered = 999

// prefixPattern matches "<digits>[-_.]<digits>" at the start of a filename.
var prefixPattern = regexp.MustCompile(`^(\d+)[-_.]?(\d*)`)

// SortKey orders files within a directory level: by Primary, then Secondary,
// then Name. Comparison is purely lexicographic on the triple.
type SortKey struct {
	Primary   int
	Secondary int
	Name      string
}

// ExtractSortKey derives the SortKey of a filename (base name, no directory).
//
//	"2-setup.md"  → (2, 0, "2-setup.md")
//	"1.3-api.md"  → (1, 3, "1.3-api.md")
//	"readme.md"   → (999, 0, "readme.md")
//
// It never fails; digit groups too large for an int saturate to math.MaxInt.
func ExtractSortKey(filename string) SortKey {
	m := prefixPattern.FindStringSubmatch(filename)
	if m == nil {
		return SortKey{Primary: Unnumbered, Name: filename}
	}
	key := SortKey{Primary: atoi(m[1]), Name: filename}
	if m[2] != "" {
		key.Secondary = atoi(m[2])
	}
	return key
}

func atoi(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}

// Compare returns -1, 0 or +1 comparing k with o.
func (k SortKey) Compare(o SortKey) int {
	if c := cmp.Compare(k.Primary, o.Primary); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Secondary, o.Secondary); c != 0 {
		return c
	}
	return cmp.Compare(k.Name, o.Name)
}

// Less reports whether k sorts before o.
func (k SortKey) Less(o SortKey) bool { return k.Compare(o) < 0 }
