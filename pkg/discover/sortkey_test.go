package discover

import (
	"math"
	"slices"
	"testing"
)

func TestExtractSortKey(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     SortKey
	}{
		{"dash separator", "2-setup.md", SortKey{2, 0, "2-setup.md"}},
		{"two levels dot", "1.3-api.md", SortKey{1, 3, "1.3-api.md"}},
		{"two levels underscore", "04_12_notes.md", SortKey{4, 12, "04_12_notes.md"}},
		{"two levels dash", "3-2.md", SortKey{3, 2, "3-2.md"}},
		{"digits only", "1.md", SortKey{1, 0, "1.md"}},
		{"no separator", "10intro.md", SortKey{10, 0, "10intro.md"}},
		{"leading zeros", "007-bond.md", SortKey{7, 0, "007-bond.md"}},
		{"unnumbered", "readme.md", SortKey{Unnumbered, 0, "readme.md"}},
		{"digits not leading", "v2-notes.md", SortKey{Unnumbered, 0, "v2-notes.md"}},
		{"empty", "", SortKey{Unnumbered, 0, ""}},
		{"overflow saturates", "99999999999999999999999-x.md", SortKey{math.MaxInt, 0, "99999999999999999999999-x.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSortKey(tt.filename); got != tt.want {
				t.Errorf("ExtractSortKey(%q) = %+v, want %+v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestSortKeyCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.md", "2-setup.md", -1},
		{"2-setup.md", "10-intro.md", -1},
		{"10-intro.md", "readme.md", -1},
		{"1.2.md", "1.10.md", -1},
		{"1-a.md", "1-b.md", -1},
		{"b.md", "a.md", 1},
		{"same.md", "same.md", 0},
	}

	for _, tt := range tests {
		got := ExtractSortKey(tt.a).Compare(ExtractSortKey(tt.b))
		if got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if back := ExtractSortKey(tt.b).Compare(ExtractSortKey(tt.a)); back != -tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, back, -tt.want)
		}
	}
}

func TestSortKeyTransitive(t *testing.T) {
	names := []string{"readme.md", "10-intro.md", "2-setup.md", "1.md", "1.1.md", "zeta.md", "alpha.md", "3_1.md", "3.md"}
	keys := make([]SortKey, len(names))
	for i, n := range names {
		keys[i] = ExtractSortKey(n)
	}

	for _, a := range keys {
		for _, b := range keys {
			for _, c := range keys {
				if a.Less(b) && b.Less(c) && !a.Less(c) {
					t.Errorf("not transitive: %v < %v < %v", a, b, c)
				}
			}
		}
	}
}

func TestSortKeyDeterministic(t *testing.T) {
	names := []string{"readme.md", "10-intro.md", "2-setup.md", "1.md", "b.md", "a.md"}

	sortNames := func(in []string) []string {
		out := slices.Clone(in)
		slices.SortFunc(out, func(a, b string) int {
			return ExtractSortKey(a).Compare(ExtractSortKey(b))
		})
		return out
	}

	first := sortNames(names)
	reversed := slices.Clone(names)
	slices.Reverse(reversed)
	second := sortNames(reversed)

	if !slices.Equal(first, second) {
		t.Errorf("sort not deterministic: %v vs %v", first, second)
	}
	want := []string{"1.md", "2-setup.md", "10-intro.md", "a.md", "b.md", "readme.md"}
	if !slices.Equal(first, want) {
		t.Errorf("sorted = %v, want %v", first, want)
	}
}
