package translate

import (
	"strings"

	"github.com/matzehuels/mdpdf/pkg/layout"
	"github.com/matzehuels/mdpdf/pkg/markup"
)

// MaterializeTable builds a TableBlock from a table node. The header row, if
// present, becomes row 0 and sets Header; body rows follow in source order.
// Cell text is trimmed. Rows keep the width the source gave them; evening out
// ragged rows is left to the renderer.
//
// It reports false when the table has no rows at all.
func MaterializeTable(t markup.Table) (layout.TableBlock, bool) {
	var rows [][]string
	if len(t.Header) > 0 {
		rows = append(rows, trimCells(t.Header))
	}
	for _, r := range t.Rows {
		if len(r) == 0 {
			continue
		}
		rows = append(rows, trimCells(r))
	}
	if len(rows) == 0 {
		return layout.TableBlock{}, false
	}
	return layout.TableBlock{Rows: rows, Header: len(t.Header) > 0}, true
}

func trimCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
