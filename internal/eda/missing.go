package eda

import (
	"sort"

	"github.com/tablescan/tablescan-cli/internal/table"
)

// MissingEntry is one row of the missing-value table.
type MissingEntry struct {
	Column string
	Count  int
	Share  float64
}

// MissingTable derives per-column missing counts and shares from the raw
// table, sorted by share descending with ties kept in source column order.
// An empty table yields an empty result.
func MissingTable(t *table.Table) []MissingEntry {
	nRows := t.NRows()
	cols := t.Columns()
	out := make([]MissingEntry, 0, len(cols))
	for i := range cols {
		miss := nRows - cols[i].NonMissing()
		share := 0.0
		if nRows > 0 {
			share = float64(miss) / float64(nRows)
		}
		out = append(out, MissingEntry{Column: cols[i].Name(), Count: miss, Share: share})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Share > out[b].Share })
	return out
}
