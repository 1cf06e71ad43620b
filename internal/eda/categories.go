package eda

import (
	"sort"

	"github.com/tablescan/tablescan-cli/internal/table"
)

// CategoryShare is one entry in a column's frequency table. Share is computed
// over the kept top-k subset, so the shares of a result sum to 1.
type CategoryShare struct {
	Value string
	Count int
	Share float64
}

// ColumnCategories holds the top values of one categorical column.
type ColumnCategories struct {
	Column string
	Values []CategoryShare
}

// TopCategories builds top-k frequency tables for the first maxColumns
// non-numeric columns, in source order. Columns with no observed values are
// omitted. Ties sort by first encounter.
func TopCategories(t *table.Table, maxColumns, topK int) []ColumnCategories {
	if maxColumns <= 0 || topK <= 0 {
		return nil
	}
	var out []ColumnCategories
	cols := t.Columns()
	picked := 0
	for i := range cols {
		if cols[i].IsNumeric() {
			continue
		}
		if picked >= maxColumns {
			break
		}
		picked++
		if cc, ok := topValuesOf(&cols[i], topK); ok {
			out = append(out, cc)
		}
	}
	return out
}

func topValuesOf(c *table.Column, topK int) (ColumnCategories, bool) {
	counts := map[string]int{}
	first := map[string]int{}
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			continue
		}
		v := c.String(i)
		if _, ok := counts[v]; !ok {
			first[v] = i
		}
		counts[v]++
	}
	if len(counts) == 0 {
		return ColumnCategories{}, false
	}
	vals := make([]CategoryShare, 0, len(counts))
	for v, n := range counts {
		vals = append(vals, CategoryShare{Value: v, Count: n})
	}
	sort.Slice(vals, func(a, b int) bool {
		if vals[a].Count != vals[b].Count {
			return vals[a].Count > vals[b].Count
		}
		return first[vals[a].Value] < first[vals[b].Value]
	})
	if len(vals) > topK {
		vals = vals[:topK]
	}
	total := 0
	for _, v := range vals {
		total += v.Count
	}
	for i := range vals {
		vals[i].Share = float64(vals[i].Count) / float64(total)
	}
	return ColumnCategories{Column: c.Name(), Values: vals}, true
}
