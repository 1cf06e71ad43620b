// Package eda computes per-column statistics, missingness, categorical
// frequencies, correlation, and heuristic data-quality flags over an
// in-memory table. Every function is a pure computation over its inputs:
// degenerate data (zero rows, zero columns, all-missing columns) yields
// defined fallback values, never errors.
package eda

import (
	"github.com/montanaflynn/stats"

	"github.com/tablescan/tablescan-cli/internal/table"
)

// ColumnSummary is the per-column statistical profile.
type ColumnSummary struct {
	Name          string
	DType         string
	NonNull       int
	Missing       int
	MissingShare  float64
	Unique        int
	ExampleValues []string
	IsNumeric     bool
	// Numeric stats; nil unless IsNumeric and NonNull > 0. Std is the sample
	// standard deviation and is NaN when NonNull == 1.
	Min  *float64
	Max  *float64
	Mean *float64
	Std  *float64
}

// DatasetSummary aggregates ColumnSummary values in source column order.
type DatasetSummary struct {
	NRows   int
	NCols   int
	Columns []ColumnSummary
}

// DefaultExampleValues is the number of sample values collected per column.
const DefaultExampleValues = 3

// Summarize scans the table once per column and produces the dataset summary.
// Columns are independent; output order mirrors input order.
func Summarize(t *table.Table, exampleValues int) DatasetSummary {
	if exampleValues < 0 {
		exampleValues = 0
	}
	nRows := t.NRows()
	cols := t.Columns()
	out := DatasetSummary{
		NRows:   nRows,
		NCols:   t.NCols(),
		Columns: make([]ColumnSummary, 0, len(cols)),
	}
	for i := range cols {
		out.Columns = append(out.Columns, summarizeColumn(&cols[i], nRows, exampleValues))
	}
	return out
}

func summarizeColumn(c *table.Column, nRows, exampleValues int) ColumnSummary {
	s := ColumnSummary{
		Name:          c.Name(),
		DType:         c.Kind().String(),
		IsNumeric:     c.IsNumeric(),
		ExampleValues: []string{},
	}
	seen := map[string]struct{}{}
	for i := 0; i < nRows; i++ {
		if c.IsMissing(i) {
			continue
		}
		s.NonNull++
		v := c.String(i)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			if len(s.ExampleValues) < exampleValues {
				s.ExampleValues = append(s.ExampleValues, v)
			}
		}
	}
	s.Missing = nRows - s.NonNull
	if nRows > 0 {
		s.MissingShare = float64(s.Missing) / float64(nRows)
	}
	s.Unique = len(seen)

	if c.IsNumeric() && s.NonNull > 0 {
		vals := c.Floats()
		min, _ := stats.Min(vals)
		max, _ := stats.Max(vals)
		mean, _ := stats.Mean(vals)
		std, _ := stats.StandardDeviationSample(vals)
		s.Min, s.Max, s.Mean, s.Std = &min, &max, &mean, &std
	}
	return s
}
