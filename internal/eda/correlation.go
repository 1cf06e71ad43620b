package eda

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tablescan/tablescan-cli/internal/table"
)

// CorrMatrix is a symmetric Pearson correlation matrix over the numeric
// columns of a table, row-major: Values[i][j] correlates Columns[i] with
// Columns[j].
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// CorrelationMatrix computes Pearson coefficients over numeric columns with
// pairwise-complete-observation semantics: only rows where both values are
// present contribute to a pair. Returns nil when the table has no numeric
// columns; a single numeric column yields a 1x1 matrix of 1.0. Pairs with
// fewer than two complete observations are NaN.
func CorrelationMatrix(t *table.Table) *CorrMatrix {
	cols := t.Columns()
	var numeric []*table.Column
	for i := range cols {
		if cols[i].IsNumeric() {
			numeric = append(numeric, &cols[i])
		}
	}
	if len(numeric) == 0 {
		return nil
	}
	n := len(numeric)
	m := &CorrMatrix{
		Columns: make([]string, n),
		Values:  make([][]float64, n),
	}
	for i := range numeric {
		m.Columns[i] = numeric[i].Name()
		m.Values[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		m.Values[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			r := pairwiseCorr(numeric[i], numeric[j], t.NRows())
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func pairwiseCorr(a, b *table.Column, nRows int) float64 {
	xs := make([]float64, 0, nRows)
	ys := make([]float64, 0, nRows)
	for i := 0; i < nRows; i++ {
		if a.IsMissing(i) || b.IsMissing(i) {
			continue
		}
		xs = append(xs, a.Float(i))
		ys = append(ys, b.Float(i))
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
