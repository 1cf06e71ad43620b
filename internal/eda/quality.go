package eda

import (
	"github.com/tablescan/tablescan-cli/internal/table"
)

// HeuristicsOptions are the tunables of the quality engine.
type HeuristicsOptions struct {
	// HighCardinalityThreshold flags non-numeric columns with more distinct
	// values than this.
	HighCardinalityThreshold int
	// ZeroRatioThreshold flags numeric columns whose share of exact zeros
	// among non-missing values exceeds this.
	ZeroRatioThreshold float64
	// IDColumn, when set and present in the table, enables the duplicate-id
	// check. A name not present in the table is silently skipped.
	IDColumn string
}

// DefaultHeuristicsOptions mirrors the documented defaults.
func DefaultHeuristicsOptions() HeuristicsOptions {
	return HeuristicsOptions{
		HighCardinalityThreshold: 50,
		ZeroRatioThreshold:       0.5,
	}
}

// ColumnCount pairs a column name with its distinct-value count.
type ColumnCount struct {
	Name   string
	Unique int
}

// ColumnRatio pairs a column name with a ratio in [0,1].
type ColumnRatio struct {
	Name  string
	Ratio float64
}

// QualityFlags is the engine's immutable result: one value per heuristic plus
// the composite score.
type QualityFlags struct {
	TooFewRows     bool
	TooManyColumns bool

	MaxMissingShare float64
	TooManyMissing  bool

	HasConstantColumns bool
	ConstantColumns    []string
	NConstantColumns   int

	HasHighCardinalityCategoricals bool
	HighCardinalityColumns         []ColumnCount
	HighCardinalityThreshold       int

	HasManyZeroValues    bool
	HighZeroRatioColumns []ColumnRatio
	ZeroRatioThreshold   float64

	HasSuspiciousIDDuplicates bool
	IDDuplicatesCount         int
	// IDColumnChecked is empty when no id check ran.
	IDColumnChecked string

	// QualityScore is in [0,1]; 1 means no detected issues.
	QualityScore float64
}

// Evaluate runs the quality heuristics over a dataset summary, its missing
// table, and the raw table. It performs no I/O and never fails on well-formed
// inputs.
func Evaluate(sum DatasetSummary, missing []MissingEntry, t *table.Table, opts HeuristicsOptions) QualityFlags {
	flags := QualityFlags{
		TooFewRows:               sum.NRows < 100,
		TooManyColumns:           sum.NCols > 100,
		HighCardinalityThreshold: opts.HighCardinalityThreshold,
		ZeroRatioThreshold:       opts.ZeroRatioThreshold,
		ConstantColumns:          []string{},
		HighCardinalityColumns:   []ColumnCount{},
		HighZeroRatioColumns:     []ColumnRatio{},
	}

	for _, e := range missing {
		if e.Share > flags.MaxMissingShare {
			flags.MaxMissingShare = e.Share
		}
	}
	flags.TooManyMissing = flags.MaxMissingShare > 0.5

	// Constant columns have exactly one distinct non-missing value. An
	// all-missing column has unique == 0 and is deliberately not flagged.
	for _, c := range sum.Columns {
		if c.Unique == 1 {
			flags.ConstantColumns = append(flags.ConstantColumns, c.Name)
		}
	}
	flags.NConstantColumns = len(flags.ConstantColumns)
	flags.HasConstantColumns = flags.NConstantColumns > 0

	for _, c := range sum.Columns {
		if !c.IsNumeric && c.Unique > opts.HighCardinalityThreshold {
			flags.HighCardinalityColumns = append(flags.HighCardinalityColumns, ColumnCount{Name: c.Name, Unique: c.Unique})
		}
	}
	flags.HasHighCardinalityCategoricals = len(flags.HighCardinalityColumns) > 0

	for _, c := range sum.Columns {
		if !c.IsNumeric || c.NonNull == 0 {
			continue
		}
		col, ok := t.Column(c.Name)
		if !ok {
			continue
		}
		zeros := 0
		for i := 0; i < col.Len(); i++ {
			if !col.IsMissing(i) && col.Float(i) == 0 {
				zeros++
			}
		}
		ratio := float64(zeros) / float64(c.NonNull)
		if ratio > opts.ZeroRatioThreshold {
			flags.HighZeroRatioColumns = append(flags.HighZeroRatioColumns, ColumnRatio{Name: c.Name, Ratio: ratio})
		}
	}
	flags.HasManyZeroValues = len(flags.HighZeroRatioColumns) > 0

	if opts.IDColumn != "" {
		if col, ok := t.Column(opts.IDColumn); ok {
			flags.IDDuplicatesCount = duplicateRowCount(col)
			flags.HasSuspiciousIDDuplicates = flags.IDDuplicatesCount > 0
			flags.IDColumnChecked = opts.IDColumn
		}
	}

	flags.QualityScore = score(sum, flags)
	return flags
}

// score applies the additive penalty model. Each conditional penalty divides
// by a count that is necessarily non-zero when its flag is set, so an empty
// dataset pays only the small-row penalty.
func score(sum DatasetSummary, f QualityFlags) float64 {
	s := 1.0
	s -= f.MaxMissingShare * 0.3
	if sum.NRows < 100 {
		s -= 0.2
	}
	if sum.NCols > 100 {
		s -= 0.1
	}
	if f.HasConstantColumns {
		s -= 0.2 * float64(f.NConstantColumns) / float64(sum.NCols)
	}
	if f.HasHighCardinalityCategoricals {
		s -= 0.15 * float64(len(f.HighCardinalityColumns)) / float64(sum.NCols)
	}
	if f.HasManyZeroValues {
		s -= 0.1 * float64(len(f.HighZeroRatioColumns)) / float64(sum.NCols)
	}
	if f.HasSuspiciousIDDuplicates {
		s -= 0.25 * float64(f.IDDuplicatesCount) / float64(sum.NRows)
	}
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	return s
}

// duplicateRowCount counts every row whose key appears more than once,
// including all occurrences, not just the extras beyond the first. Missing
// cells share one key, matching the behavior of the usual dataframe
// duplicated() semantics.
func duplicateRowCount(col *table.Column) int {
	const missingKey = "\x00missing"
	counts := map[string]int{}
	for i := 0; i < col.Len(); i++ {
		k := missingKey
		if !col.IsMissing(i) {
			k = col.String(i)
		}
		counts[k]++
	}
	dups := 0
	for _, n := range counts {
		if n > 1 {
			dups += n
		}
	}
	return dups
}
