package table

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is a column's logical type, resolved once at load time.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
)

func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "text"
}

// Column is a typed, immutable column of values with a per-cell missing mask.
// Numeric columns store float64 values; text columns store strings.
type Column struct {
	name    string
	kind    Kind
	nums    []float64
	strs    []string
	missing []bool
}

// NewNumericColumn builds a numeric column. values and missing must have equal
// length; entries flagged missing are ignored by all consumers. A nil mask
// means fully observed.
func NewNumericColumn(name string, values []float64, missing []bool) Column {
	if missing == nil {
		missing = make([]bool, len(values))
	}
	return Column{name: name, kind: KindNumeric, nums: values, missing: missing}
}

// NewTextColumn builds a text column. A nil mask means fully observed.
func NewTextColumn(name string, values []string, missing []bool) Column {
	if missing == nil {
		missing = make([]bool, len(values))
	}
	return Column{name: name, kind: KindText, strs: values, missing: missing}
}

func (c *Column) Name() string { return c.name }
func (c *Column) Kind() Kind   { return c.kind }

// IsNumeric reports the column's static numeric capability.
func (c *Column) IsNumeric() bool { return c.kind == KindNumeric }

func (c *Column) Len() int {
	if c.kind == KindNumeric {
		return len(c.nums)
	}
	return len(c.strs)
}

func (c *Column) IsMissing(i int) bool { return c.missing[i] }

// Float returns the numeric value at row i, or NaN for missing cells and
// text columns.
func (c *Column) Float(i int) float64 {
	if c.kind != KindNumeric || c.missing[i] {
		return math.NaN()
	}
	return c.nums[i]
}

// String returns the stringified cell at row i; missing cells yield "".
func (c *Column) String(i int) string {
	if c.missing[i] {
		return ""
	}
	if c.kind == KindNumeric {
		return strconv.FormatFloat(c.nums[i], 'g', -1, 64)
	}
	return c.strs[i]
}

// NonMissing counts cells with an observed value.
func (c *Column) NonMissing() int {
	n := 0
	for _, m := range c.missing {
		if !m {
			n++
		}
	}
	return n
}

// Floats returns the non-missing numeric values in row order. Nil for text
// columns.
func (c *Column) Floats() []float64 {
	if c.kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.nums))
	for i, v := range c.nums {
		if !c.missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// Table is an in-memory rectangular table with named, typed columns.
// It is immutable after construction.
type Table struct {
	cols  []Column
	nrows int
}

// New validates rectangularity and builds a Table. A table with zero columns
// has zero rows.
func New(cols []Column) (*Table, error) {
	nrows := 0
	for i := range cols {
		if i == 0 {
			nrows = cols[i].Len()
			continue
		}
		if cols[i].Len() != nrows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", cols[i].Name(), cols[i].Len(), nrows)
		}
	}
	return &Table{cols: cols, nrows: nrows}, nil
}

func (t *Table) NRows() int { return t.nrows }
func (t *Table) NCols() int { return len(t.cols) }

// Columns returns the columns in source order.
func (t *Table) Columns() []Column { return t.cols }

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.cols {
		if t.cols[i].name == name {
			return &t.cols[i], true
		}
	}
	return nil, false
}

// Names returns the column names in source order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i := range t.cols {
		out[i] = t.cols[i].name
	}
	return out
}
