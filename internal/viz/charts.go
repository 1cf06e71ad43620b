// Package viz renders the report's PNG charts with gonum/plot. Sizing and
// column limits come from an explicit Options value; there is no package
// state. Degenerate inputs render a labelled placeholder instead of failing.
package viz

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tablescan/tablescan-cli/internal/eda"
	"github.com/tablescan/tablescan-cli/internal/report"
	"github.com/tablescan/tablescan-cli/internal/table"
)

// Options bounds the number of rendered columns per chart family.
type Options struct {
	MaxHistColumns     int
	HistBins           int
	MaxBoxplotColumns  int
	MaxBarchartColumns int
}

// DefaultOptions mirrors the report defaults.
func DefaultOptions() Options {
	return Options{
		MaxHistColumns:     6,
		HistBins:           20,
		MaxBoxplotColumns:  8,
		MaxBarchartColumns: 5,
	}
}

// HistogramsPerColumn renders one histogram per numeric column, up to
// opt.MaxHistColumns, as hist_<i>_<name>.png under dir. Columns without
// observed values are skipped.
func HistogramsPerColumn(t *table.Table, dir string, opt Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir charts dir: %w", err)
	}
	var paths []string
	rendered := 0
	cols := t.Columns()
	for i := range cols {
		if !cols[i].IsNumeric() {
			continue
		}
		if rendered >= opt.MaxHistColumns {
			break
		}
		vals := cols[i].Floats()
		if len(vals) == 0 {
			continue
		}
		rendered++
		p := plot.New()
		p.Title.Text = "Histogram of " + cols[i].Name()
		p.X.Label.Text = cols[i].Name()
		p.Y.Label.Text = "Count"
		h, err := plotter.NewHist(plotter.Values(vals), opt.HistBins)
		if err != nil {
			return paths, fmt.Errorf("histogram %s: %w", cols[i].Name(), err)
		}
		p.Add(h)
		path := filepath.Join(dir, fmt.Sprintf("hist_%d_%s.png", rendered, report.SafeFileName(cols[i].Name())))
		if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return paths, fmt.Errorf("save histogram: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// NumericBoxplots renders side-by-side boxplots of up to
// opt.MaxBoxplotColumns numeric columns into a single image.
func NumericBoxplots(t *table.Table, path string, opt Options) error {
	p := plot.New()
	p.Title.Text = "Boxplots of numeric columns"
	p.Y.Label.Text = "Values"

	var names []string
	cols := t.Columns()
	for i := range cols {
		if !cols[i].IsNumeric() {
			continue
		}
		if len(names) >= opt.MaxBoxplotColumns {
			break
		}
		vals := cols[i].Floats()
		if len(vals) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(vg.Points(24), float64(len(names)), plotter.Values(vals))
		if err != nil {
			return fmt.Errorf("boxplot %s: %w", cols[i].Name(), err)
		}
		p.Add(b)
		names = append(names, cols[i].Name())
	}
	if len(names) == 0 {
		return placeholder(path, "No numeric columns for boxplots")
	}
	p.NominalX(names...)
	if err := p.Save(vg.Length(math.Max(8, float64(len(names))*1.2))*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save boxplots: %w", err)
	}
	return nil
}

// TopCategoriesBarcharts renders one bar chart per frequency table as
// barchart_<column>.png under dir.
func TopCategoriesBarcharts(cats []eda.ColumnCategories, dir string, opt Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir charts dir: %w", err)
	}
	var paths []string
	for i, cc := range cats {
		if i >= opt.MaxBarchartColumns {
			break
		}
		counts := make(plotter.Values, len(cc.Values))
		labels := make([]string, len(cc.Values))
		for j, v := range cc.Values {
			counts[j] = float64(v.Count)
			labels[j] = v.Value
		}
		p := plot.New()
		p.Title.Text = fmt.Sprintf("Top %d categories in %s", len(labels), cc.Column)
		p.Y.Label.Text = "Count"
		bc, err := plotter.NewBarChart(counts, vg.Points(24))
		if err != nil {
			return paths, fmt.Errorf("bar chart %s: %w", cc.Column, err)
		}
		p.Add(bc)
		p.NominalX(labels...)
		path := filepath.Join(dir, "barchart_"+report.SafeFileName(cc.Column)+".png")
		if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
			return paths, fmt.Errorf("save bar chart: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// MissingMatrix renders the table's missingness as a two-tone heatmap: rows
// on the vertical axis, columns on the horizontal, lit cells are missing.
func MissingMatrix(t *table.Table, path string) error {
	if t.NRows() == 0 || t.NCols() == 0 {
		return placeholder(path, "Empty dataset")
	}
	p := plot.New()
	p.Title.Text = "Missing values matrix"
	p.X.Label.Text = "Columns"
	p.Y.Label.Text = "Rows"
	h := plotter.NewHeatMap(missingGrid{t: t}, palette.Heat(2, 1))
	p.Add(h)
	p.NominalX(t.Names()...)
	if err := p.Save(vg.Length(math.Min(12, math.Max(4, float64(t.NCols())*0.4)))*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save missing matrix: %w", err)
	}
	return nil
}

// CorrelationHeatmap renders a correlation matrix on a diverging palette
// pinned to [-1,1]. NaN cells (pairs without enough complete observations)
// draw as 0.
func CorrelationHeatmap(m *eda.CorrMatrix, path string) error {
	if m == nil || len(m.Columns) < 2 {
		return placeholder(path, "Not enough numeric columns for correlation")
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	p := plot.New()
	p.Title.Text = "Correlation heatmap"
	h := plotter.NewHeatMap(corrGrid{m: m}, cm.Palette(256))
	h.Min, h.Max = -1, 1
	p.Add(h)
	p.NominalX(m.Columns...)
	p.NominalY(m.Columns...)
	side := vg.Length(math.Min(10, math.Max(4, float64(len(m.Columns))))) * vg.Inch
	if err := p.Save(side, side, path); err != nil {
		return fmt.Errorf("save correlation heatmap: %w", err)
	}
	return nil
}

func placeholder(path, msg string) error {
	p := plot.New()
	p.Title.Text = msg
	p.HideAxes()
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save placeholder: %w", err)
	}
	return nil
}

// missingGrid adapts a table's missing mask to plotter.GridXYZ. Row 0 draws
// at the bottom of the image.
type missingGrid struct{ t *table.Table }

func (g missingGrid) Dims() (int, int) { return g.t.NCols(), g.t.NRows() }
func (g missingGrid) X(c int) float64  { return float64(c) }
func (g missingGrid) Y(r int) float64  { return float64(r) }
func (g missingGrid) Z(c, r int) float64 {
	if g.t.Columns()[c].IsMissing(r) {
		return 1
	}
	return 0
}

// corrGrid adapts a CorrMatrix to plotter.GridXYZ.
type corrGrid struct{ m *eda.CorrMatrix }

func (g corrGrid) Dims() (int, int) { return len(g.m.Columns), len(g.m.Columns) }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }
func (g corrGrid) Z(c, r int) float64 {
	v := g.m.Values[r][c]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
