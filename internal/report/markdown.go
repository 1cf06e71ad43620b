// Package report renders EDA results into a Markdown document and writes the
// supporting CSV artifacts. All formatting state is passed in explicitly.
package report

import (
	"fmt"
	"strings"

	"github.com/tablescan/tablescan-cli/internal/eda"
)

// Params controls the rendered report.
type Params struct {
	Title           string
	TopK            int
	MinMissingShare float64
	// Image toggles; the renderer only references images it expects to exist.
	IncludeBoxplots          bool
	IncludeCategoryBarcharts bool
}

// DefaultParams returns the documented report defaults.
func DefaultParams() Params {
	return Params{
		Title:                    "EDA Report",
		TopK:                     10,
		MinMissingShare:          0.1,
		IncludeBoxplots:          true,
		IncludeCategoryBarcharts: true,
	}
}

// Markdown assembles the full report document.
func Markdown(sum eda.DatasetSummary, flags eda.QualityFlags, cats []eda.ColumnCategories, p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- **Shape**: %d rows, %d columns\n", sum.NRows, sum.NCols)
	fmt.Fprintf(&b, "- **Max missing share**: %.1f%%\n", flags.MaxMissingShare*100)
	fmt.Fprintf(&b, "- **Quality score**: %.3f\n", flags.QualityScore)
	fmt.Fprintf(&b, "- **Report parameters**: top_k=%d, min_missing_share=%g\n\n", p.TopK, p.MinMissingShare)

	b.WriteString("## Data quality\n")
	writeMissingSection(&b, sum, p.MinMissingShare)
	writeFlagSections(&b, flags)
	writeCategories(&b, cats)
	writeNumericSection(&b, sum, p.TopK)
	writeVisualizations(&b, sum, p)

	return b.String()
}

func writeMissingSection(b *strings.Builder, sum eda.DatasetSummary, minShare float64) {
	var problems []eda.ColumnSummary
	for _, c := range sum.Columns {
		if c.MissingShare > minShare {
			problems = append(problems, c)
		}
	}
	if len(problems) == 0 {
		b.WriteString("### No columns above the missing-share threshold\n\n")
		return
	}
	b.WriteString("### Columns with a high share of missing values:\n")
	for _, c := range problems {
		fmt.Fprintf(b, "- `%s`: %.1f%%\n", c.Name, c.MissingShare*100)
	}
	b.WriteString("\n")
}

func writeFlagSections(b *strings.Builder, flags eda.QualityFlags) {
	if flags.HasConstantColumns {
		b.WriteString("### Constant columns:\n")
		for _, name := range flags.ConstantColumns {
			fmt.Fprintf(b, "- `%s` (all values identical)\n", name)
		}
		b.WriteString("\n")
	}
	if flags.HasHighCardinalityCategoricals {
		fmt.Fprintf(b, "### High-cardinality categorical columns (>%d unique):\n", flags.HighCardinalityThreshold)
		for _, c := range flags.HighCardinalityColumns {
			fmt.Fprintf(b, "- `%s`: %d unique values\n", c.Name, c.Unique)
		}
		b.WriteString("\n")
	}
	if flags.HasManyZeroValues {
		fmt.Fprintf(b, "### Columns dominated by zeros (>%.0f%%):\n", flags.ZeroRatioThreshold*100)
		for _, c := range flags.HighZeroRatioColumns {
			fmt.Fprintf(b, "- `%s`: %.1f%% zeros\n", c.Name, c.Ratio*100)
		}
		b.WriteString("\n")
	}
	if flags.HasSuspiciousIDDuplicates {
		b.WriteString("### Duplicates in the id column:\n")
		fmt.Fprintf(b, "- Column `%s`: %d duplicated rows\n\n", flags.IDColumnChecked, flags.IDDuplicatesCount)
	}
}

func writeCategories(b *strings.Builder, cats []eda.ColumnCategories) {
	if len(cats) == 0 {
		return
	}
	b.WriteString("## Top categories\n")
	for _, cc := range cats {
		fmt.Fprintf(b, "### %s\n", cc.Column)
		for _, v := range cc.Values {
			fmt.Fprintf(b, "- %s: %d (%.1f%%)\n", safeVal(v.Value), v.Count, v.Share*100)
		}
		b.WriteString("\n")
	}
}

func writeNumericSection(b *strings.Builder, sum eda.DatasetSummary, topK int) {
	var numeric []eda.ColumnSummary
	for _, c := range sum.Columns {
		if c.IsNumeric {
			numeric = append(numeric, c)
		}
	}
	if len(numeric) == 0 {
		return
	}
	if topK > 0 && len(numeric) > topK {
		numeric = numeric[:topK]
	}
	b.WriteString("## Numeric columns\n")
	for _, c := range numeric {
		fmt.Fprintf(b, "### %s\n", c.Name)
		if c.Min == nil {
			b.WriteString("- No observed values\n\n")
			continue
		}
		fmt.Fprintf(b, "- Min: %g\n", *c.Min)
		fmt.Fprintf(b, "- Max: %g\n", *c.Max)
		fmt.Fprintf(b, "- Mean: %.2f\n", *c.Mean)
		fmt.Fprintf(b, "- Std: %.2f\n", *c.Std)
		b.WriteString("\n")
	}
}

func writeVisualizations(b *strings.Builder, sum eda.DatasetSummary, p Params) {
	b.WriteString("## Visualizations\n")
	b.WriteString("### Histograms of numeric columns\n")
	b.WriteString("See the `hist_*.png` files\n\n")
	if p.IncludeBoxplots {
		b.WriteString("### Boxplots of numeric columns\n")
		b.WriteString("![Boxplots of numeric columns](numeric_boxplots.png)\n\n")
	}
	if p.IncludeCategoryBarcharts {
		b.WriteString("### Bar charts of categorical columns\n")
		b.WriteString("See the `barchart_*.png` files\n\n")
	}
	b.WriteString("### Missing values matrix\n")
	b.WriteString("![Missing values matrix](missing_matrix.png)\n\n")
	numeric := 0
	for _, c := range sum.Columns {
		if c.IsNumeric {
			numeric++
		}
	}
	if numeric >= 2 {
		b.WriteString("### Correlation heatmap\n")
		b.WriteString("![Correlation heatmap](correlation_heatmap.png)\n\n")
	}
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
