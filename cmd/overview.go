package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablescan/tablescan-cli/internal/eda"
)

var (
	ovSep           string
	ovSheet         string
	ovHighCardThr   int
	ovZeroRatioThr  float64
	ovCheckIDColumn string
)

var overviewCmd = &cobra.Command{
	Use:   "overview <file>",
	Short: "Print a compact dataset overview with data-quality flags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		conf := effectiveConfig()
		t, err := loadTable(path, ovSep, ovSheet)
		if err != nil {
			return err
		}

		summary := eda.Summarize(t, conf.ExampleValues)
		missing := eda.MissingTable(t)

		opts := eda.HeuristicsOptions{
			HighCardinalityThreshold: conf.HighCardinalityThreshold,
			ZeroRatioThreshold:       conf.ZeroRatioThreshold,
			IDColumn:                 ovCheckIDColumn,
		}
		if cmd.Flags().Changed("high-cardinality-threshold") {
			opts.HighCardinalityThreshold = ovHighCardThr
		}
		if cmd.Flags().Changed("zero-ratio-threshold") {
			opts.ZeroRatioThreshold = ovZeroRatioThr
		}
		flags := eda.Evaluate(summary, missing, t, opts)

		sep := strings.Repeat("=", 60)
		fmt.Println(sep)
		fmt.Printf("Dataset: %s\n", path)
		fmt.Printf("Rows: %d, Columns: %d\n", summary.NRows, summary.NCols)
		fmt.Printf("Quality score: %.3f\n", flags.QualityScore)
		fmt.Printf("Max missing share: %.2f%%\n", flags.MaxMissingShare*100)
		fmt.Println()

		fmt.Println("Data quality flags:")
		fmt.Printf("  Too few rows (<100): %v\n", flags.TooFewRows)
		fmt.Printf("  Too many columns (>100): %v\n", flags.TooManyColumns)
		fmt.Printf("  Too many missing (>50%%): %v\n", flags.TooManyMissing)
		fmt.Printf("  Constant columns: %v\n", flags.HasConstantColumns)
		if flags.HasConstantColumns {
			fmt.Printf("     Columns: %s\n", strings.Join(flags.ConstantColumns, ", "))
		}
		fmt.Printf("  High-cardinality categoricals: %v\n", flags.HasHighCardinalityCategoricals)
		for _, c := range flags.HighCardinalityColumns {
			fmt.Printf("     %s: %d unique\n", c.Name, c.Unique)
		}
		fmt.Printf("  Many zero values: %v\n", flags.HasManyZeroValues)
		for _, c := range flags.HighZeroRatioColumns {
			fmt.Printf("     %s: %.1f%% zeros\n", c.Name, c.Ratio*100)
		}
		if ovCheckIDColumn != "" {
			fmt.Printf("  Duplicates in id column: %v\n", flags.HasSuspiciousIDDuplicates)
			if flags.HasSuspiciousIDDuplicates {
				fmt.Printf("     %s: %d duplicated rows\n", flags.IDColumnChecked, flags.IDDuplicatesCount)
			}
		}
		fmt.Println(sep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
	overviewCmd.Flags().StringVar(&ovSep, "sep", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	overviewCmd.Flags().StringVar(&ovSheet, "sheet", "", "XLSX: sheet name to analyze (first sheet if omitted)")
	overviewCmd.Flags().IntVar(&ovHighCardThr, "high-cardinality-threshold", 50, "unique-count threshold for high-cardinality categoricals")
	overviewCmd.Flags().Float64Var(&ovZeroRatioThr, "zero-ratio-threshold", 0.5, "zero-share threshold for numeric columns")
	overviewCmd.Flags().StringVar(&ovCheckIDColumn, "check-id-column", "", "id column to check for duplicates")
}
