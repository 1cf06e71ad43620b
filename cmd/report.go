package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tablescan/tablescan-cli/internal/eda"
	"github.com/tablescan/tablescan-cli/internal/report"
	"github.com/tablescan/tablescan-cli/internal/viz"
)

var (
	repOutDir          string
	repSep             string
	repSheet           string
	repTitle           string
	repTopK            int
	repMinMissingShare float64
	repHighCardThr     int
	repZeroRatioThr    float64
	repCheckIDColumn   string
	repMaxHistColumns  int
	repBoxplots        bool
	repBarcharts       bool
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Generate a full EDA report: Markdown, CSV exports, and charts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		conf := effectiveConfig()

		outDir := repOutDir
		if outDir == "" {
			outDir = conf.ReportsDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("mkdir out dir: %w", err)
		}

		t, err := loadTable(path, repSep, repSheet)
		if err != nil {
			return err
		}

		summary := eda.Summarize(t, conf.ExampleValues)
		missing := eda.MissingTable(t)
		corr := eda.CorrelationMatrix(t)

		topK := conf.TopKCategories
		if cmd.Flags().Changed("top-k-categories") {
			topK = repTopK
		}
		cats := eda.TopCategories(t, topK, topK)

		opts := eda.HeuristicsOptions{
			HighCardinalityThreshold: conf.HighCardinalityThreshold,
			ZeroRatioThreshold:       conf.ZeroRatioThreshold,
			IDColumn:                 repCheckIDColumn,
		}
		if cmd.Flags().Changed("high-cardinality-threshold") {
			opts.HighCardinalityThreshold = repHighCardThr
		}
		if cmd.Flags().Changed("zero-ratio-threshold") {
			opts.ZeroRatioThreshold = repZeroRatioThr
		}
		flags := eda.Evaluate(summary, missing, t, opts)

		params := report.Params{
			Title:                    repTitle,
			TopK:                     topK,
			MinMissingShare:          conf.MinMissingShare,
			IncludeBoxplots:          conf.IncludeBoxplots,
			IncludeCategoryBarcharts: conf.IncludeCategoryBarcharts,
		}
		if cmd.Flags().Changed("min-missing-share") {
			params.MinMissingShare = repMinMissingShare
		}
		if cmd.Flags().Changed("include-boxplots") {
			params.IncludeBoxplots = repBoxplots
		}
		if cmd.Flags().Changed("include-category-barcharts") {
			params.IncludeCategoryBarcharts = repBarcharts
		}

		var artifacts []string

		p, err := report.WriteSummaryCSV(outDir, summary)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, p)
		if len(missing) > 0 {
			if p, err = report.WriteMissingCSV(outDir, missing); err != nil {
				return err
			}
			artifacts = append(artifacts, p)
		}
		if p, err = report.WriteCorrelationCSV(outDir, corr); err != nil {
			return err
		}
		if p != "" {
			artifacts = append(artifacts, p)
		}
		catPaths, err := report.WriteTopCategories(outDir, cats)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, catPaths...)

		md := report.Markdown(summary, flags, cats, params)
		mdPath, err := report.WriteMarkdown(outDir, md)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, mdPath)

		vopt := viz.Options{
			MaxHistColumns:     conf.MaxHistColumns,
			HistBins:           conf.HistBins,
			MaxBoxplotColumns:  conf.MaxBoxplotColumns,
			MaxBarchartColumns: conf.MaxBarchartColumns,
		}
		if cmd.Flags().Changed("max-hist-columns") {
			vopt.MaxHistColumns = repMaxHistColumns
		}
		histPaths, err := viz.HistogramsPerColumn(t, outDir, vopt)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, histPaths...)
		missPath := outDir + "/missing_matrix.png"
		if err := viz.MissingMatrix(t, missPath); err != nil {
			return err
		}
		artifacts = append(artifacts, missPath)
		if corr != nil && len(corr.Columns) >= 2 {
			heatPath := outDir + "/correlation_heatmap.png"
			if err := viz.CorrelationHeatmap(corr, heatPath); err != nil {
				return err
			}
			artifacts = append(artifacts, heatPath)
		}
		if params.IncludeBoxplots {
			boxPath := outDir + "/numeric_boxplots.png"
			if err := viz.NumericBoxplots(t, boxPath, vopt); err != nil {
				return err
			}
			artifacts = append(artifacts, boxPath)
		}
		if params.IncludeCategoryBarcharts {
			barPaths, err := viz.TopCategoriesBarcharts(cats, outDir, vopt)
			if err != nil {
				return err
			}
			artifacts = append(artifacts, barPaths...)
		}

		manifest, err := report.WriteManifest(outDir, path, artifacts)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Report generated in %s (run %s)\n", outDir, manifest.RunID)
		fmt.Printf("- Markdown: %s\n", mdPath)
		fmt.Println("- Tables: summary.csv, missing.csv, correlation.csv, top_categories/*.csv")
		fmt.Println("- Charts: hist_*.png, missing_matrix.png, correlation_heatmap.png")
		if params.IncludeBoxplots {
			fmt.Println("- Extra charts: numeric_boxplots.png")
		}
		if params.IncludeCategoryBarcharts {
			fmt.Println("- Extra charts: barchart_*.png")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutDir, "out-dir", "o", "", "output directory for the report (default from config)")
	reportCmd.Flags().StringVar(&repSep, "sep", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	reportCmd.Flags().StringVar(&repSheet, "sheet", "", "XLSX: sheet name to analyze (first sheet if omitted)")
	reportCmd.Flags().StringVar(&repTitle, "title", "EDA Report", "report title")
	reportCmd.Flags().IntVar(&repTopK, "top-k-categories", 10, "number of top categories per column")
	reportCmd.Flags().Float64Var(&repMinMissingShare, "min-missing-share", 0.1, "missing-share threshold for problem columns")
	reportCmd.Flags().IntVar(&repHighCardThr, "high-cardinality-threshold", 50, "unique-count threshold for high-cardinality categoricals")
	reportCmd.Flags().Float64Var(&repZeroRatioThr, "zero-ratio-threshold", 0.5, "zero-share threshold for numeric columns")
	reportCmd.Flags().StringVar(&repCheckIDColumn, "check-id-column", "", "id column to check for duplicates")
	reportCmd.Flags().IntVar(&repMaxHistColumns, "max-hist-columns", 6, "maximum numeric columns to plot as histograms")
	reportCmd.Flags().BoolVar(&repBoxplots, "include-boxplots", true, "render boxplots for numeric columns")
	reportCmd.Flags().BoolVar(&repBarcharts, "include-category-barcharts", true, "render bar charts for categorical columns")
}
