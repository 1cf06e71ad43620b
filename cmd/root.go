package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/tablescan/tablescan-cli/internal/config"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "tablescan",
	Short: "TableScan CLI: exploratory data analysis for CSV/XLSX files",
	Long:  `TableScan is a CLI tool that profiles tabular datasets: per-column statistics, missingness, correlation, categorical frequencies, heuristic data-quality flags, and a full Markdown report with charts and CSV exports.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tablescan/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded config, falling back to defaults when
// loading failed or never ran (e.g. in tests that bypass Execute).
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return &cfgpkg.Global{
			ReportsDir:               "reports",
			ExampleValues:            3,
			HighCardinalityThreshold: 50,
			ZeroRatioThreshold:       0.5,
			MinMissingShare:          0.1,
			TopKCategories:           10,
			MaxHistColumns:           6,
			HistBins:                 20,
			MaxBoxplotColumns:        8,
			MaxBarchartColumns:       5,
			IncludeBoxplots:          true,
			IncludeCategoryBarcharts: true,
		}
	}
	return c
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
