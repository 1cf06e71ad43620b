package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/tablescan/tablescan-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set TableScan configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("reports_dir: %s\n", c.ReportsDir)
		if c.Delimiter != "" {
			fmt.Printf("delimiter: %s\n", c.Delimiter)
		}
		fmt.Printf("example_values: %d\n", c.ExampleValues)
		fmt.Printf("high_cardinality_threshold: %d\n", c.HighCardinalityThreshold)
		fmt.Printf("zero_ratio_threshold: %.3f\n", c.ZeroRatioThreshold)
		fmt.Printf("min_missing_share: %.3f\n", c.MinMissingShare)
		fmt.Printf("top_k_categories: %d\n", c.TopKCategories)
		fmt.Printf("max_hist_columns: %d\n", c.MaxHistColumns)
		fmt.Printf("hist_bins: %d\n", c.HistBins)
		fmt.Printf("max_boxplot_columns: %d\n", c.MaxBoxplotColumns)
		fmt.Printf("max_barchart_columns: %d\n", c.MaxBarchartColumns)
		fmt.Printf("include_boxplots: %v\n", c.IncludeBoxplots)
		fmt.Printf("include_category_barcharts: %v\n", c.IncludeCategoryBarcharts)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := effectiveConfig()
		switch key {
		case "reports_dir":
			c.ReportsDir = val
		case "delimiter":
			switch val {
			case "", ",", ";", "tab":
				c.Delimiter = val
			default:
				return fmt.Errorf("invalid delimiter: %s (use ','|';'|'tab')", val)
			}
		case "example_values":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for example_values: %v", val)
			}
			c.ExampleValues = i
		case "high_cardinality_threshold":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for high_cardinality_threshold: %v", val)
			}
			c.HighCardinalityThreshold = i
		case "zero_ratio_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid ratio for zero_ratio_threshold: %v", val)
			}
			c.ZeroRatioThreshold = f
		case "min_missing_share":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid ratio for min_missing_share: %v", val)
			}
			c.MinMissingShare = f
		case "top_k_categories":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for top_k_categories: %v", val)
			}
			c.TopKCategories = i
		case "max_hist_columns":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for max_hist_columns: %v", val)
			}
			c.MaxHistColumns = i
		case "hist_bins":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for hist_bins: %v", val)
			}
			c.HistBins = i
		case "max_boxplot_columns":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for max_boxplot_columns: %v", val)
			}
			c.MaxBoxplotColumns = i
		case "max_barchart_columns":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for max_barchart_columns: %v", val)
			}
			c.MaxBarchartColumns = i
		case "include_boxplots":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for include_boxplots: %v", val)
			}
			c.IncludeBoxplots = b
		case "include_category_barcharts":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for include_category_barcharts: %v", val)
			}
			c.IncludeCategoryBarcharts = b
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		cfg = c
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Set %s = %s\n", key, val)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
