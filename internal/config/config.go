package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	ReportsDir string `mapstructure:"reports_dir" yaml:"reports_dir"`
	Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`

	ExampleValues            int     `mapstructure:"example_values" yaml:"example_values"`
	HighCardinalityThreshold int     `mapstructure:"high_cardinality_threshold" yaml:"high_cardinality_threshold"`
	ZeroRatioThreshold       float64 `mapstructure:"zero_ratio_threshold" yaml:"zero_ratio_threshold"`
	MinMissingShare          float64 `mapstructure:"min_missing_share" yaml:"min_missing_share"`
	TopKCategories           int     `mapstructure:"top_k_categories" yaml:"top_k_categories"`

	// Chart limits
	MaxHistColumns           int  `mapstructure:"max_hist_columns" yaml:"max_hist_columns"`
	HistBins                 int  `mapstructure:"hist_bins" yaml:"hist_bins"`
	MaxBoxplotColumns        int  `mapstructure:"max_boxplot_columns" yaml:"max_boxplot_columns"`
	MaxBarchartColumns       int  `mapstructure:"max_barchart_columns" yaml:"max_barchart_columns"`
	IncludeBoxplots          bool `mapstructure:"include_boxplots" yaml:"include_boxplots"`
	IncludeCategoryBarcharts bool `mapstructure:"include_category_barcharts" yaml:"include_category_barcharts"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.tablescan/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tablescan")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TABLESCAN")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("reports_dir", "reports")
	v.SetDefault("delimiter", "")
	v.SetDefault("example_values", 3)
	v.SetDefault("high_cardinality_threshold", 50)
	v.SetDefault("zero_ratio_threshold", 0.5)
	v.SetDefault("min_missing_share", 0.1)
	v.SetDefault("top_k_categories", 10)
	v.SetDefault("max_hist_columns", 6)
	v.SetDefault("hist_bins", 20)
	v.SetDefault("max_boxplot_columns", 8)
	v.SetDefault("max_barchart_columns", 5)
	v.SetDefault("include_boxplots", true)
	v.SetDefault("include_category_barcharts", true)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tablescan")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
