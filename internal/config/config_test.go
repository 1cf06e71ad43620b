package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ReportsDir != "reports" {
		t.Fatalf("reports_dir default: got %q", c.ReportsDir)
	}
	if c.TopKCategories != 10 || c.HighCardinalityThreshold != 50 {
		t.Fatalf("numeric defaults: %+v", c)
	}
	if c.ZeroRatioThreshold != 0.5 || c.MinMissingShare != 0.1 {
		t.Fatalf("ratio defaults: %+v", c)
	}
	if !c.IncludeBoxplots || !c.IncludeCategoryBarcharts {
		t.Fatalf("chart toggles should default on: %+v", c)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Global{
		ReportsDir:               "out",
		Delimiter:                ";",
		ExampleValues:            5,
		HighCardinalityThreshold: 30,
		ZeroRatioThreshold:       0.6,
		MinMissingShare:          0.2,
		TopKCategories:           7,
		MaxHistColumns:           4,
		HistBins:                 10,
		MaxBoxplotColumns:        3,
		MaxBarchartColumns:       2,
		IncludeBoxplots:          false,
		IncludeCategoryBarcharts: true,
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TABLESCAN_TOP_K_CATEGORIES", "42")
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.TopKCategories != 42 {
		t.Fatalf("env override: got %d", c.TopKCategories)
	}
}

func TestSaveDefaultPathUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := Save(&Global{ReportsDir: "r"}, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".tablescan", "config.yaml")); err != nil {
		t.Fatalf("config not written under home: %v", err)
	}
}
