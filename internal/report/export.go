package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tablescan/tablescan-cli/internal/eda"
)

// Manifest records one report run and its artifacts.
type Manifest struct {
	RunID       string   `yaml:"run_id"`
	Source      string   `yaml:"source"`
	GeneratedAt string   `yaml:"generated_at"`
	Artifacts   []string `yaml:"artifacts"`
}

// WriteSummaryCSV flattens the dataset summary into summary.csv at dir.
func WriteSummaryCSV(dir string, sum eda.DatasetSummary) (string, error) {
	path := filepath.Join(dir, "summary.csv")
	rows := [][]string{{"name", "dtype", "non_null", "missing", "missing_share", "unique", "is_numeric", "min", "max", "mean", "std"}}
	for _, c := range sum.Columns {
		rows = append(rows, []string{
			c.Name,
			c.DType,
			strconv.Itoa(c.NonNull),
			strconv.Itoa(c.Missing),
			formatFloat(c.MissingShare),
			strconv.Itoa(c.Unique),
			strconv.FormatBool(c.IsNumeric),
			formatOptFloat(c.Min),
			formatOptFloat(c.Max),
			formatOptFloat(c.Mean),
			formatOptFloat(c.Std),
		})
	}
	return path, writeCSV(path, rows)
}

// WriteMissingCSV writes missing.csv. The header is emitted even for an empty
// table so downstream consumers always see the expected columns.
func WriteMissingCSV(dir string, missing []eda.MissingEntry) (string, error) {
	path := filepath.Join(dir, "missing.csv")
	rows := [][]string{{"column", "missing_count", "missing_share"}}
	for _, e := range missing {
		rows = append(rows, []string{e.Column, strconv.Itoa(e.Count), formatFloat(e.Share)})
	}
	return path, writeCSV(path, rows)
}

// WriteCorrelationCSV writes correlation.csv with column names on both axes.
// A nil matrix writes nothing and returns an empty path.
func WriteCorrelationCSV(dir string, m *eda.CorrMatrix) (string, error) {
	if m == nil {
		return "", nil
	}
	path := filepath.Join(dir, "correlation.csv")
	header := append([]string{""}, m.Columns...)
	rows := [][]string{header}
	for i, name := range m.Columns {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, name)
		for _, v := range m.Values[i] {
			row = append(row, formatFloat(v))
		}
		rows = append(rows, row)
	}
	return path, writeCSV(path, rows)
}

// WriteTopCategories writes one top_values_<column>.csv per analyzed column
// under dir/top_categories.
func WriteTopCategories(dir string, cats []eda.ColumnCategories) ([]string, error) {
	if len(cats) == 0 {
		return nil, nil
	}
	sub := filepath.Join(dir, "top_categories")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir top categories: %w", err)
	}
	var paths []string
	for _, cc := range cats {
		rows := [][]string{{"value", "count", "share"}}
		for _, v := range cc.Values {
			rows = append(rows, []string{v.Value, strconv.Itoa(v.Count), formatFloat(v.Share)})
		}
		path := filepath.Join(sub, "top_values_"+SafeFileName(cc.Column)+".csv")
		if err := writeCSV(path, rows); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteMarkdown writes the rendered report document to report.md at dir.
func WriteMarkdown(dir, md string) (string, error) {
	path := filepath.Join(dir, "report.md")
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// WriteManifest stamps the run with a fresh id and records the artifact list
// as manifest.yaml.
func WriteManifest(dir, source string, artifacts []string) (Manifest, error) {
	rel := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if a == "" {
			continue
		}
		if r, err := filepath.Rel(dir, a); err == nil {
			rel = append(rel, r)
		} else {
			rel = append(rel, a)
		}
	}
	m := Manifest{
		RunID:       uuid.New().String(),
		Source:      source,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Artifacts:   rel,
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return m, fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.yaml"), b, 0o644); err != nil {
		return m, fmt.Errorf("write manifest: %w", err)
	}
	return m, nil
}

// SafeFileName replaces characters that are awkward in file names.
func SafeFileName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "column"
	}
	return b.String()
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
