package report

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tablescan/tablescan-cli/internal/eda"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWriteSummaryCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteSummaryCSV(dir, sampleSummary())
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	rows := readCSV(t, path)
	if len(rows) != 4 {
		t.Fatalf("rows: got %d", len(rows))
	}
	if rows[0][0] != "name" || rows[0][10] != "std" {
		t.Fatalf("header: %v", rows[0])
	}
	if rows[1][0] != "age" || rows[1][4] != "0.25" || rows[1][9] != "20" {
		t.Fatalf("age row: %v", rows[1])
	}
	// Text column has empty numeric cells.
	if rows[3][0] != "city" || rows[3][7] != "" || rows[3][10] != "" {
		t.Fatalf("city row: %v", rows[3])
	}
}

func TestWriteMissingCSVKeepsHeaderWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteMissingCSV(dir, nil)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	rows := readCSV(t, path)
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %v", rows)
	}
	if rows[0][0] != "column" || rows[0][2] != "missing_share" {
		t.Fatalf("header: %v", rows[0])
	}
}

func TestWriteCorrelationCSV(t *testing.T) {
	dir := t.TempDir()
	m := &eda.CorrMatrix{
		Columns: []string{"x", "y"},
		Values:  [][]float64{{1, math.NaN()}, {math.NaN(), 1}},
	}
	path, err := WriteCorrelationCSV(dir, m)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	rows := readCSV(t, path)
	if rows[0][1] != "x" || rows[0][2] != "y" {
		t.Fatalf("header: %v", rows[0])
	}
	if rows[1][0] != "x" || rows[1][1] != "1" {
		t.Fatalf("first data row: %v", rows[1])
	}
	if rows[1][2] != "" {
		t.Fatalf("NaN should serialize empty, got %q", rows[1][2])
	}
}

func TestWriteCorrelationCSVNilMatrix(t *testing.T) {
	path, err := WriteCorrelationCSV(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("nil matrix should be a no-op, got %v", err)
	}
	if path != "" {
		t.Fatalf("expected empty path, got %q", path)
	}
}

func TestWriteTopCategories(t *testing.T) {
	dir := t.TempDir()
	cats := []eda.ColumnCategories{
		{Column: "city name", Values: []eda.CategoryShare{{Value: "A", Count: 2, Share: 1}}},
	}
	paths, err := WriteTopCategories(dir, cats)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("paths: %v", paths)
	}
	want := filepath.Join(dir, "top_categories", "top_values_city_name.csv")
	if paths[0] != want {
		t.Fatalf("path: got %q want %q", paths[0], want)
	}
	rows := readCSV(t, paths[0])
	if rows[1][0] != "A" || rows[1][1] != "2" || rows[1][2] != "1" {
		t.Fatalf("data row: %v", rows[1])
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	md, err := WriteMarkdown(dir, "# x\n")
	if err != nil {
		t.Fatalf("write markdown: %v", err)
	}
	m, err := WriteManifest(dir, "data.csv", []string{md, "", filepath.Join(dir, "summary.csv")})
	if err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if m.RunID == "" || m.Source != "data.csv" {
		t.Fatalf("manifest meta: %+v", m)
	}
	if len(m.Artifacts) != 2 || m.Artifacts[0] != "report.md" || m.Artifacts[1] != "summary.csv" {
		t.Fatalf("artifacts should be relative and skip empties: %v", m.Artifacts)
	}
	b, err := os.ReadFile(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var got Manifest
	if err := yaml.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if got.RunID != m.RunID {
		t.Fatalf("roundtrip run id: %q vs %q", got.RunID, m.RunID)
	}
	if !strings.HasSuffix(got.GeneratedAt, "Z") {
		t.Fatalf("timestamp should be UTC RFC3339: %q", got.GeneratedAt)
	}
}

func TestSafeFileName(t *testing.T) {
	cases := map[string]string{
		"city":      "city",
		"city name": "city_name",
		"a/b|c":     "a_b_c",
		"":          "column",
	}
	for in, want := range cases {
		if got := SafeFileName(in); got != want {
			t.Fatalf("SafeFileName(%q): got %q want %q", in, got, want)
		}
	}
}
