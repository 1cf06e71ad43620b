package table

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCSVTypesAndMissing(t *testing.T) {
	path := writeFixture(t, "data.csv", "age,city,score\n10,A,1.5\n,B,2.5\n30,,NaN\n")
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.NRows() != 3 || tbl.NCols() != 3 {
		t.Fatalf("shape: got %dx%d", tbl.NRows(), tbl.NCols())
	}
	age, ok := tbl.Column("age")
	if !ok || !age.IsNumeric() {
		t.Fatalf("age should be numeric")
	}
	if !age.IsMissing(1) {
		t.Fatalf("age row 1 should be missing")
	}
	if got := age.Float(0); got != 10 {
		t.Fatalf("age[0]: got %v", got)
	}
	city, ok := tbl.Column("city")
	if !ok || city.IsNumeric() {
		t.Fatalf("city should be text")
	}
	if !city.IsMissing(2) {
		t.Fatalf("city row 2 should be missing")
	}
	score, ok := tbl.Column("score")
	if !ok {
		t.Fatalf("score column not found")
	}
	if !score.IsNumeric() {
		t.Fatalf("score should stay numeric with NaN token treated as missing")
	}
	if !score.IsMissing(2) {
		t.Fatalf("score row 2 should be missing")
	}
}

func TestLoadCSVHeaderSurvivesRowReads(t *testing.T) {
	path := writeFixture(t, "data.csv", "alpha,beta,gamma\n1,2,3\n4,5,6\n")
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	got := tbl.Names()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column names: got %v want %v", got, want)
		}
	}
	beta, ok := tbl.Column("beta")
	if !ok {
		t.Fatalf("lookup by header name failed, names are %v", got)
	}
	if beta.Float(1) != 5 {
		t.Fatalf("beta[1]: got %v", beta.Float(1))
	}
}

func TestLoadCSVMixedColumnIsText(t *testing.T) {
	path := writeFixture(t, "data.csv", "v\n1\ntwo\n3\n")
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v, ok := tbl.Column("v")
	if !ok {
		t.Fatalf("v column not found")
	}
	if v.IsNumeric() {
		t.Fatalf("mixed column should be text")
	}
	if v.String(0) != "1" || v.String(1) != "two" {
		t.Fatalf("unexpected values: %q %q", v.String(0), v.String(1))
	}
}

func TestLoadCSVAllMissingColumnIsText(t *testing.T) {
	path := writeFixture(t, "data.csv", "a,b\n1,\n2,\n")
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b, ok := tbl.Column("b")
	if !ok {
		t.Fatalf("b column not found")
	}
	if b.IsNumeric() {
		t.Fatalf("column with no observed values should not claim numeric")
	}
	if b.NonMissing() != 0 {
		t.Fatalf("expected all missing, got %d", b.NonMissing())
	}
}

func TestLoadTSVSniffsTab(t *testing.T) {
	path := writeFixture(t, "data.tsv", "a\tb\n1\tx\n")
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.NCols() != 2 {
		t.Fatalf("expected 2 columns, got %d", tbl.NCols())
	}
}

func TestLoadCSVShortRowsPadded(t *testing.T) {
	path := writeFixture(t, "data.csv", "a,b,c\n1,2\n4,5,6\n")
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c, ok := tbl.Column("c")
	if !ok {
		t.Fatalf("c column not found")
	}
	if !c.IsMissing(0) {
		t.Fatalf("padded cell should be missing")
	}
	if c.IsMissing(1) || c.Float(1) != 6 {
		t.Fatalf("row 1 should carry value 6")
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.csv", "")
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.NRows() != 0 || tbl.NCols() != 0 {
		t.Fatalf("expected empty table, got %dx%d", tbl.NRows(), tbl.NCols())
	}
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	path := writeFixture(t, "header.csv", "a,b\n")
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.NRows() != 0 || tbl.NCols() != 2 {
		t.Fatalf("expected 0x2, got %dx%d", tbl.NRows(), tbl.NCols())
	}
}

func TestLoadCSVThousandsSeparators(t *testing.T) {
	path := writeFixture(t, "data.csv", "n,s\n\"1,234\",\"12,34\"\n\"5,678.9\",x\n")
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	n, ok := tbl.Column("n")
	if !ok || !n.IsNumeric() {
		t.Fatalf("grouped digits should parse as numbers")
	}
	if n.Float(0) != 1234 || n.Float(1) != 5678.9 {
		t.Fatalf("n values: %v %v", n.Float(0), n.Float(1))
	}
	s, ok := tbl.Column("s")
	if !ok || s.IsNumeric() {
		t.Fatalf("ambiguous comma grouping should stay text")
	}
}

func TestCleanHeaderDeduplicates(t *testing.T) {
	names := cleanHeader([]string{"a", "a", "", "a"})
	want := []string{"a", "a_2", "unnamed_3", "a_3"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("name %d: got %q want %q", i, names[i], want[i])
		}
	}
}

func TestColumnAccessors(t *testing.T) {
	c := NewNumericColumn("x", []float64{1.5, 0}, []bool{false, true})
	if c.String(0) != "1.5" {
		t.Fatalf("String(0): got %q", c.String(0))
	}
	if c.String(1) != "" {
		t.Fatalf("missing cell should stringify empty")
	}
	if !math.IsNaN(c.Float(1)) {
		t.Fatalf("missing cell should be NaN")
	}
	if got := c.Floats(); len(got) != 1 || got[0] != 1.5 {
		t.Fatalf("Floats: got %v", got)
	}
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New([]Column{
		NewNumericColumn("a", []float64{1}, []bool{false}),
		NewTextColumn("b", []string{"x", "y"}, []bool{false, false}),
	})
	if err == nil {
		t.Fatalf("expected error for ragged columns")
	}
}
