package table

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	first := true
	for name, rows := range sheets {
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("new sheet: %v", err)
			}
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	return path
}

func TestLoadXLSXFirstSheet(t *testing.T) {
	path := writeXLSX(t, map[string][][]interface{}{
		"data": {
			{"age", "city"},
			{10, "A"},
			{nil, "B"},
			{30, nil},
		},
	})
	tbl, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.NRows() != 3 || tbl.NCols() != 2 {
		t.Fatalf("shape: got %dx%d", tbl.NRows(), tbl.NCols())
	}
	age, ok := tbl.Column("age")
	if !ok || !age.IsNumeric() {
		t.Fatalf("age should be present and numeric")
	}
	if !age.IsMissing(1) || age.Float(2) != 30 {
		t.Fatalf("age values wrong: missing(1)=%v age[2]=%v", age.IsMissing(1), age.Float(2))
	}
	city, ok := tbl.Column("city")
	if !ok {
		t.Fatalf("city column not found")
	}
	if !city.IsMissing(2) || city.String(0) != "A" {
		t.Fatalf("city values wrong")
	}
}

func TestLoadXLSXNamedSheet(t *testing.T) {
	path := writeXLSX(t, map[string][][]interface{}{
		"first":  {{"a"}, {1}},
		"second": {{"b"}, {2}},
	})
	tbl, err := Load(path, LoadOptions{Sheet: "second"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := tbl.Column("b"); !ok {
		t.Fatalf("expected sheet %q, got columns %v", "second", tbl.Names())
	}
}

func TestLoadXLSXMissingSheet(t *testing.T) {
	path := writeXLSX(t, map[string][][]interface{}{
		"data": {{"a"}, {1}},
	})
	if _, err := Load(path, LoadOptions{Sheet: "nope"}); err == nil {
		t.Fatalf("expected error for unknown sheet")
	}
}
