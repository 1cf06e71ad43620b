package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOptions controls how a source file is read into a Table.
type LoadOptions struct {
	// Delimiter for CSV. If 0, auto-detects from the file extension.
	Delimiter rune
	// Sheet selects an XLSX sheet by name; empty means the first sheet.
	Sheet string
}

// Load reads a CSV/TSV or XLSX file into a Table, dispatching on extension.
func Load(path string, opt LoadOptions) (*Table, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") {
		return LoadXLSX(path, opt)
	}
	return LoadCSV(path, opt)
}

// LoadCSV reads a delimited text file into a Table. The first record is the
// header; short rows are padded with missing cells and long rows truncated to
// the header width.
func LoadCSV(path string, opt LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return New(nil)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	// ReuseRecord means later reads overwrite this slice; detach it.
	header = append([]string(nil), header...)
	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		cp := make([]string, len(rec))
		copy(cp, rec)
		rows = append(rows, cp)
	}
	return fromRecords(header, rows)
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

// fromRecords builds a typed Table from a header and raw string rows. A column
// is numeric when every non-missing value parses as a float and at least one
// non-missing value exists; otherwise it is text.
func fromRecords(header []string, rows [][]string) (*Table, error) {
	ncol := len(header)
	if ncol == 0 {
		return New(nil)
	}
	names := cleanHeader(header)
	nrows := len(rows)

	cols := make([]Column, 0, ncol)
	for j := 0; j < ncol; j++ {
		raw := make([]string, nrows)
		missing := make([]bool, nrows)
		numeric := true
		seen := false
		for i, rec := range rows {
			v := ""
			if j < len(rec) {
				v = strings.TrimSpace(rec[j])
			}
			if isMissingToken(v) {
				missing[i] = true
				continue
			}
			raw[i] = v
			seen = true
			if numeric {
				if _, err := strconv.ParseFloat(normalizeNumber(v), 64); err != nil {
					numeric = false
				}
			}
		}
		if numeric && seen {
			nums := make([]float64, nrows)
			for i := range raw {
				if missing[i] {
					continue
				}
				nums[i], _ = strconv.ParseFloat(normalizeNumber(raw[i]), 64)
			}
			cols = append(cols, NewNumericColumn(names[j], nums, missing))
		} else {
			cols = append(cols, NewTextColumn(names[j], raw, missing))
		}
	}
	return New(cols)
}

// isMissingToken reports whether a raw cell counts as missing. Besides the
// empty string, the common NA spellings are recognized, approximating the
// default NA tokens of the usual CSV tooling.
func isMissingToken(v string) bool {
	switch strings.ToLower(v) {
	case "", "na", "n/a", "nan", "null", "none":
		return true
	}
	return false
}

// normalizeNumber strips thousands separators that would defeat ParseFloat.
// Only the unambiguous case (digit groups of three) is rewritten.
func normalizeNumber(v string) string {
	if !strings.Contains(v, ",") {
		return v
	}
	// "1,234" or "1,234.5" style
	parts := strings.Split(v, ",")
	for i, p := range parts {
		if i == 0 {
			continue
		}
		head := p
		if dot := strings.IndexByte(p, '.'); dot >= 0 {
			head = p[:dot]
		}
		if len(head) != 3 {
			return v
		}
	}
	return strings.ReplaceAll(v, ",", "")
}

// cleanHeader trims names, fills in blanks, and disambiguates duplicates so
// column names stay unique within the table.
func cleanHeader(header []string) []string {
	names := make([]string, len(header))
	used := map[string]int{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("unnamed_%d", i+1)
		}
		if n, ok := used[name]; ok {
			used[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		used[name] = 1
		names[i] = name
	}
	return names
}
