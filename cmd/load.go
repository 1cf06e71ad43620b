package cmd

import (
	"fmt"

	"github.com/tablescan/tablescan-cli/internal/table"
)

// parseDelimiter translates a --sep flag value into a delimiter rune.
// Empty means auto-detect.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --sep: %s (use ','|';'|'tab')", s)
	}
}

// loadTable reads the dataset behind path honoring the sep/sheet flags and
// the configured default delimiter.
func loadTable(path, sep, sheet string) (*table.Table, error) {
	if sep == "" {
		sep = effectiveConfig().Delimiter
	}
	delim, err := parseDelimiter(sep)
	if err != nil {
		return nil, err
	}
	t, err := table.Load(path, table.LoadOptions{Delimiter: delim, Sheet: sheet})
	if err != nil {
		return nil, err
	}
	debugf("loaded %s: %d rows, %d columns", path, t.NRows(), t.NCols())
	return t, nil
}
