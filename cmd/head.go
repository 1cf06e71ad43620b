package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	headN     int
	headSep   string
	headSheet string
)

var headCmd = &cobra.Command{
	Use:   "head <file>",
	Short: "Show the first N rows of a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		t, err := loadTable(path, headSep, headSheet)
		if err != nil {
			return err
		}
		n := headN
		if n > t.NRows() {
			n = t.NRows()
		}
		fmt.Printf("First %d rows of %s:\n", n, path)
		sep := strings.Repeat("=", 50)
		fmt.Println(sep)
		cols := t.Columns()
		names := make([]string, len(cols))
		for i := range cols {
			names[i] = cols[i].Name()
		}
		fmt.Println(strings.Join(names, " | "))
		for i := 0; i < n; i++ {
			row := make([]string, len(cols))
			for j := range cols {
				v := cols[j].String(i)
				if v == "" && cols[j].IsMissing(i) {
					v = "<NA>"
				}
				row[j] = v
			}
			fmt.Println(strings.Join(row, " | "))
		}
		fmt.Println(sep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(headCmd)
	headCmd.Flags().IntVarP(&headN, "rows", "n", 5, "number of rows to show")
	headCmd.Flags().StringVar(&headSep, "sep", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	headCmd.Flags().StringVar(&headSheet, "sheet", "", "XLSX: sheet name to show (first sheet if omitted)")
}
