// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTSV prints one tab-separated line per row.
func WriteTSV(w io.Writer, rows []Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, strings.Join(Columns, "\t")); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(r.Fields(), "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints rows as aligned columns for a terminal.
func WriteText(w io.Writer, rows []Row, header bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := WriteTSV(tw, rows, header); err != nil {
		return err
	}
	return tw.Flush()
}
