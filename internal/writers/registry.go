// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"genometree/internal/output"
)

// Options are the presentation switches shared by all formats.
type Options struct {
	Header bool
	Sort   bool
}

// Func serializes rows to w.
type Func func(w io.Writer, rows []output.Row, opt Options) error

var registry = map[string]Func{}

// Register installs fn for format. Last registration wins.
func Register(format string, fn Func) { registry[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write sorts a copy of rows when asked and dispatches to the format's writer.
func Write(format string, w io.Writer, rows []output.Row, opt Options) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	if opt.Sort {
		rows = append([]output.Row(nil), rows...)
		output.SortRows(rows)
	}
	return fn(w, rows, opt)
}

func init() {
	Register("text", func(w io.Writer, rows []output.Row, opt Options) error {
		return output.WriteText(w, rows, opt.Header)
	})
	Register("tsv", func(w io.Writer, rows []output.Row, opt Options) error {
		return output.WriteTSV(w, rows, opt.Header)
	})
	Register("json", func(w io.Writer, rows []output.Row, _ Options) error {
		return output.WriteJSON(w, rows)
	})
}
