// internal/output/rows.go
package output

import (
	"sort"
	"strconv"
)

// Row is one reported type-strain genome.
type Row struct {
	GenomeID       string
	TaxID          string
	Directory      string
	Complete       bool
	Representative bool
}

// Columns is the header shared by text and TSV output.
var Columns = []string{"genome_id", "taxid", "directory", "complete", "representative"}

// Fields returns r in Columns order.
func (r Row) Fields() []string {
	return []string{
		r.GenomeID,
		r.TaxID,
		r.Directory,
		strconv.FormatBool(r.Complete),
		strconv.FormatBool(r.Representative),
	}
}

// SortRows orders rows by genome id.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].GenomeID < rows[j].GenomeID })
}
