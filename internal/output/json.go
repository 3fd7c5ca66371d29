// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"genometree/pkg/api"
)

// ToAPI converts a Row to the stable wire schema (v1).
func ToAPI(r Row) api.TypeStrainV1 {
	return api.TypeStrainV1{
		GenomeID:       r.GenomeID,
		TaxID:          r.TaxID,
		Directory:      r.Directory,
		Complete:       r.Complete,
		Representative: r.Representative,
	}
}

// WriteJSON writes rows as one indented JSON array. An empty input gives "[]".
func WriteJSON(w io.Writer, rows []Row) error {
	out := make([]api.TypeStrainV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPI(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
