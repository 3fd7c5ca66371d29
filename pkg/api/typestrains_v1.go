// pkg/api/typestrains_v1.go
package api

// TypeStrainV1 is the stable JSON schema for one type-strain genome.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TypeStrainV1 struct {
	GenomeID       string `json:"genome_id"`
	TaxID          string `json:"taxid"`
	Directory      string `json:"directory"`
	Complete       bool   `json:"complete"`
	Representative bool   `json:"representative"`
}
