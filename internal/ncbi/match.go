package ncbi

import "k8s.io/apimachinery/pkg/util/sets"

// TypeStrains returns the genomes whose taxid is a type-strain taxid.
// Genomes without a taxid never match, whatever typeStrainTaxIDs holds.
func TypeStrains(genomeIDs sets.Set[string], taxids TaxIDs, typeStrainTaxIDs sets.Set[string]) sets.Set[string] {
	out := sets.New[string]()
	for id := range genomeIDs {
		taxid, ok := taxids.Lookup(id)
		if ok && typeStrainTaxIDs.Has(taxid) {
			out.Insert(id)
		}
	}
	return out
}
