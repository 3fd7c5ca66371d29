// Package ncbi reads the NCBI/GTDB side files used when picking reference
// genomes for a taxonomic tree: the genome directory index, the GTDB
// metadata table and the list of type-strain taxonomy ids.
//
// Every reader makes one pass over one file and returns a fully built
// structure or an error, never both. Nothing here keeps state between calls.
package ncbi
