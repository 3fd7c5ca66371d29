package ncbi

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Header names of the GTDB metadata columns the reader needs.
const (
	ColGenome         = "genome"
	ColTaxID          = "ncbi_taxid"
	ColAssemblyLevel  = "ncbi_assembly_level"
	ColRefSeqCategory = "ncbi_refseq_category"
)

// Database prefixes GTDB puts in front of assembly accessions.
const (
	RefSeqPrefix  = "RS_"
	GenBankPrefix = "GB_"
)

// MissingTaxID is the placeholder callers pass to TaxIDs.LookupOr for
// accessions without a taxid. TypeStrains never compares against it.
const MissingTaxID = "-1"

// TaxIDs maps an assembly accession to its NCBI taxonomy id.
type TaxIDs map[string]string

// Lookup returns the taxid of acc and whether it was present.
func (t TaxIDs) Lookup(acc string) (string, bool) {
	id, ok := t[acc]
	return id, ok
}

// LookupOr returns the taxid of acc, or def when acc is unknown.
func (t TaxIDs) LookupOr(acc, def string) string {
	if id, ok := t[acc]; ok {
		return id
	}
	return def
}

// Metadata is what ReadRefSeqMetadata derives from one metadata table.
// All three structures share the same accession keys.
type Metadata struct {
	TaxIDs         TaxIDs
	Complete       sets.Set[string] // NCBI assembly level "Complete Genome"
	Representative sets.Set[string] // RefSeq category reference or representative
}

func newMetadata() *Metadata {
	return &Metadata{
		TaxIDs:         TaxIDs{},
		Complete:       sets.New[string](),
		Representative: sets.New[string](),
	}
}

// NormalizeAccession removes every "RS_" and "GB_" from acc.
func NormalizeAccession(acc string) string {
	acc = strings.ReplaceAll(acc, RefSeqPrefix, "")
	return strings.ReplaceAll(acc, GenBankPrefix, "")
}

type metadataColumns struct {
	genome, taxid, level, category int
	width                          int // fields a row needs to reach every column
}

func resolveColumns(path string, header []string) (metadataColumns, error) {
	idx := func(name string) (int, error) {
		for i, h := range header {
			if h == name {
				return i, nil
			}
		}
		return -1, &MissingColumnError{Path: path, Column: name}
	}
	var c metadataColumns
	var err error
	if c.genome, err = idx(ColGenome); err != nil {
		return c, err
	}
	if c.taxid, err = idx(ColTaxID); err != nil {
		return c, err
	}
	if c.level, err = idx(ColAssemblyLevel); err != nil {
		return c, err
	}
	if c.category, err = idx(ColRefSeqCategory); err != nil {
		return c, err
	}
	c.width = 1 + max(c.genome, c.taxid, c.level, c.category)
	return c, nil
}

// ReadRefSeqMetadata parses a GTDB metadata CSV and keeps RefSeq ("RS_")
// genomes only. Keys have their database prefixes removed unless keepDBPrefix.
//
// GenBank-only rows are dropped before normalization, so a GB_ genome never
// appears in any of the three structures even when NCBI marks it representative.
func (l *Loader) ReadRefSeqMetadata(path string, keepDBPrefix bool) (*Metadata, error) {
	fh, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true
	// Organism and strain names carry stray quotes, e.g. Candidatus "Foo" bar.
	r.LazyQuotes = true

	md := newMetadata()
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return md, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cols, err := resolveColumns(path, header)
	if err != nil {
		return nil, err
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if len(row) < cols.width {
			line, _ := r.FieldPos(0)
			return nil, &MalformedLineError{Path: path, Line: line, Fields: len(row), Want: cols.width}
		}

		acc := row[cols.genome]
		if !strings.HasPrefix(acc, RefSeqPrefix) {
			continue
		}
		if !keepDBPrefix {
			acc = NormalizeAccession(acc)
		}

		md.TaxIDs[acc] = row[cols.taxid]
		if strings.ToLower(row[cols.level]) == "complete genome" {
			md.Complete.Insert(acc)
		}
		category := strings.ToLower(row[cols.category])
		if strings.Contains(category, "reference") || strings.Contains(category, "representative") {
			md.Representative.Insert(acc)
		}
	}
	return md, nil
}
