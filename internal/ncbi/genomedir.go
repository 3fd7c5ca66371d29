package ncbi

import (
	"bufio"
	"fmt"
	"strings"
)

// GenomeDirs maps a genome id to the directory holding its files.
type GenomeDirs map[string]string

// IDs returns the genome ids of the index, unsorted.
func (d GenomeDirs) IDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	return ids
}

// ReadGenomeDirs parses lines of `genome_id<TAB>dir[<TAB>...]`.
// A later line for the same id replaces an earlier one.
func (l *Loader) ReadGenomeDirs(path string) (GenomeDirs, error) {
	fh, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	dirs := GenomeDirs{}
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRightFunc(sc.Text(), isSpace)
		if line == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 2 {
			return nil, &MalformedLineError{Path: path, Line: ln, Fields: len(f), Want: 2}
		}
		dirs[f[0]] = f[1]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return dirs, nil
}
