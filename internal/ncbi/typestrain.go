package ncbi

import (
	"bufio"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// maxLine bounds a single line; GTDB rows run to a few KB.
const maxLine = 16 * 1024 * 1024

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// ReadTypeStrains collects the first tab-separated field of every line.
// The file has no header; trailing fields are ignored.
func (l *Loader) ReadTypeStrains(path string) (sets.Set[string], error) {
	fh, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	taxids := sets.New[string]()
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		// Scanner drops "\n"; a CRLF file still leaves the "\r".
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		first, _, _ := strings.Cut(line, "\t")
		taxids.Insert(first)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return taxids, nil
}
