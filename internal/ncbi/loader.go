package ncbi

import (
	"github.com/spf13/afero"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Loader runs the readers against a filesystem. The zero value reads
// from the OS filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader returns a Loader reading from fs. A nil fs means the OS filesystem.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs}
}

var osLoader = NewLoader(nil)

// ReadGenomeDirs reads a genome directory index from the OS filesystem.
func ReadGenomeDirs(path string) (GenomeDirs, error) { return osLoader.ReadGenomeDirs(path) }

// ReadRefSeqMetadata reads a GTDB metadata table from the OS filesystem.
func ReadRefSeqMetadata(path string, keepDBPrefix bool) (*Metadata, error) {
	return osLoader.ReadRefSeqMetadata(path, keepDBPrefix)
}

// ReadTypeStrains reads a type-strain taxid list from the OS filesystem.
func ReadTypeStrains(path string) (sets.Set[string], error) { return osLoader.ReadTypeStrains(path) }

// open returns the filesystem's *PathError unchanged; it already names the path.
func (l *Loader) open(path string) (afero.File, error) {
	if l.fs == nil {
		return afero.NewOsFs().Open(path)
	}
	return l.fs.Open(path)
}
