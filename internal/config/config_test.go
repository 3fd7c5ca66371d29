package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestLoad(t *testing.T) {
	mem := afero.NewMemMapFs()
	_ = afero.WriteFile(mem, "run.toml", []byte(`
genome_dirs = "/data/genome_dirs.tsv"
metadata = "/data/gtdb_metadata.csv"
type_strains = "/data/type_strains.tsv"
keep_db_prefix = true
complete_only = true
output = "json"
log_level = "debug"
`), 0o644)

	got, err := Load(mem, "run.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := File{
		GenomeDirs:   "/data/genome_dirs.tsv",
		Metadata:     "/data/gtdb_metadata.csv",
		TypeStrains:  "/data/type_strains.tsv",
		KeepDBPrefix: true,
		CompleteOnly: true,
		Output:       "json",
		LogLevel:     "debug",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	mem := afero.NewMemMapFs()
	_ = afero.WriteFile(mem, "run.toml", []byte("metadata = \"m.csv\"\nthreads = 4\n"), 0o644)
	_, err := Load(mem, "run.toml")
	if err == nil || !strings.Contains(err.Error(), "threads") {
		t.Fatalf("want unknown key error naming threads, got %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "nope.toml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/genometree.toml")
	if got := Resolve("local.toml"); got != "local.toml" {
		t.Fatalf("explicit path should win, got %q", got)
	}
	if got := Resolve(""); got != "/etc/genometree.toml" {
		t.Fatalf("want env path, got %q", got)
	}
}
