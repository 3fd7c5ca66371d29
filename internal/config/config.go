// Package config loads gtdb-typestrains run settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// EnvConfigPath names the config file when --config is not given.
const EnvConfigPath = "GENOMETREE_CONFIG"

// File mirrors the TOML keys. Zero values mean "not set".
type File struct {
	GenomeDirs         string `toml:"genome_dirs"`
	Metadata           string `toml:"metadata"`
	TypeStrains        string `toml:"type_strains"`
	KeepDBPrefix       bool   `toml:"keep_db_prefix"`
	CompleteOnly       bool   `toml:"complete_only"`
	RepresentativeOnly bool   `toml:"representative_only"`
	Output             string `toml:"output"`
	LogLevel           string `toml:"log_level"`
}

// Load decodes path from fs. Keys that File does not know are an error.
func Load(fs afero.Fs, path string) (File, error) {
	var f File
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return f, fmt.Errorf("config: %w", err)
	}
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return f, fmt.Errorf("config %s: unknown key(s) %s", path, strings.Join(keys, ", "))
	}
	return f, nil
}

// Resolve picks the config path: explicit wins, then $GENOMETREE_CONFIG.
// An empty result means no config file.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(EnvConfigPath)
}
