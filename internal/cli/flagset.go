package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"genometree/internal/config"
	"genometree/internal/version"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError.
// Usage is printed by the caller via PrintUsage.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}
	return fs
}

// PrintUsage writes the help text for a FlagSet populated by ParseArgs.
func PrintUsage(w io.Writer, fs *pflag.FlagSet) {
	name := fs.Name()
	fmt.Fprintf(w, "%s: list type-strain genomes from GTDB/NCBI metadata\n\n", name)
	fmt.Fprintf(w, "Version: %s\n\n", version.Version)
	fmt.Fprintf(w, "Usage:\n  %s --genome-dirs FILE --metadata FILE --type-strains FILE [flags]\n\n", name)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintf(w, "\nDefaults may also come from a TOML file (--config or $%s).\n", config.EnvConfigPath)
}
