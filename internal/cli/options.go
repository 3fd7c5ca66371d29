// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"genometree/internal/config"
	"genometree/internal/logging"
)

// Output formats.
const (
	OutputText = "text"
	OutputTSV  = "tsv"
	OutputJSON = "json"
)

// Options holds all CLI flags.
type Options struct {
	// Inputs
	GenomeDirsFile  string
	MetadataFile    string
	TypeStrainsFile string
	ConfigFile      string

	// Selection
	KeepDBPrefix       bool
	CompleteOnly       bool
	RepresentativeOnly bool

	// Output
	Output          string
	Header          bool // true unless --no-header
	Sort            bool
	NoMatchExitCode int

	// Logging
	LogLevel string
	Quiet    bool

	Version bool

	changed func(string) bool
}

// ParseArgs registers and parses all flags. Validation happens in Validate,
// after config defaults have been merged.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	fs.StringVarP(&opt.GenomeDirsFile, "genome-dirs", "d", "", "TSV of genome id and directory [*]")
	fs.StringVarP(&opt.MetadataFile, "metadata", "m", "", "GTDB metadata CSV [*]")
	fs.StringVarP(&opt.TypeStrainsFile, "type-strains", "t", "", "TSV whose first column is a type-strain taxid [*]")
	fs.StringVarP(&opt.ConfigFile, "config", "c", "", "TOML file with default settings")

	fs.BoolVar(&opt.KeepDBPrefix, "keep-db-prefix", false, "keep RS_/GB_ prefixes on accessions")
	fs.BoolVar(&opt.CompleteOnly, "complete-only", false, "only report complete genomes")
	fs.BoolVar(&opt.RepresentativeOnly, "representative-only", false, "only report RefSeq reference/representative genomes")

	fs.StringVarP(&opt.Output, "output", "o", OutputText, "output format: text | tsv | json")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV")
	fs.BoolVar(&opt.Sort, "sort", true, "sort rows by genome id")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no type strain is found")

	fs.StringVar(&opt.LogLevel, "log-level", logging.DefaultLevel, "log level: debug | info | warn | error")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "only log errors")

	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, pflag.ErrHelp
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument(s): %v", fs.Args())
	}
	opt.Header = !noHeader
	opt.changed = fs.Changed
	return opt, nil
}

// Merge fills every option not given on the command line from f.
func (o *Options) Merge(f config.File) {
	set := o.changed
	if set == nil {
		set = func(string) bool { return false }
	}
	str := func(name string, dst *string, v string) {
		if !set(name) && v != "" {
			*dst = v
		}
	}
	flag := func(name string, dst *bool, v bool) {
		if !set(name) && v {
			*dst = v
		}
	}
	str("genome-dirs", &o.GenomeDirsFile, f.GenomeDirs)
	str("metadata", &o.MetadataFile, f.Metadata)
	str("type-strains", &o.TypeStrainsFile, f.TypeStrains)
	str("output", &o.Output, f.Output)
	str("log-level", &o.LogLevel, f.LogLevel)
	flag("keep-db-prefix", &o.KeepDBPrefix, f.KeepDBPrefix)
	flag("complete-only", &o.CompleteOnly, f.CompleteOnly)
	flag("representative-only", &o.RepresentativeOnly, f.RepresentativeOnly)
}

// Validate checks the merged options.
func (o Options) Validate() error {
	switch {
	case o.GenomeDirsFile == "":
		return errors.New("--genome-dirs is required")
	case o.MetadataFile == "":
		return errors.New("--metadata is required")
	case o.TypeStrainsFile == "":
		return errors.New("--type-strains is required")
	}
	switch o.Output {
	case OutputText, OutputTSV, OutputJSON:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoMatchExitCode < 0 {
		return errors.New("--no-match-exit-code must be >= 0")
	}
	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}
