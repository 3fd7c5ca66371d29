// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/sets"

	"genometree/internal/cli"
	"genometree/internal/config"
	"genometree/internal/logging"
	"genometree/internal/ncbi"
	"genometree/internal/output"
	"genometree/internal/version"
	"genometree/internal/writers"
)

// Name is the command name used in usage and version output.
const Name = "gtdb-typestrains"

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

// Inputs are the three loaded files.
type Inputs struct {
	Dirs        ncbi.GenomeDirs
	Meta        *ncbi.Metadata
	TypeStrains sets.Set[string]
}

// Load reads the genome directory index, the metadata table and the
// type-strain list, in that order, stopping at the first error.
func Load(ctx context.Context, l *ncbi.Loader, opts cli.Options) (*Inputs, error) {
	var in Inputs
	var err error
	if in.Dirs, err = l.ReadGenomeDirs(opts.GenomeDirsFile); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in.Meta, err = l.ReadRefSeqMetadata(opts.MetadataFile, opts.KeepDBPrefix); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in.TypeStrains, err = l.ReadTypeStrains(opts.TypeStrainsFile); err != nil {
		return nil, err
	}
	return &in, nil
}

// Select matches the indexed genomes against the type-strain taxids and
// applies the complete/representative filters.
func Select(in *Inputs, opts cli.Options) []output.Row {
	ids := sets.KeySet(in.Dirs)
	matched := ncbi.TypeStrains(ids, in.Meta.TaxIDs, in.TypeStrains)
	if opts.CompleteOnly {
		matched = matched.Intersection(in.Meta.Complete)
	}
	if opts.RepresentativeOnly {
		matched = matched.Intersection(in.Meta.Representative)
	}

	rows := make([]output.Row, 0, matched.Len())
	for id := range matched {
		rows = append(rows, output.Row{
			GenomeID:       id,
			TaxID:          in.Meta.TaxIDs.LookupOr(id, ncbi.MissingTaxID),
			Directory:      in.Dirs[id],
			Complete:       in.Meta.Complete.Has(id),
			Representative: in.Meta.Representative.Has(id),
		})
	}
	return rows
}

// flush writes any buffered output; a closed downstream pipe is not an error.
func flush(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	return ExitOK
}

// RunFS is Run against an explicit filesystem.
func RunFS(ctx context.Context, fsys afero.Fs, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(Name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cli.PrintUsage(outw, fs)
			return flush(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.PrintUsage(outw, fs)
		if code := flush(outw, stderr); code != ExitOK {
			return code
		}
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", Name, version.Version)
		return flush(outw, stderr)
	}

	if path := config.Resolve(opts.ConfigFile); path != "" {
		f, err := config.Load(fsys, path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		opts.Merge(f)
	}
	if err := opts.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	level, _ := logging.ParseLevel(opts.LogLevel)
	log := logging.New(stderr, level, opts.Quiet)
	log.WithFields(logrus.Fields{
		"genome_dirs":  opts.GenomeDirsFile,
		"metadata":     opts.MetadataFile,
		"type_strains": opts.TypeStrainsFile,
		"output":       opts.Output,
	}).Debug("resolved options")

	in, err := Load(ctx, ncbi.NewLoader(fsys), opts)
	if err != nil {
		if ctx.Err() != nil {
			return ExitCanceled
		}
		log.Error(err)
		return ExitUsage
	}
	log.Infof("loaded %d genome directories, %d RefSeq taxids, %d type-strain taxids",
		len(in.Dirs), len(in.Meta.TaxIDs), in.TypeStrains.Len())

	withTaxID := 0
	for id := range in.Dirs {
		if _, ok := in.Meta.TaxIDs.Lookup(id); ok {
			withTaxID++
		}
	}
	if withTaxID == 0 && len(in.Dirs) > 0 {
		log.Warn("no indexed genome has a RefSeq taxid; check --keep-db-prefix against the genome id format")
	}

	rows := Select(in, opts)
	log.Infof("%d type-strain genome(s) selected", len(rows))

	wopt := writers.Options{Header: opts.Header, Sort: opts.Sort}
	if err := writers.Write(opts.Output, outw, rows, wopt); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		log.Error(err)
		return ExitOutput
	}
	if code := flush(outw, stderr); code != ExitOK {
		return code
	}
	if len(rows) == 0 {
		return opts.NoMatchExitCode
	}
	return ExitOK
}

// RunContext runs the command against the OS filesystem.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunFS(ctx, afero.NewOsFs(), argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
