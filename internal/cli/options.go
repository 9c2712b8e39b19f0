// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"taxfilter-core/filter"
	"taxfilter/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	Assignments  string
	Clusters     string
	TaxonomyURL  string
	TaxonomyDump string
	SeqFiles     []string
	ConfigFile   string

	// Decision parameters
	MinRatio      float64
	AncestryLevel int

	// Performance
	Threads int

	// Output
	Output string
	Header bool // true unless --no-header

	// Diagnostics
	Quiet   bool
	Verbose bool
	Version bool

	// Explicit records which flags the user actually set, so config-file
	// values only fill the gaps.
	Explicit map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: consistency filtering for clustered taxonomic assignments

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var seq stringSlice

	// Inputs
	fs.StringVar(&opt.Assignments, "assignments", "", "assignment table: ID<TAB>taxon,taxon,... [*]")
	fs.StringVar(&opt.Clusters, "clusters", "", "cluster listing: one cluster of IDs per line [*]")
	fs.StringVar(&opt.TaxonomyURL, "taxonomy-url", "", "base URL of the taxonomy lineage service")
	fs.StringVar(&opt.TaxonomyDump, "taxonomy-dump", "", "flat child<TAB>parent taxonomy dump file")
	fs.Var(&seq, "sequences", "FASTA file(s) with the original sequences (repeatable or '-')")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML config file supplying defaults")

	// Decision parameters
	fs.Float64Var(&opt.MinRatio, "min-ratio", filter.DefaultMinRatio,
		fmt.Sprintf("minimum cluster-support ratio for acceptance [%g]", filter.DefaultMinRatio))
	fs.IntVar(&opt.AncestryLevel, "ancestry-level", filter.DefaultAncestryLevel,
		fmt.Sprintf("comparison-ancestor level, counted from the root [%d]", filter.DefaultAncestryLevel))

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl | fasta [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "log errors only [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = seq
	opt.Header = !noHeader
	opt.Explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opt.Explicit[f.Name] = true })

	// Validation
	if opt.Assignments == "" {
		return opt, errors.New("--assignments is required")
	}
	if opt.Clusters == "" {
		return opt, errors.New("--clusters is required")
	}
	if opt.TaxonomyURL != "" && opt.TaxonomyDump != "" {
		return opt, errors.New("--taxonomy-url conflicts with --taxonomy-dump")
	}
	if opt.MinRatio < 0 || opt.MinRatio > 1 {
		return opt, errors.New("--min-ratio must be within [0, 1]")
	}
	if opt.AncestryLevel < 0 {
		return opt, errors.New("--ancestry-level must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case "text", "json", "jsonl", "fasta":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Output == "fasta" && len(opt.SeqFiles) == 0 {
		return opt, errors.New("--output fasta requires --sequences")
	}
	if opt.Quiet && opt.Verbose {
		return opt, errors.New("--quiet conflicts with --verbose")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
