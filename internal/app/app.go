// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taxfilter-core/taxonomy"
	"taxfilter/internal/appcore"
	"taxfilter/internal/assignio"
	"taxfilter/internal/cli"
	"taxfilter/internal/config"
	"taxfilter/internal/fasta"
	"taxfilter/internal/taxapi"
	"taxfilter/internal/version"
	"taxfilter/internal/writers"
)

// RunContext parses argv, loads the inputs, and hands off to appcore.
// Exit codes: 0 ok, 1 runtime error, 2 usage error, 3 write error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("taxfilter")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushUsage(outw, stderr)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushUsage(outw, stderr)
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "taxfilter version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.ConfigFile != "" {
		cf, err := config.Load(opts.ConfigFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cf.Apply(&opts)
	}
	if opts.TaxonomyURL == "" && opts.TaxonomyDump == "" {
		fmt.Fprintln(stderr, "provide --taxonomy-url or --taxonomy-dump (flag or config file)")
		return 2
	}

	am, err := assignio.ReadAssignmentsFile(opts.Assignments)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	clusters, err := assignio.ReadClustersFile(opts.Clusters)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var svc taxonomy.Service
	if opts.TaxonomyDump != "" {
		svc, err = taxapi.ReadDumpFile(opts.TaxonomyDump)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	} else {
		svc = taxapi.NewClient(opts.TaxonomyURL, nil, nil)
	}

	var seqs map[string]string
	if len(opts.SeqFiles) > 0 {
		seqs, err = fasta.ReadFiles(opts.SeqFiles)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	coreOpts := appcore.Options{
		MinRatio:      opts.MinRatio,
		AncestryLevel: opts.AncestryLevel,
		Threads:       opts.Threads,
		Format:        opts.Output,
		Header:        opts.Header,
		Quiet:         opts.Quiet,
		Verbose:       opts.Verbose,
	}
	return appcore.Run(parent, outw, stderr, coreOpts, clusters, am, svc, seqs)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushUsage(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
