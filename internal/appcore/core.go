// internal/appcore/core.go
package appcore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"taxfilter-core/assign"
	"taxfilter-core/filter"
	"taxfilter-core/taxonomy"
	"taxfilter/internal/output"
	"taxfilter/internal/pipeline"
	"taxfilter/internal/writers"
)

// Options carries everything Run needs beyond the loaded inputs.
type Options struct {
	MinRatio      float64
	AncestryLevel int
	Threads       int

	Format string
	Header bool

	Quiet   bool
	Verbose bool
}

// Run wires the resolver, partitioner, pipeline, and writer together and
// drives one batch. Exit codes: 0 ok, 1 runtime failure, 3 write failure.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	clusters []assign.Cluster,
	am *assign.Map,
	svc taxonomy.Service,
	seqs map[string]string,
) int {
	log := newLogger(stderr, o)
	runID := uuid.NewString()
	log = log.With("run_id", runID)

	cfg := filter.Config{MinRatio: o.MinRatio, AncestryLevel: o.AncestryLevel}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	resolver := taxonomy.NewResolver(svc)
	part := filter.NewPartitioner(cfg, resolver)

	in, writeErr, err := writers.Start(o.Format, stdout, writers.Options{Header: o.Header}, 4*max(o.Threads, 1))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	log.Info("filtering started",
		"clusters", len(clusters), "assignments", am.Len(),
		"min_ratio", o.MinRatio, "ancestry_level", o.AncestryLevel)
	start := time.Now()

	records := 0
	perr := pipeline.ForEachResult(ctx, pipeline.Config{Threads: o.Threads}, clusters, am, part,
		func(r filter.Result) error {
			rec := output.Record{Result: r}
			if seqs != nil {
				rec.Seq = seqs[r.ID]
			}
			select {
			case in <- rec:
				records++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	close(in)
	werr := <-writeErr

	switch {
	case perr != nil:
		fmt.Fprintf(stderr, "error: %v\n", perr)
		return 1
	case werr != nil:
		fmt.Fprintf(stderr, "write error: %v\n", werr)
		return 3
	}

	log.Info("filtering finished",
		"records", records,
		"lineages_cached", resolver.CachedLineages(),
		"elapsed", time.Since(start).Round(time.Millisecond).String())
	return 0
}

func newLogger(stderr io.Writer, o Options) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case o.Quiet:
		level = slog.LevelError
	case o.Verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}
