// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"taxfilter-core/assign"
	"taxfilter-core/filter"
)

// Config controls the partitioning pipeline.
type Config struct {
	Threads int // worker goroutines; <=0 means all CPUs
}

// ForEachResult partitions every cluster and calls visit once per result
// record, in input cluster order. The first error — from a worker or from
// visit — cancels the remaining work and is returned. A fault in one cluster
// never corrupts the results of another; the error names the failed cluster.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	clusters []assign.Cluster,
	am *assign.Map,
	part *filter.Partitioner,
	visit func(filter.Result) error,
) error {
	thr := cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		idx     int
		cluster assign.Cluster
	}
	type batch struct {
		idx     int
		results []filter.Result
	}

	jobs := make(chan job)
	out := make(chan batch, thr)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i, cl := range clusters {
			select {
			case jobs <- job{idx: i, cluster: cl}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < thr; w++ {
		g.Go(func() error {
			for j := range jobs {
				rs, err := part.Partition(gctx, j.cluster, am)
				if err != nil {
					return fmt.Errorf("cluster %d: %w", j.idx, err)
				}
				select {
				case out <- batch{idx: j.idx, results: rs}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(out)
		close(done)
	}()

	// Reorder batches back into input order so runs are byte-identical
	// regardless of worker count.
	var verr error
	pending := make(map[int][]filter.Result)
	next := 0
	for b := range out {
		pending[b.idx] = b.results
		for {
			rs, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if verr != nil {
				continue
			}
			for _, r := range rs {
				if err := visit(r); err != nil {
					verr = err
					cancel()
					break
				}
			}
		}
	}
	<-done

	if verr != nil {
		return verr
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}
