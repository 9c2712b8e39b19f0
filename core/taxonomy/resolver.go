// core/taxonomy/resolver.go
package taxonomy

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Resolver memoizes lineage lookups against a Service for the duration of a
// run. The cache is append-only and keyed by taxon identity; a cached lineage
// is never invalidated. Safe for concurrent use: in-flight misses are
// deduplicated per taxon, and a slow lookup for one taxon never blocks
// lookups for other taxa.
type Resolver struct {
	svc Service

	mu    sync.RWMutex
	cache map[Taxon]Lineage

	flight singleflight.Group
}

// NewResolver returns a Resolver with an empty cache over svc.
func NewResolver(svc Service) *Resolver {
	return &Resolver{svc: svc, cache: make(map[Taxon]Lineage)}
}

// LineageOf returns t's ancestor chain, nearest ancestor first. A taxon
// unknown to the service yields an empty lineage and nil error; that result
// is cached like any other. Service faults are returned as-is and are not
// cached, so a later retry can still succeed.
func (r *Resolver) LineageOf(ctx context.Context, t Taxon) (Lineage, error) {
	r.mu.RLock()
	lin, ok := r.cache[t]
	r.mu.RUnlock()
	if ok {
		return lin, nil
	}

	v, err, _ := r.flight.Do(string(t), func() (interface{}, error) {
		// A concurrent flight may have populated the cache already.
		r.mu.RLock()
		lin, ok := r.cache[t]
		r.mu.RUnlock()
		if ok {
			return lin, nil
		}

		anc, err := r.svc.Lineage(ctx, t)
		if errors.Is(err, ErrUnknownTaxon) {
			anc = nil
		} else if err != nil {
			return nil, err
		}

		lin = Lineage(anc)
		r.mu.Lock()
		r.cache[t] = lin
		r.mu.Unlock()
		return lin, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Lineage), nil
}

// CachedLineages reports how many distinct taxa have been resolved so far.
func (r *Resolver) CachedLineages() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}
