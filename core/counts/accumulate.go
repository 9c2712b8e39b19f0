// core/counts/accumulate.go
package counts

import (
	"context"
	"fmt"
	"sort"

	"taxfilter-core/taxonomy"
)

// TaxonCount is a taxon's cumulative occurrence count within one cluster,
// together with its own lineage for later ancestry checks.
type TaxonCount struct {
	Count   int
	Lineage taxonomy.Lineage
}

// Counts maps every taxon seen in a cluster's candidate multiset, or in any
// of its lineages, to its cumulative count. Built fresh per cluster; never
// shared across clusters.
type Counts map[taxonomy.Taxon]TaxonCount

// Accumulate computes cumulative counts for a multiset of candidate taxa.
// Each taxon's direct occurrence count is pushed up along its own lineage,
// accumulating at every ancestor. A taxon with no resolvable ancestors still
// gets its direct count recorded, with an empty lineage; it contributes
// nothing further up.
//
// Distinct taxa are resolved in sorted order so the sequence of upstream
// lookups is reproducible. The first resolver fault aborts the accumulation.
func Accumulate(ctx context.Context, taxa []taxonomy.Taxon, res *taxonomy.Resolver) (Counts, error) {
	direct := make(map[taxonomy.Taxon]int, len(taxa))
	for _, t := range taxa {
		direct[t]++
	}

	distinct := make([]taxonomy.Taxon, 0, len(direct))
	for t := range direct {
		distinct = append(distinct, t)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	out := make(Counts, 2*len(direct))
	for _, t := range distinct {
		lin, err := res.LineageOf(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("accumulate: resolve %q: %w", t, err)
		}
		n := direct[t]

		tc := out[t]
		tc.Count += n
		tc.Lineage = lin
		out[t] = tc

		// Ancestor at index i sees the remainder of the chain as its own
		// lineage; every descendant yields the same suffix.
		for i, anc := range lin {
			ac := out[anc]
			ac.Count += n
			if ac.Lineage == nil {
				ac.Lineage = lin[i+1:]
			}
			out[anc] = ac
		}
	}
	return out, nil
}
