// core/filter/partition.go
package filter

import (
	"context"
	"fmt"
	"sort"

	"taxfilter-core/assign"
	"taxfilter-core/counts"
	"taxfilter-core/taxonomy"
)

// Result is the per-identifier outcome: the candidate set split into
// accepted and rejected taxa. The two sets are disjoint and both sorted.
type Result struct {
	ID       string
	Accepted []taxonomy.Taxon
	Rejected []taxonomy.Taxon
}

// Partitioner applies the consistency decision to whole clusters.
type Partitioner struct {
	cfg Config
	res *taxonomy.Resolver
}

// NewPartitioner returns a Partitioner using cfg and the shared resolver.
func NewPartitioner(cfg Config, res *taxonomy.Resolver) *Partitioner {
	return &Partitioner{cfg: cfg, res: res}
}

// Partition splits every cluster member's candidate taxa into accepted and
// rejected sets. An empty cluster yields no results; a member with no
// candidates yields empty sets. Counts are built fresh from this cluster
// alone; no state crosses cluster boundaries except the resolver's cache.
func (p *Partitioner) Partition(ctx context.Context, cluster assign.Cluster, am *assign.Map) ([]Result, error) {
	if len(cluster) == 0 {
		return nil, nil
	}

	// Cluster-wide candidate multiset: each member contributes its whole
	// set, so a taxon shared by several members is counted once per member.
	var pool []taxonomy.Taxon
	for _, id := range cluster {
		pool = append(pool, am.TaxaOf(id)...)
	}
	total := len(pool)

	cs, err := counts.Accumulate(ctx, pool, p.res)
	if err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}

	out := make([]Result, 0, len(cluster))
	for _, id := range cluster {
		out = append(out, p.partitionOne(id, am.TaxaOf(id), cs, total))
	}
	return out, nil
}

func (p *Partitioner) partitionOne(id string, cand []taxonomy.Taxon, cs counts.Counts, total int) Result {
	accepted := make([]taxonomy.Taxon, 0, len(cand))
	rejected := make([]taxonomy.Taxon, 0, len(cand))
	for _, t := range cand {
		if p.cfg.Accept(cs, total, t) {
			accepted = append(accepted, t)
		} else {
			rejected = append(rejected, t)
		}
	}

	// Rescue pass: a provisionally rejected taxon with an ancestor in the
	// provisional accepted set moves to accepted. One pass, judged against
	// the pre-rescue accepted set only; nothing ever moves the other way.
	if len(accepted) > 0 && len(rejected) > 0 {
		isAccepted := make(map[taxonomy.Taxon]struct{}, len(accepted))
		for _, t := range accepted {
			isAccepted[t] = struct{}{}
		}
		still := rejected[:0]
		for _, t := range rejected {
			if hasAcceptedAncestor(cs[t].Lineage, isAccepted) {
				accepted = append(accepted, t)
			} else {
				still = append(still, t)
			}
		}
		rejected = still
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i] < accepted[j] })
	sort.Slice(rejected, func(i, j int) bool { return rejected[i] < rejected[j] })
	return Result{ID: id, Accepted: accepted, Rejected: rejected}
}

func hasAcceptedAncestor(lin taxonomy.Lineage, accepted map[taxonomy.Taxon]struct{}) bool {
	for _, anc := range lin {
		if _, ok := accepted[anc]; ok {
			return true
		}
	}
	return false
}
