// core/filter/predicate.go
package filter

import (
	"taxfilter-core/counts"
	"taxfilter-core/taxonomy"
)

// Accept reports whether taxon t is consistent with the cluster-wide counts.
//
// The comparison ancestor is anchored at the ROOT end of t's lineage: with
// the lineage in root-first order, the first AncestryLevel+1 entries are
// discarded and the next one is the comparison ancestor. Its distance from t
// therefore grows with lineage depth; a lineage shorter than AncestryLevel+2
// has no comparison ancestor and t is dropped. t is accepted iff the
// comparison ancestor's cumulative count is at least MinRatio of total.
//
// totalCount == 0 always rejects; there is never a division by zero.
func (c Config) Accept(cs counts.Counts, total int, t taxonomy.Taxon) bool {
	tc, ok := cs[t]
	if !ok {
		return false
	}
	lin := tc.Lineage

	// lin is nearest-first; root-first index AncestryLevel+1 maps to
	// len(lin)-AncestryLevel-2 from the near end.
	if len(lin) < c.AncestryLevel+2 {
		return false
	}
	anc := lin[len(lin)-c.AncestryLevel-2]

	ac, ok := cs[anc]
	if !ok {
		return false
	}
	if total <= 0 {
		return false
	}
	return float64(ac.Count)/float64(total) >= c.MinRatio
}
