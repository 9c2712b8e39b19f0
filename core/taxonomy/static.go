// core/taxonomy/static.go
package taxonomy

import (
	"context"
	"fmt"
)

// Static is an in-memory Service backed by a child→parent table. A root is a
// taxon whose parent entry is the empty string. Taxa absent from the table
// are unknown.
type Static struct {
	parent map[Taxon]Taxon
}

// NewStatic builds a Static service from a child→parent map. The map is used
// as-is; callers must not mutate it afterwards.
func NewStatic(parent map[Taxon]Taxon) *Static {
	return &Static{parent: parent}
}

// Lineage walks the parent chain from t to the root.
func (s *Static) Lineage(_ context.Context, t Taxon) ([]Taxon, error) {
	if _, ok := s.parent[t]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTaxon, t)
	}
	var out []Taxon
	seen := map[Taxon]struct{}{t: {}}
	for cur := t; ; {
		p, ok := s.parent[cur]
		if !ok || p == "" {
			return out, nil
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("taxonomy: parent cycle through %q", p)
		}
		seen[p] = struct{}{}
		out = append(out, p)
		cur = p
	}
}

// Len reports the number of taxa in the table.
func (s *Static) Len() int { return len(s.parent) }
