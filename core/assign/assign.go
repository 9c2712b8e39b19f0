// core/assign/assign.go
package assign

import (
	"sort"

	"taxfilter-core/taxonomy"
)

// Cluster is an ordered group of sequence identifiers treated as equivalent
// by an upstream clustering step.
type Cluster []string

// Map holds each sequence identifier's candidate taxon set. Lookups are
// total: an identifier that was never assigned anything yields an empty set,
// not an error. Read-only once built.
type Map struct {
	taxa map[string][]taxonomy.Taxon
}

// NewMap returns an empty assignment map.
func NewMap() *Map {
	return &Map{taxa: make(map[string][]taxonomy.Taxon)}
}

// Set records id's candidate taxa, replacing any previous entry. The set is
// deduplicated and stored sorted so iteration order is reproducible.
func (m *Map) Set(id string, taxa []taxonomy.Taxon) {
	seen := make(map[taxonomy.Taxon]struct{}, len(taxa))
	out := make([]taxonomy.Taxon, 0, len(taxa))
	for _, t := range taxa {
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	m.taxa[id] = out
}

// TaxaOf returns id's candidate taxa in sorted order, or an empty slice for
// an unknown id. Callers must not mutate the result.
func (m *Map) TaxaOf(id string) []taxonomy.Taxon {
	return m.taxa[id]
}

// Len reports how many identifiers have an entry.
func (m *Map) Len() int { return len(m.taxa) }
