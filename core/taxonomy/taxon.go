// core/taxonomy/taxon.go
package taxonomy

// Taxon identifies a node in an external taxonomic hierarchy. It carries no
// internal structure; identity and the ancestor relation are all that is
// assumed.
type Taxon string

// Lineage is a taxon's ordered ancestor chain, nearest ancestor first,
// ending toward the root. An empty lineage means no ancestors are known.
type Lineage []Taxon

// Contains reports whether t appears anywhere in the lineage.
func (l Lineage) Contains(t Taxon) bool {
	for _, a := range l {
		if a == t {
			return true
		}
	}
	return false
}
