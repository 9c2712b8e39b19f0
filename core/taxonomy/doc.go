// Package taxonomy models taxa as opaque identifiers in an external
// hierarchical taxonomy, and resolves their ancestor chains through a
// pluggable Service.
//
// The only contract to implement is Service (Lineage). Resolver wraps any
// Service with a per-run memoizing cache so each distinct taxon costs at
// most one upstream lookup.
package taxonomy
