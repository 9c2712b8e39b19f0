// Package filter decides which of a cluster's candidate taxonomic
// assignments are consistent with the rest of the cluster.
//
// Per cluster it rolls candidate occurrences up the taxonomy (counts
// package), accepts each candidate whose comparison ancestor carries a large
// enough share of the cluster's total, then rescues rejected taxa that
// descend from an accepted one. Partition is a pure function of its inputs
// plus the lineage resolver it consults.
package filter
