// Package pipeline fans clusters out to a bounded worker pool, partitions
// each one independently, and streams the per-identifier results back to a
// visit callback in input cluster order.
//
// Clusters share no mutable state beyond the resolver's lineage cache, so
// worker count only affects throughput, never output.
package pipeline
