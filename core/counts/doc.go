// Package counts rolls a cluster's candidate-taxa multiset up the taxonomy:
// every taxon accumulates its own occurrences plus those of all descendants
// present in the same multiset.
package counts
