// Package writers starts per-format writer goroutines for filtered-result
// records. Formats self-register in init(), so adding one means adding a
// file, not editing a switch.
package writers
