// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for filtered assignments.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	ID       string   `json:"id"`
	Accepted []string `json:"accepted"`
	Rejected []string `json:"rejected"`
	Seq      string   `json:"seq,omitempty"`
}
