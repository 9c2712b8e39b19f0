// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"taxfilter-core/taxonomy"
	"taxfilter/pkg/api"
)

// ToAPIResult converts a Record to the stable v1 wire shape.
func ToAPIResult(r Record) api.ResultV1 {
	return api.ResultV1{
		ID:       r.ID,
		Accepted: taxaStrings(r.Accepted),
		Rejected: taxaStrings(r.Rejected),
		Seq:      r.Seq,
	}
}

func taxaStrings(ts []taxonomy.Taxon) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}

// WriteJSON writes all records as a single indented JSON array.
func WriteJSON(w io.Writer, rs []Record) error {
	out := make([]api.ResultV1, len(rs))
	for i, r := range rs {
		out[i] = ToAPIResult(r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
