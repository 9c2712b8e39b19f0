// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"taxfilter-core/filter"
	"taxfilter-core/taxonomy"
)

// Record is one filtered assignment ready for writing, with the original
// sequence attached when the run was given FASTA input.
type Record struct {
	filter.Result
	Seq string
}

// TextHeader is the column line for text/TSV output.
const TextHeader = "id\taccepted\trejected"

// TaxaCSV joins taxa with commas; empty set renders as "-" so columns stay
// visibly populated under cut/awk.
func TaxaCSV(ts []taxonomy.Taxon) string {
	if len(ts) == 0 {
		return "-"
	}
	ss := make([]string, len(ts))
	for i, t := range ts {
		ss[i] = string(t)
	}
	return strings.Join(ss, ",")
}

// FormatRowTSV returns the three base columns (no trailing newline).
func FormatRowTSV(r Record) string {
	return fmt.Sprintf("%s\t%s\t%s", r.ID, TaxaCSV(r.Accepted), TaxaCSV(r.Rejected))
}
