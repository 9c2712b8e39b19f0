// internal/output/fasta.go
package output

import (
	"bufio"
	"fmt"
	"io"
)

// StreamFASTA writes one FASTA record per result that still has at least one
// accepted taxon and a known sequence; fully rejected or sequence-less
// results are dropped. Accepted taxa ride along in the header so downstream
// database builders keep the surviving assignments.
func StreamFASTA(w io.Writer, in <-chan Record) error {
	bw := bufio.NewWriter(w)
	for r := range in {
		if len(r.Accepted) == 0 || r.Seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(bw, ">%s taxa=%s\n", r.ID, TaxaCSV(r.Accepted)); err != nil {
			return err
		}
		if err := writeWrapped(bw, r.Seq, 80); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeWrapped(w io.Writer, seq string, width int) error {
	for len(seq) > width {
		if _, err := fmt.Fprintln(w, seq[:width]); err != nil {
			return err
		}
		seq = seq[width:]
	}
	_, err := fmt.Fprintln(w, seq)
	return err
}
