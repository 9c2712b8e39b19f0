// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"
)

// StreamText writes records as TSV rows as they arrive.
func StreamText(w io.Writer, in <-chan Record, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TextHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(bw, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
