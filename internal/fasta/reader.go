// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"taxfilter/internal/common"
)

// ReadAll parses FASTA from r into an ID→sequence map. The record ID is the
// first whitespace-delimited word after '>'. Clusters, not sequence windows,
// are the unit of work downstream, so records are kept whole.
func ReadAll(r io.Reader) (map[string]string, error) {
	sc := bufio.NewScanner(r)
	// Allow very long single-line sequences.
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	seqs := make(map[string]string)
	var (
		id  string
		seq strings.Builder
	)
	flush := func() {
		if id != "" {
			seqs[id] = seq.String()
		}
		seq.Reset()
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			id = headerID(line[1:])
			continue
		}
		if id == "" {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return seqs, nil
}

// ReadFiles merges the records of several FASTA files (gzip and "-" ok).
// A later file wins on duplicate IDs.
func ReadFiles(paths []string) (map[string]string, error) {
	seqs := make(map[string]string)
	for _, p := range paths {
		rc, err := common.OpenReader(p)
		if err != nil {
			return nil, err
		}
		m, err := ReadAll(rc)
		cerr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("fasta %s: %w", p, err)
		}
		if cerr != nil {
			return nil, cerr
		}
		for k, v := range m {
			seqs[k] = v
		}
	}
	return seqs, nil
}

func headerID(h string) string {
	if i := strings.IndexAny(h, " \t"); i >= 0 {
		return h[:i]
	}
	return h
}
