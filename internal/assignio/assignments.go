// internal/assignio/assignments.go
package assignio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"taxfilter-core/assign"
	"taxfilter-core/taxonomy"
	"taxfilter/internal/common"
)

// ReadAssignments parses an assignment table from r: one line per sequence
// identifier, `ID<TAB>taxon,taxon,...`. A bare ID (no tab, or an empty taxon
// list) yields an empty candidate set. Blank lines and '#' comments are
// skipped. Duplicate IDs: last line wins.
func ReadAssignments(r io.Reader) (*assign.Map, error) {
	m := assign.NewMap()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, rest, _ := strings.Cut(line, "\t")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("assignments line %d: empty identifier", lineNo)
		}
		var taxa []taxonomy.Taxon
		for _, tok := range strings.Split(rest, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				taxa = append(taxa, taxonomy.Taxon(tok))
			}
		}
		m.Set(id, taxa)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadAssignmentsFile is ReadAssignments over a path (gzip and "-" ok).
func ReadAssignmentsFile(path string) (*assign.Map, error) {
	rc, err := common.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	m, err := ReadAssignments(rc)
	if err != nil {
		return nil, fmt.Errorf("assignments %s: %w", path, err)
	}
	return m, nil
}
