// internal/taxapi/dump.go
package taxapi

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"taxfilter-core/taxonomy"
	"taxfilter/internal/common"
)

// ReadDump parses a flat taxonomy dump from r into an in-memory service:
// one `child<TAB>parent` pair per line. A line with no parent column (or an
// empty one) declares a root. Blank lines and '#' comments are skipped.
func ReadDump(r io.Reader) (*taxonomy.Static, error) {
	parent := make(map[taxonomy.Taxon]taxonomy.Taxon)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		child, par, _ := strings.Cut(line, "\t")
		child = strings.TrimSpace(child)
		par = strings.TrimSpace(par)
		if child == "" {
			return nil, fmt.Errorf("taxonomy dump line %d: empty child", lineNo)
		}
		parent[taxonomy.Taxon(child)] = taxonomy.Taxon(par)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return taxonomy.NewStatic(parent), nil
}

// ReadDumpFile is ReadDump over a path (gzip and "-" ok).
func ReadDumpFile(path string) (*taxonomy.Static, error) {
	rc, err := common.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	svc, err := ReadDump(rc)
	if err != nil {
		return nil, fmt.Errorf("taxonomy dump %s: %w", path, err)
	}
	return svc, nil
}
