// internal/assignio/clusters.go
package assignio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"taxfilter-core/assign"
	"taxfilter/internal/common"
)

// ReadClusters parses a cluster listing from r: one cluster per line, member
// identifiers whitespace-separated, order preserved. Blank lines and '#'
// comments are skipped; a run keeps clusters in file order.
func ReadClusters(r io.Reader) ([]assign.Cluster, error) {
	var out []assign.Cluster
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, assign.Cluster(strings.Fields(line)))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadClustersFile is ReadClusters over a path (gzip and "-" ok).
func ReadClustersFile(path string) ([]assign.Cluster, error) {
	rc, err := common.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	cs, err := ReadClusters(rc)
	if err != nil {
		return nil, fmt.Errorf("clusters %s: %w", path, err)
	}
	return cs, nil
}
