// internal/writers/writers_test.go
package writers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"taxfilter-core/filter"
	"taxfilter-core/taxonomy"
	"taxfilter/internal/output"
)

func record(id string, acc, rej []taxonomy.Taxon) output.Record {
	return output.Record{Result: filter.Result{ID: id, Accepted: acc, Rejected: rej}}
}

func runWriter(t *testing.T, format string, opt Options, rs []output.Record) string {
	t.Helper()
	var buf bytes.Buffer
	in, errCh, err := Start(format, &buf, opt, 4)
	require.NoError(t, err)
	for _, r := range rs {
		in <- r
	}
	close(in)
	require.NoError(t, <-errCh)
	return buf.String()
}

func TestStartText(t *testing.T) {
	got := runWriter(t, "text", Options{Header: true}, []output.Record{
		record("s1", []taxonomy.Taxon{"a"}, nil),
		record("s2", nil, []taxonomy.Taxon{"b"}),
	})
	require.Equal(t, "id\taccepted\trejected\ns1\ta\t-\ns2\t-\tb\n", got)
}

func TestStartJSONL(t *testing.T) {
	got := runWriter(t, "jsonl", Options{}, []output.Record{
		record("s1", []taxonomy.Taxon{"a"}, nil),
		record("s2", nil, nil),
	})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	require.JSONEq(t, `{"id":"s1","accepted":["a"],"rejected":[]}`, lines[0])
	require.JSONEq(t, `{"id":"s2","accepted":[],"rejected":[]}`, lines[1])
}

func TestStartUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	_, _, err := Start("yaml", &buf, Options{}, 4)
	require.Error(t, err)
}

func TestFormatsRegistered(t *testing.T) {
	require.Equal(t, []string{"fasta", "json", "jsonl", "text"}, Formats())
}
