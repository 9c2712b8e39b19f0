// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"taxfilter/internal/output"
)

// Options tweak a writer's behavior where the format supports it.
type Options struct {
	Header bool // text/TSV column header
}

// StartFunc starts one writer goroutine and returns its input channel plus a
// one-shot error channel resolved after the channel is closed and drained.
type StartFunc func(out io.Writer, opt Options, bufSize int) (chan<- output.Record, <-chan error)

var registry = map[string]StartFunc{}

// Register installs a format handler (last registration wins).
func Register(format string, fn StartFunc) { registry[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Start dispatches to the registered handler for format.
func Start(format string, out io.Writer, opt Options, bufSize int) (chan<- output.Record, <-chan error, error) {
	fn, ok := registry[format]
	if !ok {
		return nil, nil, fmt.Errorf("unknown output format %q (have %v)", format, Formats())
	}
	in, errCh := fn(out, opt, bufSize)
	return in, errCh, nil
}
