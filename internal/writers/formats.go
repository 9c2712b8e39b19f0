// internal/writers/formats.go
package writers

import (
	"encoding/json"
	"io"

	"taxfilter/internal/jsonlutil"
	"taxfilter/internal/output"
)

func init() {
	Register("text", startText)
	Register("json", startJSON)
	Register("jsonl", startJSONL)
	Register("fasta", startFASTA)
}

func startText(out io.Writer, opt Options, bufSize int) (chan<- output.Record, <-chan error) {
	in, errCh := startStream(bufSize)
	go func(in <-chan output.Record, errCh chan<- error) {
		errCh <- suppressPipe(output.StreamText(out, in, opt.Header))
	}(in, errCh)
	return in, errCh
}

func startJSON(out io.Writer, _ Options, bufSize int) (chan<- output.Record, <-chan error) {
	in, errCh := startStream(bufSize)
	go func(in <-chan output.Record, errCh chan<- error) {
		var buf []output.Record
		for r := range in {
			buf = append(buf, r)
		}
		errCh <- suppressPipe(output.WriteJSON(out, buf))
	}(in, errCh)
	return in, errCh
}

func startJSONL(out io.Writer, _ Options, bufSize int) (chan<- output.Record, <-chan error) {
	return jsonlutil.Start[output.Record](out, bufSize,
		func(enc *json.Encoder, r output.Record) error {
			return enc.Encode(output.ToAPIResult(r))
		},
		IsBrokenPipe,
	)
}

func startFASTA(out io.Writer, _ Options, bufSize int) (chan<- output.Record, <-chan error) {
	in, errCh := startStream(bufSize)
	go func(in <-chan output.Record, errCh chan<- error) {
		errCh <- suppressPipe(output.StreamFASTA(out, in))
	}(in, errCh)
	return in, errCh
}

func startStream(bufSize int) (chan output.Record, chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	return make(chan output.Record, bufSize), make(chan error, 1)
}

func suppressPipe(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
