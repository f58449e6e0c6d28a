//go:build !deko_no_snappy

package deko

import (
	"io"

	"github.com/golang/snappy"
)

func init() {
	// The framed snappy format; snappy has no compression levels.
	registerCodec(Snappy, &codec{
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(snappy.NewReader(r)), nil
		},
		newWriter: func(w io.Writer, _ Level) (io.WriteCloser, error) {
			return snappy.NewBufferedWriter(w), nil
		},
	})
}
