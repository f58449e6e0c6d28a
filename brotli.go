//go:build !deko_no_brotli

package deko

import (
	"io"

	"github.com/andybalholm/brotli"
)

func init() {
	// Brotli streams carry no magic bytes, so this codec is never selected
	// by detection; it is reachable through NewReaderFormat and the Writer.
	registerCodec(Brotli, &codec{
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(brotli.NewReader(r)), nil
		},
		newWriter: func(w io.Writer, level Level) (io.WriteCloser, error) {
			return brotli.NewWriterLevel(w, level.brotli()), nil
		},
	})
}

func (l Level) brotli() int {
	switch l {
	case LevelDefault:
		return brotli.DefaultCompression
	case LevelFastest:
		return brotli.BestSpeed
	case LevelBest:
		return brotli.BestCompression
	default:
		return int(l)
	}
}
