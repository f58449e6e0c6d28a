//go:build !deko_no_gzip

package deko

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func init() {
	registerCodec(Gzip, &codec{
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		},
		newWriter: func(w io.Writer, level Level) (io.WriteCloser, error) {
			return gzip.NewWriterLevel(w, level.gzip())
		},
	})
}

func (l Level) gzip() int {
	switch l {
	case LevelDefault:
		return gzip.DefaultCompression
	case LevelFastest:
		return gzip.BestSpeed
	case LevelBest:
		return gzip.BestCompression
	default:
		return int(l)
	}
}
