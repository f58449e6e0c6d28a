//go:build !deko_no_zlib

package deko

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

func init() {
	registerCodec(Zlib, &codec{
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return zlib.NewReader(r)
		},
		newWriter: func(w io.Writer, level Level) (io.WriteCloser, error) {
			return zlib.NewWriterLevel(w, level.zlib())
		},
	})
}

func (l Level) zlib() int {
	switch l {
	case LevelDefault:
		return zlib.DefaultCompression
	case LevelFastest:
		return zlib.BestSpeed
	case LevelBest:
		return zlib.BestCompression
	default:
		return int(l)
	}
}
