//go:build !deko_no_bzip2

package deko

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

func init() {
	registerCodec(Bzip2, &codec{
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return bzip2.NewReader(r, nil)
		},
		newWriter: func(w io.Writer, level Level) (io.WriteCloser, error) {
			return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level.bzip2()})
		},
	})
}

func (l Level) bzip2() int {
	switch l {
	case LevelDefault:
		return bzip2.DefaultCompression
	case LevelFastest:
		return bzip2.BestSpeed
	case LevelBest:
		return bzip2.BestCompression
	default:
		return int(l)
	}
}
