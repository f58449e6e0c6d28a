//go:build !deko_no_lz4

package deko

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

func init() {
	registerCodec(Lz4, &codec{
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		},
		newWriter: func(w io.Writer, level Level) (io.WriteCloser, error) {
			lw := lz4.NewWriter(w)
			if err := lw.Apply(lz4.CompressionLevelOption(level.lz4())); err != nil {
				return nil, err
			}
			return lw, nil
		},
	})
}

var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast,
	lz4.Level1,
	lz4.Level2,
	lz4.Level3,
	lz4.Level4,
	lz4.Level5,
	lz4.Level6,
	lz4.Level7,
	lz4.Level8,
	lz4.Level9,
}

func (l Level) lz4() lz4.CompressionLevel {
	switch {
	case l == LevelBest:
		return lz4.Level9
	case l >= 1 && int(l) < len(lz4Levels):
		return lz4Levels[l]
	default:
		// lz4's fast path is also its default.
		return lz4.Fast
	}
}
