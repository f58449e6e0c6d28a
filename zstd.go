//go:build !deko_no_zstd

package deko

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func init() {
	registerCodec(Zstd, &codec{
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			dec, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return dec.IOReadCloser(), nil
		},
		newWriter: func(w io.Writer, level Level) (io.WriteCloser, error) {
			return zstd.NewWriter(w, zstd.WithEncoderLevel(level.zstd()))
		},
	})
}

func (l Level) zstd() zstd.EncoderLevel {
	switch l {
	case LevelDefault:
		return zstd.SpeedDefault
	case LevelFastest:
		return zstd.SpeedFastest
	case LevelBest:
		return zstd.SpeedBestCompression
	default:
		return zstd.EncoderLevelFromZstd(int(l))
	}
}
