//go:build !deko_no_xz

package deko

import (
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	// xz has no compression levels; the level is ignored.
	registerCodec(Xz, &codec{
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			xr, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(xr), nil
		},
		newWriter: func(w io.Writer, _ Level) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		},
	})
}
