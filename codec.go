package deko

import (
	"io"
	"sort"
)

// codec is the uniform surface the Reader and Writer dispatch through. Each
// enabled format registers one from its init function; a format missing from
// the registry was excluded at build time.
type codec struct {
	newReader func(io.Reader) (io.ReadCloser, error)
	newWriter func(io.Writer, Level) (io.WriteCloser, error)
}

var codecs = map[Format]*codec{}

func registerCodec(f Format, c *codec) {
	codecs[f] = c
}

func init() {
	// The verbatim passthrough is always available.
	registerCodec(Verbatim, &codec{
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
		newWriter: func(w io.Writer, _ Level) (io.WriteCloser, error) {
			return nopWriteCloser{w}, nil
		},
	})
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Supported reports whether the format's codec is compiled into this build.
func Supported(f Format) bool {
	_, ok := codecs[f]
	return ok
}

// Formats returns all formats compiled into this build, in ascending order.
func Formats() []Format {
	fs := make([]Format, 0, len(codecs))
	for f := range codecs {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	return fs
}
