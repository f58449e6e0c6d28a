package deko

import (
	"fmt"
	"io"
)

// Level selects how hard a codec tries to compress. Zero is each codec's
// default; positive values are passed through on the codec's own numeric
// scale (gzip 1-9, zstd 1-22, brotli 0-11, lz4 1-9, bzip2 1-9). Xz and
// snappy have no levels and ignore it.
type Level int

const (
	LevelDefault Level = 0
	LevelFastest Level = -1
	LevelBest    Level = -2
)

// A Writer compresses data into the chosen format and writes it to an
// underlying sink. The format is fixed at construction; there is no
// detection on the write side.
type Writer struct {
	dst    io.Writer
	enc    io.WriteCloser
	format Format
	closed bool
}

// NewWriter creates a Writer that compresses into w using the given format
// at its default level. It returns ErrUnsupportedFormat if the format's
// codec is not compiled into this build.
func NewWriter(w io.Writer, f Format) (*Writer, error) {
	return NewWriterLevel(w, f, LevelDefault)
}

// NewWriterLevel is like NewWriter with an explicit compression level.
func NewWriterLevel(w io.Writer, f Format, level Level) (*Writer, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	enc, err := c.newWriter(w, level)
	if err != nil {
		return nil, err
	}
	return &Writer{dst: w, enc: enc, format: f}, nil
}

// Format returns the format the Writer compresses into.
func (w *Writer) Format() Format {
	return w.format
}

// Write implements io.Writer. The codec may buffer data internally before
// emitting output to the sink.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	return w.enc.Write(p)
}

// Flush forces internally buffered data out to the sink so that everything
// written so far can be decompressed by a reader. Flushing mid-stream may
// reduce the compression ratio. Codecs without a flush primitive (xz,
// bzip2) treat it as a no-op.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrWriterClosed
	}
	if f, ok := w.enc.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Finish ends the compressed stream, writing any trailing framing and
// checksums the format requires, and returns the underlying sink. The sink
// itself is not closed. A second call returns ErrWriterClosed without
// emitting anything.
func (w *Writer) Finish() (io.Writer, error) {
	if w.closed {
		return nil, ErrWriterClosed
	}
	w.closed = true
	if err := w.enc.Close(); err != nil {
		return nil, err
	}
	return w.dst, nil
}

// Close is Finish for callers that only need an io.WriteCloser.
func (w *Writer) Close() error {
	_, err := w.Finish()
	return err
}
