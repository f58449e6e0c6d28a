package deko

import (
	"fmt"
	"io"
)

// magicReader is a fixed-capacity reservoir over the underlying source. The
// leading bytes consumed for detection are replayed, in order, before any
// fresh read reaches the source, so no byte is lost or duplicated.
type magicReader struct {
	r           io.Reader
	buf         [maxMagicLen]byte
	first, last int
}

func newMagicReader(r io.Reader) *magicReader {
	return &magicReader{r: r}
}

// readMagic fills the reservoir until it holds maxMagicLen bytes or the
// source is exhausted, and returns the bytes read so far. It never blocks
// waiting for bytes that cannot arrive: EOF short of a full reservoir still
// yields a definitive result.
func (mr *magicReader) readMagic() ([]byte, error) {
	n, err := io.ReadFull(mr.r, mr.buf[mr.last:])
	mr.last += n
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	return mr.buf[:mr.last], err
}

func (mr *magicReader) Read(p []byte) (int, error) {
	if mr.first < mr.last {
		n := copy(p, mr.buf[mr.first:mr.last])
		mr.first += n
		return n, nil
	}
	return mr.r.Read(p)
}

// A Reader decompresses the supplied input stream using any of the supported
// formats.
//
// The format is detected lazily from the magic bytes at the start of the
// stream, on the first call to Read or Format. Once detected it is fixed for
// the lifetime of the Reader; bytes resembling another format's signature
// later in the stream are ordinary payload. By default a stream matching no
// known signature is read verbatim; use FailOnUnknownFormat to change that.
type Reader struct {
	mr            *magicReader
	dec           io.ReadCloser
	format        Format
	pinned        bool
	failOnUnknown bool
	closed        bool
}

// NewReader creates a Reader that detects the compression format of r from
// its leading bytes. No data is read from r until the first call to Read or
// Format.
func NewReader(r io.Reader) *Reader {
	return &Reader{mr: newMagicReader(r)}
}

// NewReaderFormat creates a Reader that decompresses r using the given
// format without any detection. This is the only way to decompress brotli,
// which has no magic bytes.
func NewReaderFormat(r io.Reader, f Format) *Reader {
	return &Reader{mr: newMagicReader(r), format: f, pinned: true}
}

// FailOnUnknownFormat makes Read and Format return ErrUnknownFormat when
// detection matches no known signature, instead of reading the stream
// verbatim. It has no effect once the format has been detected.
func (r *Reader) FailOnUnknownFormat(fail bool) {
	r.failOnUnknown = fail
}

func (r *Reader) detect() error {
	if r.dec != nil {
		return nil
	}
	if !r.pinned {
		magic, err := r.mr.readMagic()
		if err != nil {
			return err
		}
		r.format = Detect(magic)
		if r.format == Verbatim && r.failOnUnknown {
			return ErrUnknownFormat
		}
	}
	c, ok := codecs[r.format]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, r.format)
	}
	dec, err := c.newReader(r.mr)
	if err != nil {
		return err
	}
	r.dec = dec
	return nil
}

// Read implements io.Reader. The first call triggers format detection. At
// the end of the stream Read returns io.EOF and keeps doing so on subsequent
// calls.
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, ErrReaderClosed
	}
	if err := r.detect(); err != nil {
		return 0, err
	}
	return r.dec.Read(p)
}

// Format returns the detected format of the input stream. If nothing has
// been read yet, a small amount of data is read from the source to perform
// the detection; once detected the stored result is returned.
func (r *Reader) Format() (Format, error) {
	if r.closed {
		return Verbatim, ErrReaderClosed
	}
	if err := r.detect(); err != nil {
		return Verbatim, err
	}
	return r.format, nil
}

// Close releases the codec. It does not close the underlying source. Reads
// after Close and a second Close return ErrReaderClosed.
func (r *Reader) Close() error {
	if r.closed {
		return ErrReaderClosed
	}
	r.closed = true
	if r.dec != nil {
		return r.dec.Close()
	}
	return nil
}
