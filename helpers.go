package deko

import (
	"bytes"
	"io"
)

// Compress compresses a byte slice into the given format and level.
func Compress(data []byte, f Format, level Level) ([]byte, error) {
	var buf bytes.Buffer
	w, err := NewWriterLevel(&buf, f, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decompresses a byte slice, detecting its format from the
// leading bytes. Data matching no known signature is returned unchanged.
func Decompress(data []byte) ([]byte, error) {
	r := NewReader(bytes.NewReader(data))
	defer r.Close()
	return io.ReadAll(r)
}

// DecompressFormat decompresses a byte slice using an explicit format,
// skipping detection.
func DecompressFormat(data []byte, f Format) ([]byte, error) {
	r := NewReaderFormat(bytes.NewReader(data), f)
	defer r.Close()
	return io.ReadAll(r)
}
