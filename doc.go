// Package deko provides streaming readers and writers for compressed data
// whose format is detected automatically from its magic bytes.
//
// On the read side the format does not need to be known in advance: a Reader
// peeks at the leading bytes of the stream, classifies them against a table
// of known signatures and transparently decompresses with the matching codec.
// Streams that match no known signature are passed through verbatim. On the
// write side the format is chosen explicitly when the Writer is constructed.
//
// # Supported Formats
//
//   - gzip, zlib (github.com/klauspost/compress)
//   - bzip2 (github.com/dsnet/compress)
//   - xz (github.com/ulikunitz/xz)
//   - zstd (github.com/klauspost/compress)
//   - lz4 (github.com/pierrec/lz4)
//   - snappy, framed (github.com/golang/snappy)
//   - brotli, write and explicit-format read only (github.com/andybalholm/brotli)
//
// Brotli carries no magic bytes and therefore never participates in
// detection; use NewReaderFormat to decompress it.
//
// Each codec can be excluded from the build with a deko_no_<format> build
// tag, e.g. "-tags deko_no_zstd". Detection still recognizes the signature
// of an excluded codec, and reading such a stream fails with
// ErrUnsupportedFormat instead of silently falling back to verbatim.
//
// # Quick Start
//
//	// Compress with an explicit format.
//	var buf bytes.Buffer
//	w, _ := deko.NewWriter(&buf, deko.Gzip)
//	w.Write([]byte("Hello, world!"))
//	w.Close()
//
//	// Decompress without knowing the format.
//	r := deko.NewReader(&buf)
//	data, _ := io.ReadAll(r)
//
// A Reader or Writer exclusively owns its codec and, transitively, the
// underlying source or sink. Instances are not safe for concurrent use;
// construct independent instances over independent streams instead.
package deko
