package deko

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"strings"
)

// Format identifies a compression format.
type Format int

const (
	// Verbatim means no compression; data is passed through unchanged.
	Verbatim Format = iota
	Gzip
	Zlib
	Bzip2
	Xz
	Zstd
	Lz4
	Snappy
	Brotli
)

func (f Format) String() string {
	switch f {
	case Verbatim:
		return "verbatim"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	case Bzip2:
		return "bzip2"
	case Xz:
		return "xz"
	case Zstd:
		return "zstd"
	case Lz4:
		return "lz4"
	case Snappy:
		return "snappy"
	case Brotli:
		return "brotli"
	default:
		return "unknown"
	}
}

// maxMagicLen is the longest signature in the table (snappy's framed stream
// identifier). Detection never reads further than this into the stream.
const maxMagicLen = 10

const (
	zstdSkippableMagic = 0x184D2A50
	zstdSkippableMask  = 0xFFFFFFF0
)

type signature struct {
	format Format
	magic  []byte
	match  func([]byte) bool // set for formats that need more than a prefix check
}

// The table is ordered by descending signature length so that a short magic
// can never shadow a longer one occupying the same leading bytes.
var signatures = []signature{
	// https://github.com/google/snappy/blob/main/framing_format.txt
	{format: Snappy, magic: []byte{0xff, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}},
	// https://tukaani.org/xz/xz-file-format-1.0.4.txt
	{format: Xz, magic: []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}},
	// RFC8878, Zstandard frame
	{format: Zstd, magic: []byte{0x28, 0xb5, 0x2f, 0xfd}},
	// RFC8878, skippable frame (magic 0x184D2A50 through 0x184D2A5F)
	{format: Zstd, match: matchZstdSkippable},
	// https://github.com/lz4/lz4/blob/dev/doc/lz4_Frame_format.md
	{format: Lz4, magic: []byte{0x04, 0x22, 0x4d, 0x18}},
	// https://en.wikipedia.org/wiki/Bzip2
	{format: Bzip2, magic: []byte{'B', 'Z', 'h'}},
	// RFC1952
	{format: Gzip, magic: []byte{0x1f, 0x8b}},
	// RFC1950
	{format: Zlib, match: matchZlib},
}

// Detect classifies buf by its leading bytes and returns the matching
// format, or Verbatim if no full signature matches. A signature longer than
// buf never matches; in particular short or empty input classifies as
// Verbatim. Detect reads at most the first maxMagicLen bytes of buf.
func Detect(buf []byte) Format {
	for _, sig := range signatures {
		if sig.match != nil {
			if sig.match(buf) {
				return sig.format
			}
			continue
		}
		if len(buf) >= len(sig.magic) && bytes.Equal(buf[:len(sig.magic)], sig.magic) {
			return sig.format
		}
	}
	return Verbatim
}

func matchZstdSkippable(buf []byte) bool {
	if len(buf) < 4 {
		return false
	}
	return binary.LittleEndian.Uint32(buf[:4])&zstdSkippableMask == zstdSkippableMagic
}

// matchZlib checks the RFC1950 two-byte header: compression method 8
// (deflate), a window size of at most 32K and a valid header checksum.
func matchZlib(buf []byte) bool {
	if len(buf) < 2 {
		return false
	}
	cmf, flg := buf[0], buf[1]
	if cmf&0x0f != 8 || cmf>>4 > 7 {
		return false
	}
	return (uint32(cmf)*256+uint32(flg))%31 == 0
}

// Extension mapping
var extensionMap = map[Format]string{
	Gzip:   ".gz",
	Zlib:   ".zz",
	Bzip2:  ".bz2",
	Xz:     ".xz",
	Zstd:   ".zst",
	Lz4:    ".lz4",
	Snappy: ".sz",
	Brotli: ".br",
}

// Reverse extension mapping (extension -> format)
var reverseExtensionMap = map[string]Format{
	".gz":     Gzip,
	".gzip":   Gzip,
	".zz":     Zlib,
	".bz2":    Bzip2,
	".xz":     Xz,
	".zst":    Zstd,
	".zstd":   Zstd,
	".lz4":    Lz4,
	".sz":     Snappy,
	".snappy": Snappy,
	".br":     Brotli,
}

// Extension returns the conventional file extension for the format, or the
// empty string for Verbatim.
func (f Format) Extension() string {
	return extensionMap[f]
}

// FormatFromExtension guesses the format from a file name extension.
func FormatFromExtension(name string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	f, ok := reverseExtensionMap[ext]
	return f, ok
}
