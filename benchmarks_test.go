package deko

import (
	"bytes"
	"io"
	"testing"
)

// generateTestData returns semi-compressible data (mix of patterns and noise).
func generateTestData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		if i%4 == 0 {
			data[i] = byte(i % 256)
		} else {
			data[i] = byte(i % 64)
		}
	}
	return data
}

// generateIncompressibleData returns pseudo-random data (hard to compress).
func generateIncompressibleData(size int) []byte {
	data := make([]byte, size)
	seed := uint64(12345)
	for i := range data {
		seed = seed*1103515245 + 12345
		data[i] = byte(seed >> 16)
	}
	return data
}

func benchmarkWrite(b *testing.B, f Format, size int) {
	data := generateTestData(size)

	b.ResetTimer()
	b.SetBytes(int64(size))
	for i := 0; i < b.N; i++ {
		w, err := NewWriter(io.Discard, f)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			b.Fatal(err)
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkRead(b *testing.B, f Format, size int) {
	compressed, err := Compress(generateTestData(size), f, LevelDefault)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.SetBytes(int64(size))
	for i := 0; i < b.N; i++ {
		r := NewReader(bytes.NewReader(compressed))
		if _, err := io.Copy(io.Discard, r); err != nil {
			b.Fatal(err)
		}
		if err := r.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWrite(b *testing.B) {
	for _, f := range []Format{Verbatim, Gzip, Zlib, Bzip2, Xz, Zstd, Lz4, Snappy, Brotli} {
		b.Run(f.String(), func(b *testing.B) {
			benchmarkWrite(b, f, 64*1024)
		})
	}
}

func BenchmarkRead(b *testing.B) {
	for _, f := range []Format{Verbatim, Gzip, Zlib, Bzip2, Xz, Zstd, Lz4, Snappy} {
		b.Run(f.String(), func(b *testing.B) {
			benchmarkRead(b, f, 64*1024)
		})
	}
}

func BenchmarkDetect(b *testing.B) {
	compressed, err := Compress(generateTestData(1024), Zstd, LevelDefault)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if Detect(compressed) != Zstd {
			b.Fatal("wrong format")
		}
	}
}
