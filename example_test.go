package deko_test

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/igankevich/deko"
)

func Example() {
	// Compress with an explicitly chosen format.
	var buf bytes.Buffer
	w, err := deko.NewWriter(&buf, deko.Gzip)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := w.Write([]byte("Hello, compressed world!")); err != nil {
		log.Fatal(err)
	}
	if err := w.Close(); err != nil {
		log.Fatal(err)
	}

	// Decompress without knowing the format in advance.
	r := deko.NewReader(&buf)
	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(data))
	// Output: Hello, compressed world!
}

func ExampleReader_Format() {
	compressed, err := deko.Compress([]byte("some data"), deko.Zstd, deko.LevelDefault)
	if err != nil {
		log.Fatal(err)
	}

	r := deko.NewReader(bytes.NewReader(compressed))
	format, err := r.Format()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(format)
	// Output: zstd
}

func ExampleDetect() {
	fmt.Println(deko.Detect([]byte{0x1f, 0x8b, 0x08, 0x00}))
	fmt.Println(deko.Detect([]byte("BZh91AY&SY")))
	fmt.Println(deko.Detect([]byte("plain text")))
	// Output:
	// gzip
	// bzip2
	// verbatim
}

func ExampleNewReaderFormat() {
	// Brotli has no magic bytes, so the format has to be given explicitly.
	compressed, err := deko.Compress([]byte("brotli payload"), deko.Brotli, deko.LevelBest)
	if err != nil {
		log.Fatal(err)
	}

	r := deko.NewReaderFormat(bytes.NewReader(compressed), deko.Brotli)
	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(data))
	// Output: brotli payload
}

func ExampleWriter_Finish() {
	var buf bytes.Buffer
	w, err := deko.NewWriter(&buf, deko.Xz)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := w.Write([]byte("finished stream")); err != nil {
		log.Fatal(err)
	}

	// Finish writes the trailing framing and hands the sink back.
	sink, err := w.Finish()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(sink == &buf)
	// Output: true
}
