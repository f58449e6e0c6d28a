package deko

import "errors"

var (
	// ErrUnsupportedFormat is returned when a stream's format was detected
	// (or explicitly selected) but the matching codec is not compiled into
	// this build.
	ErrUnsupportedFormat = errors.New("deko: unsupported compression format")

	// ErrUnknownFormat is returned instead of falling back to verbatim when
	// FailOnUnknownFormat is enabled and no signature matches.
	ErrUnknownFormat = errors.New("deko: unknown compression format")

	// ErrReaderClosed is returned by Reader operations after Close.
	ErrReaderClosed = errors.New("deko: reader already closed")

	// ErrWriterClosed is returned by Writer operations after Close or Finish.
	ErrWriterClosed = errors.New("deko: writer already closed")
)
