package format

import "errors"

var (
	// ErrSignatureMismatch indicates the file does not start with the KMCT magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnsupportedVersion indicates the header declares a version this package cannot read.
	ErrUnsupportedVersion = errors.New("format: unsupported version")
	// ErrSizeMismatch indicates the record area does not match the declared entry count.
	ErrSizeMismatch = errors.New("format: record area does not match entry count")
)
