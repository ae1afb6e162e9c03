package table

import "errors"

var (
	// ErrClosed indicates the table was used after Close.
	ErrClosed = errors.New("table: table is closed")

	// ErrRegionCount indicates a non-positive region count was requested.
	ErrRegionCount = errors.New("table: region count must be >= 1")

	// ErrOutOfRange indicates a record index beyond the entry count.
	ErrOutOfRange = errors.New("table: record index out of range")
)
