package histogram

import "errors"

var (
	// ErrConfig indicates an invalid histogram configuration (high below low,
	// zero increment, or a non-positive worker count). Detected before any
	// table access.
	ErrConfig = errors.New("histogram: invalid configuration")

	// ErrPartition indicates the table could not be split into the requested
	// number of region slices.
	ErrPartition = errors.New("histogram: table partition failed")

	// ErrWorker indicates a region slice became unreadable mid-iteration.
	// Any lost value would break conservation, so this aborts the run.
	ErrWorker = errors.New("histogram: worker failed")

	// ErrBucketMismatch indicates a partial histogram's length does not match
	// the configured bucket count. This is an internal defect, not bad input.
	ErrBucketMismatch = errors.New("histogram: partial bucket count mismatch")
)
