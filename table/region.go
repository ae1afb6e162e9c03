package table

import (
	"fmt"

	"github.com/kmerkit/kmerkit/histogram"
	"github.com/kmerkit/kmerkit/internal/buf"
	"github.com/kmerkit/kmerkit/internal/format"
)

// Region iterates one contiguous slice of the table's records in a single
// pass. It satisfies histogram.Region; a fresh pass requires asking the
// table for new regions.
type Region struct {
	area  []byte
	off   int
	key   uint64
	count uint64
	err   error
}

// Next advances to the next record, returning false at the end of the
// slice or on a read failure (see Err).
func (r *Region) Next() bool {
	if r.err != nil {
		return false
	}
	if r.off >= len(r.area) {
		return false
	}
	rec, ok := buf.Slice(r.area, r.off, format.RecordSize)
	if !ok {
		// Open validates the record area, so a short tail means the
		// mapping changed underneath us.
		r.err = fmt.Errorf("record at offset %d: %w", r.off, format.ErrTruncated)
		return false
	}
	r.key = buf.U64LE(rec[format.RecordKeyOffset:])
	r.count = buf.U64LE(rec[format.RecordCountOffset:])
	r.off += format.RecordSize
	return true
}

// Key returns the k-mer key of the current record.
func (r *Region) Key() uint64 { return r.key }

// Count returns the occurrence count of the current record.
func (r *Region) Count() uint64 { return r.count }

// Err returns the read failure that ended iteration, if any.
func (r *Region) Err() error { return r.err }

// Records returns an iterator over every record in the table.
func (t *Table) Records() (*Region, error) {
	if t.closed {
		return nil, ErrClosed
	}
	return &Region{area: t.recordArea(0, t.hdr.EntryCount)}, nil
}

// Regions splits the table into n contiguous, non-overlapping slices that
// together cover every record exactly once. Slice sizes differ by at most
// one record; when n exceeds the entry count the surplus slices are empty.
func (t *Table) Regions(n int) ([]histogram.Region, error) {
	if t.closed {
		return nil, ErrClosed
	}
	if n < 1 {
		return nil, fmt.Errorf("%d slices: %w", n, ErrRegionCount)
	}
	total := t.hdr.EntryCount
	regions := make([]histogram.Region, n)
	for i := 0; i < n; i++ {
		start := uint64(i) * total / uint64(n)
		end := uint64(i+1) * total / uint64(n)
		regions[i] = &Region{area: t.recordArea(start, end)}
	}
	return regions, nil
}
