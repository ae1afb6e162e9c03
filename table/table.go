package table

import (
	"fmt"

	"github.com/kmerkit/kmerkit/internal/format"
	"github.com/kmerkit/kmerkit/internal/mmfile"
)

// Table is an opened count table, backed by mmap (unix) or a byte slice
// (others). It is immutable and safe for concurrent readers.
type Table struct {
	path    string
	data    []byte
	cleanup func() error
	hdr     format.Header
	closed  bool
}

// Record is one (key, count) entry of the table.
type Record struct {
	Key   uint64
	Count uint64
}

// Open maps the count table at path and validates its header against the
// file size. The file must stay unchanged until Close.
func Open(path string) (*Table, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	hdr, err := format.ParseHeader(data)
	if err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	if err := format.CheckRecordArea(hdr, len(data)); err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	return &Table{
		path:    path,
		data:    data,
		cleanup: cleanup,
		hdr:     hdr,
	}, nil
}

// Close releases the mapping. The table and any regions derived from it
// must not be used afterwards.
func (t *Table) Close() error {
	if t == nil || t.closed {
		return nil
	}
	t.closed = true
	t.data = nil
	return t.cleanup()
}

// Path returns the file path the table was opened from.
func (t *Table) Path() string { return t.path }

// EntryCount returns the number of (key, count) records in the table.
func (t *Table) EntryCount() uint64 { return t.hdr.EntryCount }

// MerLen returns the symbol-sequence length recorded by the counting
// engine. The histogram core treats it as opaque labeling data.
func (t *Table) MerLen() uint32 { return t.hdr.MerLen }

// Canonical reports whether k-mers were folded with their reverse
// complements when the table was counted.
func (t *Table) Canonical() bool { return t.hdr.Canonical() }

// HashSize returns the hash size the counting engine was configured with.
func (t *Table) HashSize() uint64 { return t.hdr.HashSize }

// Size returns the file size in bytes.
func (t *Table) Size() int64 { return int64(format.HeaderSize + int(t.hdr.EntryCount)*format.RecordSize) }

// At returns record i. Mostly useful for tooling; bulk access should go
// through Records or Regions.
func (t *Table) At(i uint64) (Record, error) {
	if t.closed {
		return Record{}, ErrClosed
	}
	if i >= t.hdr.EntryCount {
		return Record{}, fmt.Errorf("record %d of %d: %w", i, t.hdr.EntryCount, ErrOutOfRange)
	}
	off := format.HeaderSize + int(i)*format.RecordSize
	return Record{
		Key:   format.ReadU64(t.data, off+format.RecordKeyOffset),
		Count: format.ReadU64(t.data, off+format.RecordCountOffset),
	}, nil
}

// recordArea returns the raw bytes holding records [start, end).
func (t *Table) recordArea(start, end uint64) []byte {
	lo := format.HeaderSize + int(start)*format.RecordSize
	hi := format.HeaderSize + int(end)*format.RecordSize
	return t.data[lo:hi]
}
