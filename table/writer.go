package table

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kmerkit/kmerkit/internal/format"
)

// Writer produces a KMCT count-table file record by record. It is the
// output side of a counting engine; this repository uses it for tooling
// and test fixtures.
//
// Records are buffered and the entry count is patched into the header on
// Close, so an abandoned Writer leaves a file that Open will reject.
type Writer struct {
	f      *os.File
	bw     *bufio.Writer
	hdr    format.Header
	rec    [format.RecordSize]byte
	closed bool
}

// Create starts a new count table at path, truncating any existing file.
func Create(path string, merLen uint32, canonical bool, hashSize uint64) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("table: create %s: %w", path, err)
	}
	hdr := format.Header{
		Version:  format.Version,
		MerLen:   merLen,
		HashSize: hashSize,
	}
	if canonical {
		hdr.Flags |= format.FlagCanonical
	}
	bw := bufio.NewWriter(f)
	if _, err := bw.Write(format.EncodeHeader(hdr)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("table: create %s: %w", path, err)
	}
	return &Writer{f: f, bw: bw, hdr: hdr}, nil
}

// Add appends one (key, count) record.
func (w *Writer) Add(key, count uint64) error {
	if w.closed {
		return ErrClosed
	}
	format.PutU64(w.rec[:], format.RecordKeyOffset, key)
	format.PutU64(w.rec[:], format.RecordCountOffset, count)
	if _, err := w.bw.Write(w.rec[:]); err != nil {
		return fmt.Errorf("table: write record: %w", err)
	}
	w.hdr.EntryCount++
	return nil
}

// Close flushes buffered records, patches the final entry count into the
// header, and closes the file.
func (w *Writer) Close() error {
	if w == nil || w.closed {
		return nil
	}
	w.closed = true
	if err := w.bw.Flush(); err != nil {
		_ = w.f.Close()
		return fmt.Errorf("table: flush records: %w", err)
	}
	if _, err := w.f.WriteAt(format.EncodeHeader(w.hdr), 0); err != nil {
		_ = w.f.Close()
		return fmt.Errorf("table: patch header: %w", err)
	}
	return w.f.Close()
}
