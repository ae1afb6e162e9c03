package format

import (
	"bytes"
	"fmt"

	"github.com/kmerkit/kmerkit/internal/buf"
)

// Header captures the fields of the KMCT count-table header. The diagram
// below shows the on-disk layout; everything is little-endian.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    'K' 'M' 'C' 'T'
//	 0x04    4    Format version (1)
//	 0x08    4    Mer length (symbols per key), carried through for labeling
//	 0x0C    4    Flags (bit 0: canonical counting)
//	 0x10    8    Hash size the counting engine was configured with
//	 0x18    8    Entry count (number of 16-byte records that follow)
type Header struct {
	Version    uint32
	MerLen     uint32
	Flags      uint32
	HashSize   uint64
	EntryCount uint64
}

// Canonical reports whether the table was counted with canonical k-mers.
func (h Header) Canonical() bool {
	return h.Flags&FlagCanonical != 0
}

// ParseHeader validates and extracts the KMCT header from b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("kmct header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:SignatureSize], Signature) {
		return Header{}, fmt.Errorf("kmct header: %w", ErrSignatureMismatch)
	}
	h := Header{
		Version:    buf.U32LE(b[VersionOffset:]),
		MerLen:     buf.U32LE(b[MerLenOffset:]),
		Flags:      buf.U32LE(b[FlagsOffset:]),
		HashSize:   buf.U64LE(b[HashSizeOffset:]),
		EntryCount: buf.U64LE(b[EntryCountOffset:]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("kmct header: version %d: %w", h.Version, ErrUnsupportedVersion)
	}
	return h, nil
}

// CheckRecordArea validates that fileLen holds exactly h.EntryCount records
// after the header. A short file means truncation; a long one means the
// header undercounts, and either way the table cannot be trusted.
func CheckRecordArea(h Header, fileLen int) error {
	if h.EntryCount > uint64(^uint(0)>>1)/RecordSize {
		return fmt.Errorf("kmct records: entry count %d: %w", h.EntryCount, ErrSizeMismatch)
	}
	end, err := buf.CheckListBounds(fileLen, HeaderSize, int(h.EntryCount), RecordSize)
	if err != nil {
		return fmt.Errorf("kmct records: %w", ErrTruncated)
	}
	if end != fileLen {
		return fmt.Errorf("kmct records: %d trailing bytes: %w", fileLen-end, ErrSizeMismatch)
	}
	return nil
}

// EncodeHeader writes h into a fresh HeaderSize-byte buffer.
func EncodeHeader(h Header) []byte {
	b := make([]byte, HeaderSize)
	copy(b[:SignatureSize], Signature)
	PutU32(b, VersionOffset, h.Version)
	PutU32(b, MerLenOffset, h.MerLen)
	PutU32(b, FlagsOffset, h.Flags)
	PutU64(b, HashSizeOffset, h.HashSize)
	PutU64(b, EntryCountOffset, h.EntryCount)
	return b
}
