// Package format houses low-level decoders for the KMCT count-table file
// format. The goal is to keep the parsing focused, allocation-free where
// possible, and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
package format

var (
	// Signature is the four-byte magic at the start of every count-table file.
	// Layout:
	//   0x00  'K' 'M' 'C' 'T'
	Signature = []byte{'K', 'M', 'C', 'T'}
)

const (
	// Version is the only on-disk format version this package understands.
	Version = 1

	// HeaderSize is the size of the KMCT header in bytes. Records start
	// immediately after it.
	HeaderSize = 0x20

	// RecordSize is the size of one (key, count) record in bytes.
	RecordSize = 16

	// SignatureSize is the length of the leading magic.
	SignatureSize = 4

	// Header field offsets. All fields are little-endian.
	VersionOffset    = 0x04
	MerLenOffset     = 0x08
	FlagsOffset      = 0x0C
	HashSizeOffset   = 0x10
	EntryCountOffset = 0x18

	// Record field offsets, relative to the record start.
	RecordKeyOffset   = 0
	RecordCountOffset = 8

	// FlagCanonical is set when the counting engine folded each k-mer with
	// its reverse complement before counting.
	FlagCanonical = 0x1
)
