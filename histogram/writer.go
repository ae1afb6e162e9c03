package histogram

import (
	"bufio"
	"fmt"
	"io"
)

// Meta carries the table metadata echoed into the spectrum header. The
// engine never reads these fields; they exist purely for output labeling.
type Meta struct {
	// Path of the count table the spectrum was computed from.
	Path string
	// MerLen is the symbol-sequence length recorded in the table header.
	MerLen uint32
}

// Write emits the spectrum in text form: a small metadata header followed
// by one "<bin-left-edge> <count>" line per bucket, where the left edge of
// bucket i is Base + i*Inc.
func Write(w io.Writer, h Histogram, cfg Config, meta Meta) error {
	bw := bufio.NewWriter(w)

	// Errors stick inside bufio; a single Flush check covers the lot.
	fmt.Fprintf(bw, "# Title:k-mer spectra for: %s\n", meta.Path)
	fmt.Fprintf(bw, "# XLabel:K%d multiplicity\n", meta.MerLen)
	fmt.Fprintf(bw, "# YLabel:Number of distinct K%d mers\n", meta.MerLen)
	fmt.Fprintln(bw, "###")

	edge := cfg.Base()
	for _, count := range h {
		fmt.Fprintf(bw, "%d %d\n", edge, count)
		edge += cfg.Inc
	}
	return bw.Flush()
}
