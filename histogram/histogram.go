package histogram

// Histogram is a fixed-length sequence of bucket counters. A worker
// produces one privately and transfers ownership on publication; Merge
// sums them into the final spectrum.
type Histogram []uint64

// Total returns the sum of all bucket counters. For a merged histogram
// this equals the number of entries in the source table.
func (h Histogram) Total() uint64 {
	var total uint64
	for _, v := range h {
		total += v
	}
	return total
}
