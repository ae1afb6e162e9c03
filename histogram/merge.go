package histogram

import "fmt"

// Merge sums partial histograms element-wise into a single histogram of
// the given bucket count. Summation is commutative, so the order of
// partials never affects the result.
//
// Accumulation is plain uint64 addition. A count table stores 16-byte
// records, so bucket sums stay far below the uint64 ceiling.
func Merge(partials []Histogram, buckets int) (Histogram, error) {
	if buckets < 1 {
		return nil, fmt.Errorf("bucket count %d: %w", buckets, ErrBucketMismatch)
	}
	final := make(Histogram, buckets)
	for w, p := range partials {
		if len(p) != buckets {
			return nil, fmt.Errorf("partial %d has %d buckets, want %d: %w", w, len(p), buckets, ErrBucketMismatch)
		}
		for i, v := range p {
			final[i] += v
		}
	}
	return final, nil
}
