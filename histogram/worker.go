package histogram

// tally folds every count value of one region slice into a fresh private
// histogram. The region is consumed in a single pass; an iteration error
// discards the partial tally because a histogram missing even one value
// cannot be merged.
func tally(r Region, cfg Config) (Histogram, error) {
	// Same clamping as Config.Bucket, with the derived bounds hoisted out
	// of the loop.
	base := cfg.Base()
	ceiling := cfg.Ceiling()
	inc := cfg.Inc

	h := make(Histogram, cfg.Buckets())
	last := len(h) - 1

	for r.Next() {
		v := r.Count()
		switch {
		case v < base:
			h[0]++
		case v > ceiling:
			h[last]++
		default:
			h[(v-base)/inc]++
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return h, nil
}
