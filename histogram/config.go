package histogram

import "fmt"

// Config describes the histogram domain: counts from Low to High, bucketed
// in steps of Inc. The bucket grid is anchored on multiples of Inc, so Low
// is rounded down to Base and High is rounded up to Ceiling.
//
// Values below Base fall into the first bucket and values above Ceiling
// fall into the last, making the two edge buckets catch-alls for
// out-of-range counts.
type Config struct {
	Low  uint64
	High uint64
	Inc  uint64
}

// Validate reports whether the configuration describes a usable bucket grid.
func (c Config) Validate() error {
	if c.Inc == 0 {
		return fmt.Errorf("increment must be >= 1: %w", ErrConfig)
	}
	if c.High < c.Low {
		return fmt.Errorf("high count (%d) must be >= low count (%d): %w", c.High, c.Low, ErrConfig)
	}
	return nil
}

// Base returns Low rounded down to the nearest multiple of Inc.
func (c Config) Base() uint64 {
	return c.Low - c.Low%c.Inc
}

// Ceiling returns High rounded up to the nearest multiple of Inc.
func (c Config) Ceiling() uint64 {
	if rem := c.High % c.Inc; rem != 0 {
		return c.High + c.Inc - rem
	}
	return c.High
}

// Buckets returns the number of buckets spanning [Base, Ceiling].
// Always >= 1 for a valid configuration.
func (c Config) Buckets() int {
	return int((c.Ceiling()-c.Base())/c.Inc + 1)
}

// Bucket maps a raw count value to its bucket index, clamping out-of-range
// values into the first and last buckets. With a single bucket every value
// maps to index 0.
func (c Config) Bucket(v uint64) int {
	switch {
	case v < c.Base():
		return 0
	case v > c.Ceiling():
		return c.Buckets() - 1
	default:
		return int((v - c.Base()) / c.Inc)
	}
}
