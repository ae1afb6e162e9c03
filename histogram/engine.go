package histogram

import "fmt"

// Region is one contiguous, non-overlapping slice of a count table. It
// yields raw count values in a single pass: Next reports whether a value
// is available, Count returns it, and Err surfaces any read failure once
// Next returns false.
type Region interface {
	Next() bool
	Count() uint64
	Err() error
}

// Table is the read-only view of a count table the engine needs: the
// ability to split itself into n disjoint region slices that together
// cover every entry exactly once.
type Table interface {
	Regions(n int) ([]Region, error)
}

// Options tunes engine behavior beyond the histogram configuration.
type Options struct {
	// Logf receives progress text when non-nil. The engine itself writes
	// nothing anywhere else; by default a run is silent.
	Logf func(format string, args ...any)
}

// DefaultOptions returns the options used by Compute: a silent run.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

// Compute partitions the table into workers region slices, tallies each
// slice concurrently, and merges the per-worker results into the final
// histogram. It is the sole entry point of the engine; see ComputeOpts
// for the variant with an injected progress sink.
func Compute(t Table, workers int, cfg Config) (Histogram, error) {
	return ComputeOpts(t, workers, cfg, DefaultOptions())
}

// ComputeOpts is Compute with explicit Options.
//
// The configuration is validated before the table is touched. One
// goroutine runs per region slice; each publishes its private partial
// histogram exactly once, and the engine joins all of them before
// merging. Any worker failure aborts the whole run: a histogram with even
// one entry missing would silently violate conservation, so there is no
// partial-success mode. The result is identical for any worker count.
func ComputeOpts(t Table, workers int, cfg Config, opt Options) (Histogram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("worker count must be >= 1, got %d: %w", workers, ErrConfig)
	}

	regions, err := t.Regions(workers)
	if err != nil {
		return nil, fmt.Errorf("splitting table into %d regions: %w: %w", workers, ErrPartition, err)
	}
	if len(regions) != workers {
		return nil, fmt.Errorf("table produced %d regions, want %d: %w", len(regions), workers, ErrPartition)
	}
	opt.logf("tallying counts across %d region slices", len(regions))

	type result struct {
		idx  int
		part Histogram
		err  error
	}
	// Buffered so workers can publish and exit even when the run is
	// already doomed by an earlier failure.
	results := make(chan result, len(regions))
	for i, r := range regions {
		go func(idx int, r Region) {
			part, err := tally(r, cfg)
			results <- result{idx: idx, part: part, err: err}
		}(i, r)
	}

	partials := make([]Histogram, len(regions))
	var failed int
	var workerErr error
	for range regions {
		res := <-results
		if res.err != nil {
			if workerErr == nil || res.idx < failed {
				failed, workerErr = res.idx, res.err
			}
			continue
		}
		partials[res.idx] = res.part
	}
	if workerErr != nil {
		return nil, fmt.Errorf("region %d: %w: %w", failed, ErrWorker, workerErr)
	}

	opt.logf("merging %d partial histograms", len(partials))
	return Merge(partials, cfg.Buckets())
}
