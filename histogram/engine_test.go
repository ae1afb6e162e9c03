package histogram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// memTable partitions an in-memory slice of count values the same way a
// real table does: contiguous ranges differing in size by at most one.
type memTable struct {
	counts      []uint64
	regionCalls int
}

func (t *memTable) Regions(n int) ([]Region, error) {
	t.regionCalls++
	total := uint64(len(t.counts))
	regions := make([]Region, n)
	for i := 0; i < n; i++ {
		start := uint64(i) * total / uint64(n)
		end := uint64(i+1) * total / uint64(n)
		regions[i] = &memRegion{vals: t.counts[start:end]}
	}
	return regions, nil
}

type memRegion struct {
	vals []uint64
	pos  int
	// failAfter injects a read error once pos reaches it (when > 0).
	failAfter int
}

func (r *memRegion) Next() bool {
	if r.failAfter > 0 && r.pos >= r.failAfter {
		return false
	}
	if r.pos >= len(r.vals) {
		return false
	}
	r.pos++
	return true
}

func (r *memRegion) Count() uint64 { return r.vals[r.pos-1] }

func (r *memRegion) Err() error {
	if r.failAfter > 0 && r.pos >= r.failAfter {
		return errors.New("mapping vanished")
	}
	return nil
}

// brokenTable fails to partition.
type brokenTable struct{}

func (brokenTable) Regions(n int) ([]Region, error) {
	return nil, errors.New("table corrupt")
}

// shortTable returns fewer regions than requested.
type shortTable struct{}

func (shortTable) Regions(n int) ([]Region, error) {
	return []Region{&memRegion{}}, nil
}

func testCounts(n int) []uint64 {
	counts := make([]uint64, n)
	for i := range counts {
		// A spread that exercises both clamps and several interior buckets.
		counts[i] = uint64(i*i%37) + uint64(i%3)*100
	}
	return counts
}

func TestCompute_Conservation(t *testing.T) {
	tbl := &memTable{counts: testCounts(250)}
	cfg := Config{Low: 1, High: 30, Inc: 3}

	for _, workers := range []int{1, 2, 7, 250} {
		got, err := Compute(tbl, workers, cfg)
		require.NoError(t, err)
		require.Equal(t, uint64(250), got.Total(), "%d workers", workers)
	}
}

func TestCompute_PartitionInvariance(t *testing.T) {
	tbl := &memTable{counts: testCounts(97)}
	cfg := Config{Low: 2, High: 50, Inc: 4}

	want, err := Compute(tbl, 1, cfg)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 64, 200} {
		got, err := Compute(tbl, workers, cfg)
		require.NoError(t, err)
		require.Equal(t, want, got, "%d workers", workers)
	}
}

func TestCompute_EmptyTable(t *testing.T) {
	tbl := &memTable{}
	cfg := Config{Low: 1, High: 10, Inc: 1}

	got, err := Compute(tbl, 4, cfg)
	require.NoError(t, err)
	require.Len(t, got, cfg.Buckets())
	require.Equal(t, uint64(0), got.Total())
}

func TestCompute_FailsFastBeforeTableAccess(t *testing.T) {
	tbl := &memTable{counts: testCounts(10)}

	_, err := Compute(tbl, 2, Config{Low: 10, High: 3, Inc: 1})
	require.ErrorIs(t, err, ErrConfig)
	require.Zero(t, tbl.regionCalls, "config errors must be raised before any table access")

	_, err = Compute(tbl, 0, Config{Low: 1, High: 10, Inc: 1})
	require.ErrorIs(t, err, ErrConfig)
	require.Zero(t, tbl.regionCalls)

	_, err = Compute(tbl, 2, Config{Low: 1, High: 10, Inc: 0})
	require.ErrorIs(t, err, ErrConfig)
	require.Zero(t, tbl.regionCalls)
}

func TestCompute_PartitionError(t *testing.T) {
	_, err := Compute(brokenTable{}, 2, Config{Low: 1, High: 10, Inc: 1})
	require.ErrorIs(t, err, ErrPartition)
}

func TestCompute_ShortPartitionIsABug(t *testing.T) {
	_, err := Compute(shortTable{}, 3, Config{Low: 1, High: 10, Inc: 1})
	require.ErrorIs(t, err, ErrPartition)
}

func TestCompute_WorkerFailureAbortsRun(t *testing.T) {
	failing := &memRegion{vals: []uint64{1, 2, 3, 4}, failAfter: 2}
	tbl := regionsTable{
		&memRegion{vals: []uint64{5, 6}},
		failing,
		&memRegion{vals: []uint64{7}},
	}

	_, err := Compute(tbl, 3, Config{Low: 1, High: 10, Inc: 1})
	require.ErrorIs(t, err, ErrWorker)
	require.ErrorContains(t, err, "mapping vanished")
	require.ErrorContains(t, err, "region 1")
}

// regionsTable hands out a fixed set of regions regardless of n, provided
// n matches.
type regionsTable []Region

func (t regionsTable) Regions(n int) ([]Region, error) {
	if n != len(t) {
		return nil, errors.New("unexpected region count")
	}
	return t, nil
}

func TestCompute_ClampedValuesLandInEdgeBuckets(t *testing.T) {
	// base 2, ceiling 10, 5 buckets
	tbl := &memTable{counts: []uint64{0, 1, 2, 7, 10, 11, 500}}
	cfg := Config{Low: 2, High: 9, Inc: 2}

	got, err := Compute(tbl, 2, cfg)
	require.NoError(t, err)
	require.Equal(t, Histogram{3, 0, 1, 0, 3}, got)
}

func TestComputeOpts_LogfObserved(t *testing.T) {
	tbl := &memTable{counts: testCounts(10)}
	var lines int
	opt := Options{Logf: func(format string, args ...any) { lines++ }}

	_, err := ComputeOpts(tbl, 2, Config{Low: 1, High: 10, Inc: 1}, opt)
	require.NoError(t, err)
	require.NotZero(t, lines)
}
