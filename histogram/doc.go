// Package histogram computes a multiplicity spectrum over a k-mer count
// table: a frequency histogram of how many distinct k-mers occur once,
// twice, and so on, bucketed into fixed-width bins.
//
// The table itself is owned by an external counting engine and is consumed
// through two small contracts: Table partitions itself into disjoint
// regions, and each Region yields the raw count values of its slice. The
// engine fans one worker out per region, each worker tallies its values
// into a private Histogram, and the partial results are summed into the
// final spectrum after all workers have joined. Workers never share
// mutable state, so the table only needs to stay quiescent for the
// duration of a run.
//
// Every entry of the table lands in exactly one bucket of exactly one
// worker, so the final histogram always sums to the table's entry count.
// A failure in any worker aborts the whole run; there is no
// partial-result mode.
package histogram
