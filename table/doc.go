// Package table reads KMCT count-table files: the precomputed mapping from
// fixed-length k-mers to occurrence counts produced by a counting engine.
//
// A table is opened read-only and memory-mapped where the platform allows.
// It can be walked record by record with Records, or split into disjoint
// region slices with Regions for the histogram engine's workers. The file
// must not change while a table is open; nothing here takes locks.
package table
