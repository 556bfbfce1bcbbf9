// Package eseries implements the search for IEC 60063 preferred-value series.
// This file contains configuration options for series searches.
package eseries

// Options configures a series search.
type Options struct {
	// Ceiling bounds the doubling progression of series indices: the
	// search stops once 2n reaches it. If 0, DefaultCeiling is used.
	Ceiling uint32
	// ParallelThreshold is the minimum number of target values before
	// nearest-value matching is parallelized per value. If 0, a default
	// value is used.
	ParallelThreshold int
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values, ensuring consistent handling across matcher implementations.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.Ceiling == 0 {
		normalized.Ceiling = DefaultCeiling
	}
	if normalized.ParallelThreshold == 0 {
		normalized.ParallelThreshold = DefaultParallelThreshold
	}
	return normalized
}
