// Package eseries implements the search for IEC 60063 preferred-value series.
package eseries

import "math"

const (
	// FirstSeries is the smallest series index tried by the escalating
	// searcher. The progression doubles from here: 3, 6, 12, 24, 48, ...
	FirstSeries SeriesIndex = 3

	// DefaultCeiling bounds the series progression. Escalation stops once
	// doubling the index would overflow a 16-bit counter, so the densest
	// series ever tried under the default ceiling is E24576.
	DefaultCeiling uint32 = math.MaxUint16

	// DefaultParallelThreshold is the minimum number of target values
	// before per-value matching is spread across goroutines. Matching a
	// single value is a handful of float operations; below this count the
	// goroutine overhead exceeds any gain.
	DefaultParallelThreshold = 64
)
