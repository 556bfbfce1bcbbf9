// Package eseries implements the search for IEC 60063 preferred-value
// series (E3, E6, E12, E24, and generalized E-n beyond). It exposes a
// `Matcher` interface that abstracts the per-series matching strategy,
// allowing different modes (nearest-value, ratio-pair) to be used
// interchangeably behind a common escalating searcher.
package eseries

import "math"

// SeriesIndex identifies an E-series by its number of values per decade.
// Valid indices form the doubling progression 3, 6, 12, 24, 48, 96, ...
type SeriesIndex uint32

// Historical E-series below E48 are standardized by convention and do not
// follow the 10^(m/n) step equation, so they are defined as fixed tables.
var (
	e3  = []float64{1.0, 2.2, 4.7}
	e6  = []float64{1.0, 1.5, 2.2, 3.3, 4.7, 6.8}
	e12 = []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}
	e24 = []float64{
		1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0,
		2.2, 2.4, 2.7, 3.0, 3.3, 3.6, 3.9, 4.3,
		4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
	}
)

// SeriesSource supplies the ordered digit values of one E-series decade.
// Implementations are immutable and safe for concurrent use.
type SeriesSource interface {
	// Len returns the number of entries per decade.
	Len() int

	// Entry returns the m-th value of the decade, 0-indexed. Indices are
	// clamped to the valid range; a generated series additionally accepts
	// m == Len(), which yields the top-of-decade value 10.0.
	Entry(m int) float64

	// Nearest returns the entry closest to the normalized value v by
	// relative error |entry - v| / v.
	Nearest(v float64) float64
}

// SourceFor selects the value source for a series index. The four
// historical series map to their fixed tables; every other index is
// generated from the logarithmic step 10^(1/n). The dispatch happens
// once per series, so the search routines never branch on magic
// indices themselves.
//
// Parameters:
//   - n: The series index (3, 6, 12, 24, 48, ...).
//
// Returns:
//   - SeriesSource: The immutable value source for the series.
func SourceFor(n SeriesIndex) SeriesSource {
	switch n {
	case 3:
		return fixedSeries{values: e3}
	case 6:
		return fixedSeries{values: e6}
	case 12:
		return fixedSeries{values: e12}
	case 24:
		return fixedSeries{values: e24}
	default:
		return generatedSeries{n: n, step: math.Pow(10, 1.0/float64(n))}
	}
}

// fixedSeries serves one of the hardcoded historical tables.
type fixedSeries struct {
	values []float64
}

func (s fixedSeries) Len() int { return len(s.values) }

func (s fixedSeries) Entry(m int) float64 {
	if m < 0 {
		m = 0
	}
	if m >= len(s.values) {
		m = len(s.values) - 1
	}
	return s.values[m]
}

// Nearest scans all entries linearly. The comparison is a strict
// less-than, so on a tie the entry with the lowest index wins.
func (s fixedSeries) Nearest(v float64) float64 {
	best := s.values[0]
	bestErr := math.Abs(best-v) / v
	for _, ve := range s.values[1:] {
		if err := math.Abs(ve-v) / v; err < bestErr {
			best = ve
			bestErr = err
		}
	}
	return best
}

// generatedSeries computes entries on demand from the exponential step,
// rounded to three decimal places as the standard prescribes.
type generatedSeries struct {
	n    SeriesIndex
	step float64
}

func (s generatedSeries) Len() int { return int(s.n) }

func (s generatedSeries) Entry(m int) float64 {
	if m < 0 {
		m = 0
	}
	if m > int(s.n) {
		m = int(s.n)
	}
	return math.Round(math.Pow(s.step, float64(m))*1000) / 1000
}

// Nearest uses the closed form m = round(log(v) / log(10^(1/n))) and
// generates only that single entry. No scan is needed because the
// generated decade is exactly geometric. A value close to 10.0 may
// resolve to m == n, the top of the decade.
func (s generatedSeries) Nearest(v float64) float64 {
	m := int(math.Round(math.Log(v) / math.Log(s.step)))
	return s.Entry(m)
}

// relError is the relative error of an approximation against the exact
// value: |approx - exact| / exact.
func relError(approx, exact float64) float64 {
	return math.Abs(approx-exact) / exact
}
