package eseries

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// RatioPairMatcher searches a series table for a pair of entries whose
// ratio approximates the target ratio. A series is satisfied as soon as a
// pair's relative error is at most the query's bound; the first qualifying
// pair in ascending (e1, e2) order wins.
type RatioPairMatcher struct{}

// Name returns the display name of the strategy.
func (m *RatioPairMatcher) Name() string {
	return "Ratio-Pair"
}

// Validate requires a positive, finite target ratio.
func (m *RatioPairMatcher) Validate(q Query) error {
	if _, err := Normalize(q.Ratio); err != nil {
		return fmt.Errorf("target ratio %g: %w", q.Ratio, err)
	}
	return nil
}

// MatchSeries tries all pairs (e1, e2) with e2 <= e1 over the series
// source, comparing each trial ratio Entry(e1)/Entry(e2) against the
// normalized target and accepting the first pair in ascending (e1, e2)
// order whose relative error is at most the bound. Both indices run
// 0-based over the actual table bounds; historically the scan was 1-based
// with e1 allowed one past the end of the fixed tables, which skipped
// entry 0 and read past the table end. Both quirks are corrected here.
//
// Entries are ascending, so the trial ratio decreases monotonically as e2
// grows. The inner scan therefore starts at the first e2 that can reach
// the acceptance window and stops once the trial falls below it; pairs
// outside the window cannot qualify, so the first-pair-wins order is
// unchanged while exhausting a dense series stays cheap.
//
// On acceptance the pair is rescaled by whole powers of ten back to the
// magnitude of the original, non-normalized ratio.
func (m *RatioPairMatcher) MatchSeries(ctx context.Context, n SeriesIndex, q Query, opts Options) (candidate, error) {
	r, err := Normalize(q.Ratio)
	if err != nil {
		return candidate{}, fmt.Errorf("target ratio %g: %w", q.Ratio, err)
	}

	src := SourceFor(n)
	lower := r * (1 - q.MaxError)
	upper := r * (1 + q.MaxError)

	for e1 := 0; e1 < src.Len(); e1++ {
		v1 := src.Entry(e1)
		// The largest trial for this e1 is v1/Entry(0) = v1.
		if v1 < lower {
			continue
		}

		start := sort.Search(e1+1, func(i int) bool { return src.Entry(i) >= v1/upper })
		for e2 := start; e2 <= e1; e2++ {
			v2 := src.Entry(e2)
			trial := v1 / v2
			if trial < lower {
				break
			}
			if pairErr := relError(trial, r); pairErr <= q.MaxError {
				rv1, rv2 := rescalePair(v1, v2, q.Ratio)
				return candidate{
					worstError: pairErr,
					satisfied:  true,
					value1:     rv1,
					value2:     rv2,
				}, nil
			}
		}
	}

	return candidate{}, nil
}

// rescalePair restores the true magnitude of the requested ratio by whole
// power-of-ten steps: value1 is raised tenfold while the pair's ratio is
// too small, value2 while it is too large. Only one of the two values is
// ever touched, and never by a partial step, so the digit pair's relative
// precision is preserved exactly.
func rescalePair(v1, v2, target float64) (float64, float64) {
	k := int(math.Round(math.Log10(target / (v1 / v2))))
	for ; k > 0; k-- {
		v1 *= 10
	}
	for ; k < 0; k++ {
		v2 *= 10
	}
	return v1, v2
}
