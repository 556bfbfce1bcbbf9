package eseries

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NearestValueMatcher finds, for every target value, the closest entry of a
// series table by relative error, and judges the series by the worst error
// across all targets. A series is satisfied only when that worst error is
// strictly below the query's bound.
type NearestValueMatcher struct{}

// Name returns the display name of the strategy.
func (m *NearestValueMatcher) Name() string {
	return "Nearest-Value"
}

// Validate requires at least one target value, each positive and finite.
func (m *NearestValueMatcher) Validate(q Query) error {
	if len(q.Values) == 0 {
		return fmt.Errorf("at least one target value is required: %w", ErrInvalidInput)
	}
	for _, v := range q.Values {
		if _, err := Normalize(v); err != nil {
			return fmt.Errorf("target value %g: %w", v, err)
		}
	}
	return nil
}

// matchedValue pairs a normalized target with its nearest series entry.
type matchedValue struct {
	normalized float64
	entry      float64
}

// MatchSeries normalizes each target and resolves its nearest entry in the
// series. Large target sets are matched in parallel; the worst-case error
// is reduced afterwards in input order, so the aggregation stays
// deterministic regardless of scheduling.
//
// Targets that normalize to the same value collapse into a single mapping
// entry. The collapse is order-independent because equal normalized values
// always resolve to the same series entry.
func (m *NearestValueMatcher) MatchSeries(ctx context.Context, n SeriesIndex, q Query, opts Options) (candidate, error) {
	src := SourceFor(n)
	matched := make([]matchedValue, len(q.Values))

	if len(q.Values) >= opts.ParallelThreshold {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(runtime.NumCPU())
		for i, raw := range q.Values {
			g.Go(func() error {
				v, err := Normalize(raw)
				if err != nil {
					return fmt.Errorf("target value %g: %w", raw, err)
				}
				matched[i] = matchedValue{normalized: v, entry: src.Nearest(v)}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return candidate{}, err
		}
	} else {
		for i, raw := range q.Values {
			v, err := Normalize(raw)
			if err != nil {
				return candidate{}, fmt.Errorf("target value %g: %w", raw, err)
			}
			matched[i] = matchedValue{normalized: v, entry: src.Nearest(v)}
		}
	}

	matches := make(map[float64]float64, len(matched))
	worst := 0.0
	for _, mv := range matched {
		matches[mv.normalized] = mv.entry
		if err := relError(mv.entry, mv.normalized); err > worst {
			worst = err
		}
	}

	return candidate{
		worstError: worst,
		satisfied:  worst < q.MaxError,
		matches:    matches,
	}, nil
}
