package eseries

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eseries_searches_total",
			Help: "The total number of E-series searches processed",
		},
		[]string{"matcher", "status"},
	)
	searchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "eseries_search_duration_seconds",
			Help: "The duration of E-series searches in seconds",
		},
		[]string{"matcher"},
	)
)

// Query describes one search request. Exactly one of Values or Ratio is
// meaningful, depending on which matcher the query is handed to.
type Query struct {
	// Values are the target component values for nearest-value matching.
	Values []float64
	// Ratio is the target ratio for ratio-pair matching.
	Ratio float64
	// MaxError is the maximum permissible relative error as a fraction
	// (not a percentage). Must be positive.
	MaxError float64
}

// Result is the outcome of an escalating search. Found is false when no
// series up to the ceiling satisfied the error bound; that is a normal,
// reportable outcome, not an error.
type Result struct {
	Found      bool
	Series     SeriesIndex
	WorstError float64
	// Matches maps each normalized target value to its matched series
	// value (nearest-value mode). Targets that normalize to the same
	// value collapse into one entry.
	Matches map[float64]float64
	// Value1 and Value2 are the matched pair rescaled to the requested
	// ratio's true magnitude (ratio mode).
	Value1, Value2 float64
}

// Matcher is the public interface of an escalating series search. The
// application's orchestration layer interacts with matching strategies
// exclusively through it.
type Matcher interface {
	// Search walks the series progression 3, 6, 12, 24, ... and returns the
	// first series that satisfies the query's error bound, or a not-found
	// result when the ceiling is exhausted. Escalation events are sent to
	// the subject's observers; a nil subject disables reporting.
	Search(ctx context.Context, subject *ProgressSubject, q Query, opts Options) (*Result, error)

	// Name returns the display name of the matching strategy.
	Name() string
}

// coreMatcher is the internal interface of a pure per-series matching
// strategy, evaluated once for each series the escalator tries.
type coreMatcher interface {
	// Validate rejects malformed queries before any series is tried.
	Validate(q Query) error
	// MatchSeries evaluates a single series against the query.
	MatchSeries(ctx context.Context, n SeriesIndex, q Query, opts Options) (candidate, error)
	Name() string
}

// candidate is one series' evaluation result, produced by a coreMatcher.
type candidate struct {
	worstError float64
	// satisfied reports whether this series meets the query's bound. The
	// acceptance rule belongs to the strategy: nearest-value requires the
	// worst error to be strictly below the bound, ratio-pair accepts a
	// pair whose error is at most the bound.
	satisfied      bool
	matches        map[float64]float64
	value1, value2 float64
}

// SeriesSearcher implements Matcher by wrapping a coreMatcher with the
// escalation loop and cross-cutting concerns (metrics, tracing, logging,
// observer notification).
type SeriesSearcher struct {
	core coreMatcher
}

// NewMatcher constructs a SeriesSearcher around the given strategy. It
// panics if core is nil.
func NewMatcher(core coreMatcher) Matcher {
	if core == nil {
		panic("eseries: the `coreMatcher` implementation cannot be nil")
	}
	return &SeriesSearcher{core: core}
}

// Name returns the name of the wrapped strategy.
func (s *SeriesSearcher) Name() string {
	return s.core.Name()
}

// Search validates the query, then tries series indices n = 3, 6, 12, 24, ...
// doubling until 2n reaches the ceiling. The first series the strategy
// reports as satisfied wins; exhaustion yields Found == false. The
// progression is strictly increasing, so the returned series is the
// smallest qualifying one.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - subject: The progress subject with registered observers. May be nil.
//   - q: The search request.
//   - opts: Search options; zero values are replaced with defaults.
//
// Returns:
//   - *Result: The search outcome (Found false on exhaustion).
//   - error: ErrInvalidInput for malformed queries, or a context error.
func (s *SeriesSearcher) Search(ctx context.Context, subject *ProgressSubject, q Query, opts Options) (res *Result, err error) {
	tracer := otel.Tracer("eseries")
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		name := s.core.Name()
		searchesTotal.WithLabelValues(name, status).Inc()
		searchDuration.WithLabelValues(name).Observe(duration)

		found := err == nil && res != nil && res.Found
		log.Debug().
			Str("matcher", name).
			Float64("max_error", q.MaxError).
			Bool("found", found).
			Float64("duration", duration).
			Str("status", status).
			Msg("series search completed")
	}()

	if q.MaxError <= 0 || math.IsNaN(q.MaxError) {
		return nil, fmt.Errorf("max relative error must be positive, got %g: %w", q.MaxError, ErrInvalidInput)
	}
	if err := s.core.Validate(q); err != nil {
		return nil, err
	}

	opts = normalizeOptions(opts)
	steps := progressionLength(opts.Ceiling)
	step := 0

	for n := FirstSeries; uint32(n)*2 < opts.Ceiling; n *= 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cand, err := s.core.MatchSeries(ctx, n, q, opts)
		if err != nil {
			return nil, err
		}

		step++
		if subject != nil {
			subject.Notify(n, float64(step)/float64(steps))
		}

		if cand.satisfied {
			return &Result{
				Found:      true,
				Series:     n,
				WorstError: cand.worstError,
				Matches:    cand.matches,
				Value1:     cand.value1,
				Value2:     cand.value2,
			}, nil
		}
	}

	return &Result{Found: false}, nil
}

// progressionLength counts the series indices the escalator will try under
// the given ceiling.
func progressionLength(ceiling uint32) int {
	steps := 0
	for n := uint32(FirstSeries); n*2 < ceiling; n *= 2 {
		steps++
	}
	return steps
}
