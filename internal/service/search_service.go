// Package service centralizes validation and matcher retrieval for
// E-series searches, decoupling the CLI shell from the core package.
package service

import (
	"context"
	"fmt"

	"github.com/mmarvin/efind/internal/eseries"
	"github.com/mmarvin/efind/internal/logging"
)

// Service defines the interface for E-series search services. The
// abstraction enables dependency injection and easier testing.
type Service interface {
	// FindSeries searches for the smallest series whose worst-case
	// relative error over all target values is below maxError.
	FindSeries(ctx context.Context, values []float64, maxError float64) (*eseries.Result, error)

	// FindRatio searches for the smallest series containing a pair of
	// entries whose ratio approximates the target within maxError.
	FindRatio(ctx context.Context, ratio float64, maxError float64) (*eseries.Result, error)
}

// SearchService implements Service on top of a matcher factory. It holds
// the search options and the progress subject shared by all searches.
type SearchService struct {
	factory eseries.MatcherFactory
	opts    eseries.Options
	subject *eseries.ProgressSubject
	logger  logging.Logger
}

// Ensure SearchService implements Service.
var _ Service = (*SearchService)(nil)

// NewSearchService creates a new SearchService.
//
// Parameters:
//   - factory: The factory to retrieve matchers from.
//   - opts: Search options applied to every search.
//   - subject: The progress subject escalation events are sent to. May be nil.
func NewSearchService(factory eseries.MatcherFactory, opts eseries.Options, subject *eseries.ProgressSubject) *SearchService {
	return &SearchService{
		factory: factory,
		opts:    opts,
		subject: subject,
		logger:  logging.NewDefaultLogger(),
	}
}

// WithLogger replaces the service's logger and returns the service, for
// call chaining during construction.
func (s *SearchService) WithLogger(logger logging.Logger) *SearchService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// FindSeries retrieves the nearest-value matcher and runs the escalating
// search. Input validation (positive finite values, positive error bound)
// happens inside the matcher before any series is tried.
func (s *SearchService) FindSeries(ctx context.Context, values []float64, maxError float64) (*eseries.Result, error) {
	matcher, err := s.factory.Get("nearest")
	if err != nil {
		return nil, fmt.Errorf("retrieving matcher: %w", err)
	}

	s.logger.Debug("starting nearest-value search",
		logging.Int("values", len(values)),
		logging.Float64("max_error", maxError))

	res, err := matcher.Search(ctx, s.subject, eseries.Query{Values: values, MaxError: maxError}, s.opts)
	if err != nil {
		s.logger.Error("nearest-value search failed", err)
		return nil, err
	}
	return res, nil
}

// FindRatio retrieves the ratio-pair matcher and runs the escalating search.
func (s *SearchService) FindRatio(ctx context.Context, ratio float64, maxError float64) (*eseries.Result, error) {
	matcher, err := s.factory.Get("ratio")
	if err != nil {
		return nil, fmt.Errorf("retrieving matcher: %w", err)
	}

	s.logger.Debug("starting ratio-pair search",
		logging.Float64("ratio", ratio),
		logging.Float64("max_error", maxError))

	res, err := matcher.Search(ctx, s.subject, eseries.Query{Ratio: ratio, MaxError: maxError}, s.opts)
	if err != nil {
		s.logger.Error("ratio-pair search failed", err)
		return nil, err
	}
	return res, nil
}
