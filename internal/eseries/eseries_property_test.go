package eseries

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestNormalize_PropertyBased verifies the normalization invariants over
// random positive inputs: the result always lies in [1.0, 10.0] and
// normalizing twice changes nothing.
func TestNormalize_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("normalize lands in the canonical decade", prop.ForAll(
		func(d float64) bool {
			v, err := Normalize(d)
			if err != nil {
				return false
			}
			return v >= 1.0 && v <= 10.0
		},
		gen.Float64Range(1e-12, 1e12).SuchThat(func(d float64) bool { return d > 0 }),
	))

	properties.Property("normalize is idempotent", prop.ForAll(
		func(d float64) bool {
			once, err := Normalize(d)
			if err != nil {
				return false
			}
			twice, err := Normalize(once)
			if err != nil {
				return false
			}
			return once == twice
		},
		gen.Float64Range(1e-12, 1e12).SuchThat(func(d float64) bool { return d > 0 }),
	))

	properties.TestingRun(t)
}

// TestNearest_FixedOptimality_PropertyBased verifies by exhaustive
// comparison that the linear scan over a fixed table always returns the
// entry with the minimum achievable relative error.
func TestNearest_FixedOptimality_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	fixedIndices := []SeriesIndex{3, 6, 12, 24}

	properties.Property("fixed-table nearest is optimal", prop.ForAll(
		func(d float64) bool {
			v, err := Normalize(d)
			if err != nil {
				return false
			}
			for _, n := range fixedIndices {
				src := SourceFor(n)
				got := relError(src.Nearest(v), v)

				best := math.Inf(1)
				for m := 0; m < src.Len(); m++ {
					if e := relError(src.Entry(m), v); e < best {
						best = e
					}
				}
				if got != best {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0.001, 100_000).SuchThat(func(d float64) bool { return d > 0 }),
	))

	properties.TestingRun(t)
}

// TestNearest_GeneratedBound_PropertyBased verifies that the closed-form
// lookup in a generated series never strays more than half a logarithmic
// step (plus the three-decimal rounding slack) from the target.
func TestNearest_GeneratedBound_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	generatedIndices := []SeriesIndex{48, 96, 192, 384}

	properties.Property("generated nearest stays within half a step", prop.ForAll(
		func(d float64) bool {
			v, err := Normalize(d)
			if err != nil {
				return false
			}
			for _, n := range generatedIndices {
				step := math.Pow(10, 1.0/float64(n))
				bound := math.Sqrt(step) - 1 + 0.001
				if relError(SourceFor(n).Nearest(v), v) > bound {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0.001, 100_000).SuchThat(func(d float64) bool { return d > 0 }),
	))

	properties.TestingRun(t)
}
