package eseries

import (
	"errors"
	"math"
)

// ErrInvalidInput is returned when a target value, ratio, or error bound
// is not a positive finite number. Invalid inputs are rejected outright
// before any series is searched.
var ErrInvalidInput = errors.New("eseries: input must be a positive finite number")

// Normalize rescales a positive value into the canonical decade [1.0, 10.0]
// by repeated power-of-ten shifts. Relative error is scale-invariant, so
// the shift itself is not tracked.
//
// The loop conditions are deliberately asymmetric: values below 1.0 are
// multiplied up until they reach 1.0, values above 10.0 are divided down
// until they reach 10.0. Exactly 10.0 stays 10.0; the upper boundary is
// inclusive. Normalize is idempotent.
//
// Parameters:
//   - d: The value to normalize. Must be positive and finite.
//
// Returns:
//   - float64: The normalized value in [1.0, 10.0].
//   - error: ErrInvalidInput if d is zero, negative, NaN, or infinite.
func Normalize(d float64) (float64, error) {
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, ErrInvalidInput
	}
	if d < 1.0 {
		for d < 1.0 {
			d *= 10
		}
	} else {
		for d > 10.0 {
			d /= 10
		}
	}
	return d, nil
}
