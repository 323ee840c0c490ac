// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/shaunpsauer/Actuals/pkg/constants"
)

// IsZero checks if a summed total is effectively zero (within tolerance).
// Used for gating derived rows so floating-point residue from summing does
// not produce zero-value clutter.
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.Epsilon
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsWhole reports whether a quantity carries no fractional part.
func IsWhole(val float64) bool {
	return val == math.Trunc(val)
}
