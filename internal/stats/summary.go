// Package stats reduces a series of floating-point values to its summary
// statistics: minimum, maximum, and arithmetic mean.
package stats

import (
	"math"

	apperrors "ccxstat/internal/errors"
)

// Summary is the derived, immutable reduction of one series of values.
// For any non-empty series, Min <= Mean <= Max.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// Summarize reduces values to a Summary. The reduction is undefined for an
// empty series, which is reported as an error.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, apperrors.NewValidationError("cannot summarize an empty series")
	}

	min := values[0]
	max := values[0]
	sum := 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}

	// Clamping guards the Min <= Mean <= Max invariant against
	// floating-point accumulation rounding.
	mean := math.Min(max, math.Max(min, sum/float64(len(values))))

	return Summary{Min: min, Max: max, Mean: mean, Count: len(values)}, nil
}
