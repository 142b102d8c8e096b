package analysis

import (
	"errors"
	"math"
)

// ErrNonPositiveActual is returned when accuracy is requested for an actual
// amount that is zero or negative.
var ErrNonPositiveActual = errors.New("actual amount must be positive")

// Accuracy levels.
const (
	AccuracyHigh   = "high"
	AccuracyMedium = "medium"
	AccuracyLow    = "low"
)

// Accuracy scores predicted against actual as 1 - |actual-predicted|/actual,
// floored at 0.
func Accuracy(predicted, actual float64) (float64, error) {
	if actual <= 0 || math.IsNaN(actual) {
		return 0, ErrNonPositiveActual
	}
	return math.Max(0, 1-math.Abs(actual-predicted)/actual), nil
}

// AccuracyPercent is accuracy as a whole percentage.
func AccuracyPercent(accuracy float64) int {
	return int(math.Round(accuracy * 100))
}

// AccuracyLevel buckets accuracy with strict lower bounds: above 0.8 is
// high, above 0.6 is medium.
func AccuracyLevel(accuracy float64) string {
	switch {
	case accuracy > 0.8:
		return AccuracyHigh
	case accuracy > 0.6:
		return AccuracyMedium
	default:
		return AccuracyLow
	}
}
