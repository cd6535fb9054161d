package regression

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RMSE returns the root mean squared error between predictions and actuals.
func RMSE(predicted, actual []float64) float64 {
	n := len(actual)
	if n == 0 || len(predicted) != n {
		return 0
	}
	return floats.Distance(predicted, actual, 2) / math.Sqrt(float64(n))
}

// R2 returns the coefficient of determination of predictions against actuals.
// Returns 0 when actuals are constant or empty.
func R2(predicted, actual []float64) float64 {
	n := len(actual)
	if n == 0 || len(predicted) != n {
		return 0
	}
	if floats.Max(actual) == floats.Min(actual) {
		return 0
	}
	return stat.RSquaredFrom(predicted, actual, nil)
}
