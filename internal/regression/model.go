// Package regression provides the RUL scoring model and its evaluation helpers.
// The model is treated as a replaceable scoring function behind Model.
package regression

import "errors"

// Regression errors
var (
	ErrNotFitted          = errors.New("model is not fitted")
	ErrInsufficientRows   = errors.New("not enough rows to fit model")
	ErrDimensionMismatch  = errors.New("dimension mismatch")
	ErrEmptyFeatureMatrix = errors.New("empty feature matrix")
)

// Model maps feature rows to a continuous target.
type Model interface {
	// Fit trains the model on rows X and targets y.
	Fit(X [][]float64, y []float64) error

	// Predict returns one prediction per row of X.
	Predict(X [][]float64) ([]float64, error)
}

// Factory creates a fresh, unfitted model.
type Factory func() Model

// validateMatrix checks that X is non-empty and rectangular, returning the column count.
func validateMatrix(X [][]float64) (int, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return 0, ErrEmptyFeatureMatrix
	}
	p := len(X[0])
	for _, row := range X {
		if len(row) != p {
			return 0, ErrDimensionMismatch
		}
	}
	return p, nil
}
