package regression

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearModel is an ordinary least squares regression with intercept.
type LinearModel struct {
	intercept    float64
	coefficients []float64
	fitted       bool
}

// NewLinearModel creates an unfitted linear model.
func NewLinearModel() *LinearModel {
	return &LinearModel{}
}

// NewLinearFactory returns a Factory producing linear models.
func NewLinearFactory() Factory {
	return func() Model { return NewLinearModel() }
}

// Fit solves min ||[1 X]·β - y||² by QR decomposition.
// Requires more rows than features.
func (m *LinearModel) Fit(X [][]float64, y []float64) error {
	p, err := validateMatrix(X)
	if err != nil {
		return err
	}
	n := len(X)
	if len(y) != n {
		return fmt.Errorf("%w: %d rows, %d targets", ErrDimensionMismatch, n, len(y))
	}
	if n < p+1 {
		return fmt.Errorf("%w: %d rows for %d parameters", ErrInsufficientRows, n, p+1)
	}

	design := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		design.Set(i, 0, 1)
		for j, v := range row {
			design.Set(i, j+1, v)
		}
	}
	target := mat.NewVecDense(n, append([]float64(nil), y...))

	var beta mat.VecDense
	if err := beta.SolveVec(design, target); err != nil {
		// An ill-conditioned design still yields a least squares solution.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return fmt.Errorf("solve least squares: %w", err)
		}
	}

	m.intercept = beta.AtVec(0)
	m.coefficients = make([]float64, p)
	for j := range m.coefficients {
		m.coefficients[j] = beta.AtVec(j + 1)
	}
	m.fitted = true
	return nil
}

// Predict returns intercept + X·coefficients for every row.
func (m *LinearModel) Predict(X [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if len(X) == 0 {
		return nil, nil
	}
	p, err := validateMatrix(X)
	if err != nil {
		return nil, err
	}
	if p != len(m.coefficients) {
		return nil, fmt.Errorf("%w: model has %d features, got %d", ErrDimensionMismatch, len(m.coefficients), p)
	}

	out := make([]float64, len(X))
	for i, row := range X {
		v := m.intercept
		for j, x := range row {
			v += m.coefficients[j] * x
		}
		out[i] = v
	}
	return out, nil
}

// Intercept returns the fitted intercept.
func (m *LinearModel) Intercept() float64 { return m.intercept }

// Coefficients returns a copy of the fitted coefficients.
func (m *LinearModel) Coefficients() []float64 {
	return append([]float64(nil), m.coefficients...)
}

var _ Model = (*LinearModel)(nil)
