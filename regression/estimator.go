package regression

import (
	"fmt"

	"github.com/arloliu/linfit/errs"
)

// Estimator predicts a response from a fitted model.
type Estimator interface {
	// Estimate returns the predicted y for x.
	Estimate(x float64) float64
	// Coefficients returns the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the model coefficients in place.
	SetCoefficients(coeffs []float64) error
}

// LinearEstimator evaluates the line y = intercept + slope·x.
type LinearEstimator struct {
	intercept float64
	slope     float64
}

var _ Estimator = (*LinearEstimator)(nil)

// NewLinearEstimator creates an estimator for the given line.
func NewLinearEstimator(intercept, slope float64) *LinearEstimator {
	return &LinearEstimator{intercept: intercept, slope: slope}
}

// Estimate returns intercept + slope·x.
func (e *LinearEstimator) Estimate(x float64) float64 {
	return Predict(e.intercept, e.slope, x)
}

// Coefficients returns a new slice holding [intercept, slope].
func (e *LinearEstimator) Coefficients() []float64 {
	return []float64{e.intercept, e.slope}
}

// SetCoefficients updates the line from [intercept, slope].
// Any other number of coefficients fails with errs.ErrInvalidInput.
func (e *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%w: linear model expects exactly 2 coefficients, got %d",
			errs.ErrInvalidInput, len(coeffs))
	}
	e.intercept = coeffs[0]
	e.slope = coeffs[1]

	return nil
}
