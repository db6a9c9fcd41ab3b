package regression

import "fmt"

// Model is a fitted least-squares line together with its fit statistics.
//
// Fields:
//   - Slope, Intercept: the fitted line y = Intercept + Slope·x
//   - MSE: mean squared residual (0 is a perfect fit)
//   - RMSE: square root of MSE
//   - RSquared: coefficient of determination (1 is a perfect fit, may be negative)
//   - N: number of points the model was fitted on
//   - Fingerprint: value fingerprint of the fitted dataset, see Dataset.Fingerprint
//   - Formula: human-readable form of the line
//   - Estimator: concrete estimator for making predictions
//
// Slope, Intercept and the statistics record the fit and never change. The
// Estimator starts from the same line but is mutable through SetCoefficients;
// Predict always goes through it, so an updated estimator changes predictions
// while the recorded fit stays as it was.
type Model struct {
	Slope       float64
	Intercept   float64
	MSE         float64
	RMSE        float64
	RSquared    float64
	N           int
	Fingerprint uint64
	Formula     string
	Estimator   Estimator
}

// Predict evaluates the model's estimator at x. A Model without an estimator
// falls back to the fitted line.
func (m *Model) Predict(x float64) float64 {
	if m.Estimator == nil {
		return Predict(m.Intercept, m.Slope, x)
	}

	return m.Estimator.Estimate(x)
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{N: %d, R²: %.4f, MSE: %.4f, Formula: %s}",
		m.N, m.RSquared, m.MSE, m.Formula)
}

func formatFormula(intercept, slope float64, precision int) string {
	return fmt.Sprintf("y = %.*f + %.*f*x", precision, intercept, precision, slope)
}
