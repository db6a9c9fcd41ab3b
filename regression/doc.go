// Package regression fits an ordinary-least-squares line to a small in-memory
// dataset and reports how well the line fits.
//
// The package is a set of pure functions over an immutable Dataset of (x, y)
// points. Data flows in one direction:
//
//	dataset → Slope → Intercept → (Predict, MSE, RSquared)
//
// Mean is the only leaf and every statistic takes its column means from the
// same routine, so Slope, Intercept and RSquared always agree bit for bit on x̄
// and ȳ.
//
// # Basic Usage
//
// Step by step:
//
//	ds := regression.Dataset{{X: 1, Y: 90}, {X: 2, Y: 117.5}, {X: 3, Y: 145}}
//
//	slope, err := regression.Slope(ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	intercept, _ := regression.Intercept(ds, slope)
//	forecast := regression.Predict(intercept, slope, 6)
//	mse, _ := regression.MSE(ds, slope, intercept)
//	r2, _ := regression.RSquared(ds, slope, intercept)
//
// Or in one call:
//
//	model, err := regression.Fit(ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model) // Model{N: 3, R²: 1.0000, MSE: 0.0000, Formula: y = 62.50 + 27.50*x}
//
// # Errors
//
// Operations fail fast with sentinel errors from the errs package:
//
//   - errs.ErrInvalidInput: empty dataset or value list, mismatched or
//     non-finite columns in NewDataset, invalid options or coefficients
//   - errs.ErrDegenerateInput: Slope when every x is equal, RSquared when every
//     y is equal; a single-point dataset triggers both
//
// Fit can instead propagate IEEE-754 NaN for degenerate columns with
// WithDegeneratePolicy(PolicyPropagate), which matches evaluating the formulas
// directly.
//
// # Numeric Semantics
//
// All arithmetic is float64 with sums taken in dataset order. No compensated
// summation or rescaling is applied; results are exactly what the textbook
// formulas give under IEEE-754.
package regression
