// Package linfit fits ordinary-least-squares lines to small in-memory datasets.
//
// It answers one question: given observations (x, y), what straight line
// y = intercept + slope·x fits them best, and how good is that fit? Fit
// quality is reported as mean squared error (MSE) and the coefficient of
// determination (R²).
//
// # Basic Usage
//
//	model, err := linfit.FitColumns(
//	    []float64{1, 2, 3},       // month
//	    []float64{90, 117.5, 145}, // sales
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("forecast for month 6: %.2f\n", model.Predict(6))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the regression
// package. For the individual statistics (Mean, Slope, Intercept, Predict, MSE,
// RSquared) and fit options, use the regression package directly. Errors are
// sentinels from the errs package and should be matched with errors.Is.
package linfit

import "github.com/arloliu/linfit/regression"

// Point creates a data point.
func Point(x, y float64) regression.DataPoint {
	return regression.DataPoint{X: x, Y: y}
}

// Fit fits a least-squares line to points.
//
// It is equivalent to regression.Fit(regression.Dataset(points), opts...).
//
// Example:
//
//	model, err := linfit.Fit([]regression.DataPoint{
//	    linfit.Point(1, 3),
//	    linfit.Point(2, 5),
//	    linfit.Point(3, 7),
//	})
func Fit(points []regression.DataPoint, opts ...regression.FitOption) (*regression.Model, error) {
	return regression.Fit(regression.Dataset(points), opts...)
}

// FitColumns validates an x column and a y column with regression.NewDataset
// and fits a least-squares line to them.
func FitColumns(xs, ys []float64, opts ...regression.FitOption) (*regression.Model, error) {
	ds, err := regression.NewDataset(xs, ys)
	if err != nil {
		return nil, err
	}

	return regression.Fit(ds, opts...)
}
