package regression

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/pool"
)

// Mean returns the arithmetic mean of values, summed in order.
//
// It fails with errs.ErrInvalidInput when values is empty.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: mean of no values", errs.ErrInvalidInput)
	}

	return mean(values), nil
}

// Slope returns the least-squares slope of y on x:
//
//	slope = Σ(xᵢ − x̄)(yᵢ − ȳ) / Σ(xᵢ − x̄)²
//
// Degeneracy is decided by comparing the x values themselves, not by testing
// the denominator: the mean of equal values such as 0.1 is not always exactly
// representable, which would leave tiny non-zero deviations.
//
// Parameters:
//   - ds: Observations to fit
//
// Returns:
//   - float64: The least-squares slope
//   - error: errs.ErrInvalidInput for an empty dataset, errs.ErrDegenerateInput
//     when every x is equal (including a single point)
func Slope(ds Dataset) (float64, error) {
	if len(ds) == 0 {
		return 0, fmt.Errorf("%w: slope of an empty dataset", errs.ErrInvalidInput)
	}
	if constantX(ds) {
		return 0, fmt.Errorf("%w: all %d x values equal %g", errs.ErrDegenerateInput, len(ds), ds[0].X)
	}

	num, den := slopeTerms(ds)
	if den == 0 {
		return 0, fmt.Errorf("%w: x variance underflows over %d points", errs.ErrDegenerateInput, len(ds))
	}

	return num / den, nil
}

// Intercept returns the least-squares intercept ȳ − slope·x̄ for a slope
// previously computed from the same dataset.
//
// It fails with errs.ErrInvalidInput for an empty dataset.
func Intercept(ds Dataset, slope float64) (float64, error) {
	if len(ds) == 0 {
		return 0, fmt.Errorf("%w: intercept of an empty dataset", errs.ErrInvalidInput)
	}

	return interceptOf(ds, slope), nil
}

// Predict evaluates the line intercept + slope·x.
func Predict(intercept, slope, x float64) float64 {
	return intercept + slope*x
}

// MSE returns the mean squared residual of the line over the dataset.
//
// It fails with errs.ErrInvalidInput for an empty dataset.
func MSE(ds Dataset, slope, intercept float64) (float64, error) {
	if len(ds) == 0 {
		return 0, fmt.Errorf("%w: MSE of an empty dataset", errs.ErrInvalidInput)
	}

	return residualSumOfSquares(ds, slope, intercept) / float64(len(ds)), nil
}

// RMSE returns the square root of MSE, in the units of y.
func RMSE(ds Dataset, slope, intercept float64) (float64, error) {
	mse, err := MSE(ds, slope, intercept)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(mse), nil
}

// RSquared returns the coefficient of determination of the line:
//
//	R² = 1 − SS_res / SS_tot
//
// As with Slope, a constant response is detected from the y values directly.
//
// Parameters:
//   - ds: Observations the line is scored against
//   - slope, intercept: The line to score, usually from Slope and Intercept
//
// Returns:
//   - float64: R², 1 for a perfect fit; negative when the line does worse than ȳ
//   - error: errs.ErrInvalidInput for an empty dataset, errs.ErrDegenerateInput
//     when every y is equal (including a single point)
func RSquared(ds Dataset, slope, intercept float64) (float64, error) {
	if len(ds) == 0 {
		return 0, fmt.Errorf("%w: R² of an empty dataset", errs.ErrInvalidInput)
	}
	if constantY(ds) {
		return 0, fmt.Errorf("%w: all %d y values equal %g", errs.ErrDegenerateInput, len(ds), ds[0].Y)
	}

	ssTot := totalSumOfSquares(ds)
	if ssTot == 0 {
		return 0, fmt.Errorf("%w: y variance underflows over %d points", errs.ErrDegenerateInput, len(ds))
	}

	return 1 - residualSumOfSquares(ds, slope, intercept)/ssTot, nil
}

// Residuals returns yᵢ − ŷᵢ for every point, in dataset order.
// It returns nil for an empty dataset.
func Residuals(ds Dataset, slope, intercept float64) []float64 {
	if len(ds) == 0 {
		return nil
	}

	out := make([]float64, len(ds))
	for i, p := range ds {
		out[i] = p.Y - Predict(intercept, slope, p.X)
	}

	return out
}

// constantX reports whether every x equals the first; ds must not be empty.
func constantX(ds Dataset) bool {
	return !slices.ContainsFunc(ds, func(p DataPoint) bool { return p.X != ds[0].X })
}

// constantY reports whether every y equals the first; ds must not be empty.
func constantY(ds Dataset) bool {
	return !slices.ContainsFunc(ds, func(p DataPoint) bool { return p.Y != ds[0].Y })
}

// mean assumes len(values) > 0.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// columnMeans returns x̄ and ȳ. Slope, Intercept and RSquared all take their
// means from here so the values are bit-identical across them.
func columnMeans(ds Dataset) (meanX, meanY float64) {
	xs, releaseX := pool.GetFloat64Slice(len(ds))
	defer releaseX()
	ys, releaseY := pool.GetFloat64Slice(len(ds))
	defer releaseY()

	for i, p := range ds {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return mean(xs), mean(ys)
}

// slopeTerms returns the numerator and denominator of the slope; ds must not
// be empty.
func slopeTerms(ds Dataset) (num, den float64) {
	meanX, meanY := columnMeans(ds)
	for _, p := range ds {
		dx := p.X - meanX
		num += dx * (p.Y - meanY)
		den += dx * dx
	}

	return num, den
}

func interceptOf(ds Dataset, slope float64) float64 {
	meanX, meanY := columnMeans(ds)
	return meanY - slope*meanX
}

func residualSumOfSquares(ds Dataset, slope, intercept float64) float64 {
	ss := 0.0
	for _, p := range ds {
		r := p.Y - Predict(intercept, slope, p.X)
		ss += r * r
	}

	return ss
}

func totalSumOfSquares(ds Dataset) float64 {
	_, meanY := columnMeans(ds)

	ss := 0.0
	for _, p := range ds {
		d := p.Y - meanY
		ss += d * d
	}

	return ss
}
