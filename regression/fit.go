package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
)

// Fit fits a least-squares line to the dataset and computes its statistics.
//
// The computation runs Slope → Intercept → MSE → RMSE → RSquared. An empty
// dataset always fails with errs.ErrInvalidInput. Zero-variance columns fail
// with errs.ErrDegenerateInput unless WithDegeneratePolicy(PolicyPropagate) is
// given, in which case the affected values are NaN: the slope (and with it the
// intercept and MSE) when every x is equal, and R² when every y is equal.
//
// Parameters:
//   - ds: Observations to fit
//   - opts: Optional settings (WithDegeneratePolicy, WithFormulaPrecision)
//
// Returns:
//   - *Model: The fitted line with MSE, RMSE, R², fingerprint and estimator
//   - error: errs.ErrInvalidInput for an empty dataset or invalid options,
//     errs.ErrDegenerateInput for zero-variance columns under PolicyFail
//
// Example:
//
//	ds, err := regression.NewDataset([]float64{1, 2, 3}, []float64{90, 117.5, 145})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model, err := regression.Fit(ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Predict(6)) // 227.5
func Fit(ds Dataset, opts ...FitOption) (*Model, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(ds) == 0 {
		return nil, fmt.Errorf("%w: cannot fit an empty dataset", errs.ErrInvalidInput)
	}

	var (
		slope float64
		r2    float64
		err   error
	)

	if cfg.Policy == PolicyFail {
		if slope, err = Slope(ds); err != nil {
			return nil, err
		}
	} else if constantX(ds) {
		slope = math.NaN()
	} else {
		num, den := slopeTerms(ds)
		slope = num / den
	}

	icpt := interceptOf(ds, slope)
	ssRes := residualSumOfSquares(ds, slope, icpt)
	mse := ssRes / float64(len(ds))

	if cfg.Policy == PolicyFail {
		if r2, err = RSquared(ds, slope, icpt); err != nil {
			return nil, err
		}
	} else if constantY(ds) {
		r2 = math.NaN()
	} else {
		r2 = 1 - ssRes/totalSumOfSquares(ds)
	}

	return &Model{
		Slope:       slope,
		Intercept:   icpt,
		MSE:         mse,
		RMSE:        math.Sqrt(mse),
		RSquared:    r2,
		N:           len(ds),
		Fingerprint: ds.Fingerprint(),
		Formula:     formatFormula(icpt, slope, cfg.FormulaPrecision),
		Estimator:   NewLinearEstimator(icpt, slope),
	}, nil
}
