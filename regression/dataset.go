package regression

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/hash"
)

// DataPoint is a single observation: X is the independent variable (for
// example a month index) and Y the observed response.
type DataPoint struct {
	X float64
	Y float64
}

// Dataset is an ordered sequence of observations.
//
// Order is significant: every statistic sums in dataset order, so two datasets
// holding the same points in a different order may produce results that differ
// in the last bits. A Dataset is never modified by this package.
type Dataset []DataPoint

// NewDataset builds a Dataset from an x column and a y column.
//
// The columns are copied. NewDataset fails with errs.ErrInvalidInput when the
// columns are empty, differ in length, or contain NaN or infinite values.
func NewDataset(xs, ys []float64) (Dataset, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values vs %d y values", errs.ErrInvalidInput, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: dataset has no points", errs.ErrInvalidInput)
	}

	ds := make(Dataset, len(xs))
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, fmt.Errorf("%w: point %d (%g, %g) is not finite", errs.ErrInvalidInput, i, xs[i], ys[i])
		}
		ds[i] = DataPoint{X: xs[i], Y: ys[i]}
	}

	return ds, nil
}

// Len returns the number of points in the dataset.
func (ds Dataset) Len() int {
	return len(ds)
}

// Xs returns a copy of the x column.
func (ds Dataset) Xs() []float64 {
	xs := make([]float64, len(ds))
	for i, p := range ds {
		xs[i] = p.X
	}

	return xs
}

// Ys returns a copy of the y column.
func (ds Dataset) Ys() []float64 {
	ys := make([]float64, len(ds))
	for i, p := range ds {
		ys[i] = p.Y
	}

	return ys
}

// All returns an iterator over the (x, y) pairs in dataset order.
func (ds Dataset) All() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for _, p := range ds {
			if !yield(p.X, p.Y) {
				return
			}
		}
	}
}

// Fingerprint returns the xxHash64 of the dataset's values.
//
// Datasets that are equal bit for bit, in the same order, share a fingerprint.
// It identifies a dataset by value only.
func (ds Dataset) Fingerprint() uint64 {
	return hash.Pairs(ds.All())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
