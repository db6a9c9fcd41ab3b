package regression

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/linfit/errs"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"ascending", []float64{1, 2, 3, 4, 5}, 3.0},
		{"all equal", []float64{9, 9, 9, 9, 9}, 9.0},
		{"single value", []float64{5}, 5.0},
		{"negatives", []float64{-2, -4, -6}, -4.0},
		{"mixed signs", []float64{-2, 4}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMeanEmpty(t *testing.T) {
	for _, values := range [][]float64{nil, {}} {
		_, err := Mean(values)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	}
}

func TestPredict(t *testing.T) {
	assert.Equal(t, 20.0, Predict(10, 5, 2))
	assert.Equal(t, 10.0, Predict(10, 5, 0))
	assert.Equal(t, 0.0, Predict(10, -5, 2))
}

func TestSlope(t *testing.T) {
	t.Run("perfectly linear", func(t *testing.T) {
		slope, err := Slope(Dataset{{1, 2}, {2, 4}, {3, 6}})
		require.NoError(t, err)
		assert.InDelta(t, 2.0, slope, 1e-6)
	})

	t.Run("with offset", func(t *testing.T) {
		slope, err := Slope(Dataset{{1, 3}, {2, 5}, {3, 7}})
		require.NoError(t, err)
		assert.InDelta(t, 2.0, slope, 1e-6)
	})

	t.Run("negative", func(t *testing.T) {
		slope, err := Slope(Dataset{{0, 10}, {1, 7}, {2, 4}, {3, 1}})
		require.NoError(t, err)
		assert.InDelta(t, -3.0, slope, 1e-12)
	})

	t.Run("flat response", func(t *testing.T) {
		slope, err := Slope(Dataset{{1, 5}, {2, 5}, {3, 5}})
		require.NoError(t, err)
		assert.Equal(t, 0.0, slope)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Slope(nil)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("single point", func(t *testing.T) {
		_, err := Slope(Dataset{{4, 2}})
		require.ErrorIs(t, err, errs.ErrDegenerateInput)
	})

	t.Run("all x equal", func(t *testing.T) {
		_, err := Slope(Dataset{{2, 1}, {2, 3}, {2, 8}})
		require.ErrorIs(t, err, errs.ErrDegenerateInput)
		require.NotErrorIs(t, err, errs.ErrInvalidInput)
	})

	// the mean of three copies of these values is not bit-equal to the value
	for _, x := range []float64{0.1, 0.7, 3.3} {
		t.Run(fmt.Sprintf("all x equal %g", x), func(t *testing.T) {
			slope, err := Slope(Dataset{{x, 1}, {x, 2}, {x, 9}})
			require.ErrorIs(t, err, errs.ErrDegenerateInput)
			require.Zero(t, slope)
		})
	}
}

func TestIntercept(t *testing.T) {
	t.Run("with offset", func(t *testing.T) {
		ds := Dataset{{1, 3}, {2, 5}, {3, 7}}
		slope, err := Slope(ds)
		require.NoError(t, err)

		icpt, err := Intercept(ds, slope)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, icpt, 1e-6)
	})

	t.Run("through origin", func(t *testing.T) {
		icpt, err := Intercept(Dataset{{1, 2}, {2, 4}, {3, 6}}, 2)
		require.NoError(t, err)
		assert.Equal(t, 0.0, icpt)
	})

	t.Run("uses supplied slope", func(t *testing.T) {
		// x̄ = 2, ȳ = 4
		icpt, err := Intercept(Dataset{{1, 2}, {2, 4}, {3, 6}}, 10)
		require.NoError(t, err)
		assert.Equal(t, -16.0, icpt)
	})

	t.Run("single point is defined", func(t *testing.T) {
		icpt, err := Intercept(Dataset{{4, 2}}, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 0.0, icpt)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Intercept(Dataset{}, 1)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestMSEAndRSquaredPerfectFit(t *testing.T) {
	ds := Dataset{{1, 2}, {2, 4}, {3, 6}}

	slope, err := Slope(ds)
	require.NoError(t, err)
	icpt, err := Intercept(ds, slope)
	require.NoError(t, err)

	mse, err := MSE(ds, slope, icpt)
	require.NoError(t, err)
	assert.Less(t, mse, 1e-6)

	r2, err := RSquared(ds, slope, icpt)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r2, 1e-6)
}

func TestMSE(t *testing.T) {
	t.Run("known residuals", func(t *testing.T) {
		// line y = x gives residuals 1, -1, 2
		mse, err := MSE(Dataset{{0, 1}, {1, 0}, {2, 4}}, 1, 0)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, mse, 1e-12)
	})

	t.Run("single point", func(t *testing.T) {
		mse, err := MSE(Dataset{{1, 5}}, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 9.0, mse)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := MSE(nil, 1, 0)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestRMSE(t *testing.T) {
	rmse, err := RMSE(Dataset{{1, 5}}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, rmse)

	_, err = RMSE(nil, 0, 0)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestRSquared(t *testing.T) {
	t.Run("mean line scores zero", func(t *testing.T) {
		// ȳ = 2, so the horizontal line y = 2 explains nothing
		r2, err := RSquared(Dataset{{1, 1}, {2, 2}, {3, 3}}, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 0.0, r2)
	})

	t.Run("worse than mean is negative", func(t *testing.T) {
		r2, err := RSquared(Dataset{{1, 1}, {2, 2}, {3, 3}}, -1, 10)
		require.NoError(t, err)
		assert.Less(t, r2, 0.0)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := RSquared(Dataset{}, 1, 0)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("single point", func(t *testing.T) {
		_, err := RSquared(Dataset{{4, 2}}, 0, 2)
		require.ErrorIs(t, err, errs.ErrDegenerateInput)
	})

	t.Run("constant response", func(t *testing.T) {
		_, err := RSquared(Dataset{{1, 5}, {2, 5}, {3, 5}}, 0, 5)
		require.ErrorIs(t, err, errs.ErrDegenerateInput)
	})

	for _, y := range []float64{0.1, 0.7, 3.3} {
		t.Run(fmt.Sprintf("constant response %g", y), func(t *testing.T) {
			r2, err := RSquared(Dataset{{1, y}, {2, y}, {3, y}}, 0, y)
			require.ErrorIs(t, err, errs.ErrDegenerateInput)
			require.Zero(t, r2)
		})
	}
}

func TestResiduals(t *testing.T) {
	assert.Nil(t, Residuals(nil, 1, 0))
	assert.Equal(t, []float64{1, -1, 2}, Residuals(Dataset{{0, 1}, {1, 0}, {2, 4}}, 1, 0))
}

func TestSinglePointBoundary(t *testing.T) {
	ds := Dataset{{7, 3}}

	m, err := Mean(ds.Xs())
	require.NoError(t, err)
	assert.Equal(t, 7.0, m)

	_, err = Slope(ds)
	require.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = RSquared(ds, 0, 3)
	require.ErrorIs(t, err, errs.ErrDegenerateInput)
}

func TestIdempotence(t *testing.T) {
	ds := Dataset{{0.1, 1.7}, {0.7, 2.3}, {1.3, 2.2}, {2.9, 4.1}, {3.3, 3.7}}

	bits := func(v float64, err error) uint64 {
		require.NoError(t, err)
		return math.Float64bits(v)
	}

	require.Equal(t, bits(Mean(ds.Ys())), bits(Mean(ds.Ys())))
	require.Equal(t, bits(Slope(ds)), bits(Slope(ds)))

	slope, err := Slope(ds)
	require.NoError(t, err)
	require.Equal(t, bits(Intercept(ds, slope)), bits(Intercept(ds, slope)))

	icpt, err := Intercept(ds, slope)
	require.NoError(t, err)
	require.Equal(t, math.Float64bits(Predict(icpt, slope, 6)), math.Float64bits(Predict(icpt, slope, 6)))
	require.Equal(t, bits(MSE(ds, slope, icpt)), bits(MSE(ds, slope, icpt)))
	require.Equal(t, bits(RSquared(ds, slope, icpt)), bits(RSquared(ds, slope, icpt)))
}

func TestColumnMeansMatchMean(t *testing.T) {
	ds := Dataset{{0.1, 1.7}, {0.7, 2.3}, {1.3, 2.2}, {2.9, 4.1}}

	meanX, meanY := columnMeans(ds)

	wantX, err := Mean(ds.Xs())
	require.NoError(t, err)
	wantY, err := Mean(ds.Ys())
	require.NoError(t, err)

	require.Equal(t, math.Float64bits(wantX), math.Float64bits(meanX))
	require.Equal(t, math.Float64bits(wantY), math.Float64bits(meanY))
}
