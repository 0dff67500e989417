package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitExact(t *testing.T) {
	// y = 1 + 2a - 3b
	X := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 3}, {4, 1}}
	y := make([]float64, len(X))
	for i, row := range X {
		y[i] = 1 + 2*row[0] - 3*row[1]
	}

	fit, err := Fit(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fit.Intercept, 1e-10)
	assert.InDeltaSlice(t, []float64{2, -3}, fit.Coefs, 1e-10)

	pred, err := fit.Predict([][]float64{{10, 10}})
	require.NoError(t, err)
	assert.InDelta(t, -9.0, pred[0], 1e-9)
}

func TestFitLeastSquares(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}, {3}}
	y := []float64{1, 3, 2, 4}

	fit, err := Fit(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.3, fit.Intercept, 1e-10)
	assert.InDelta(t, 0.8, fit.Coefs[0], 1e-10)

	res, err := fit.Residuals(X, y)
	require.NoError(t, err)
	var sum float64
	for _, r := range res {
		sum += r
	}
	assert.InDelta(t, 0.0, sum, 1e-10)
}

func TestFitRankDeficient(t *testing.T) {
	// Second column duplicates the first; the minimum-norm solution splits
	// the slope evenly.
	X := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	y := []float64{1, 3, 5, 7}

	fit, err := Fit(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fit.Intercept, 1e-8)
	assert.InDeltaSlice(t, []float64{1, 1}, fit.Coefs, 1e-8)
}

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name string
		X    [][]float64
		y    []float64
		want error
	}{
		{"empty", nil, nil, ErrEmpty},
		{"no features", [][]float64{{}, {}}, []float64{1, 2}, ErrEmpty},
		{"target length", [][]float64{{1}, {2}}, []float64{1}, ErrDimensionMismatch},
		{"ragged rows", [][]float64{{1, 2}, {2}}, []float64{1, 2}, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.X, tt.y)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPredictDimensionMismatch(t *testing.T) {
	fit := &Linear{Intercept: 1, Coefs: []float64{2}}
	_, err := fit.Predict([][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
