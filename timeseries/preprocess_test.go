package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name     string
		values   []float64
		window   int
		expected []float64
	}{
		{"single gap", []float64{1, nan, 3}, 1, []float64{1, 2, 3}},
		{"even window widened", []float64{1, 2, nan, 4, 5, 6, 100}, 2, []float64{1, 2, 3.6, 4, 5, 6, 100}},
		{"stops at next gap", []float64{1, nan, 5, nan, 9}, 3, []float64{1, 3, 5, 4.5, 9}},
		{"window clipped to length", []float64{1, nan}, 5, []float64{1, 1}},
		{"no gaps", []float64{1, 2, 3}, 1, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.values).Interpolate(tt.window)
			assert.InDeltaSlice(t, tt.expected, got.Values, 1e-12)
		})
	}
}

func TestInterpolateWithoutNeighbours(t *testing.T) {
	got := New([]float64{math.NaN(), math.NaN(), 5}).Interpolate(1)

	require.Len(t, got.Values, 3)
	assert.True(t, math.IsNaN(got.Values[0]))
	assert.Equal(t, 5.0, got.Values[1])
	assert.Equal(t, 5.0, got.Values[2])
}

func TestInterpolateAllMissing(t *testing.T) {
	got := New([]float64{math.NaN(), math.NaN()}).Interpolate(3)
	require.Len(t, got.Values, 2)
	assert.True(t, math.IsNaN(got.Values[0]))
	assert.True(t, math.IsNaN(got.Values[1]))
}

func TestInterpolateLeavesInput(t *testing.T) {
	values := []float64{1, math.NaN(), 3}
	s := New(values)
	filled := s.Interpolate(1)

	assert.True(t, math.IsNaN(values[1]))
	assert.False(t, filled.HasMissing())
}

func TestLaggedMatrix(t *testing.T) {
	X, y, err := New([]float64{1, 2, 3, 4, 5}).LaggedMatrix(2)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2}, {2, 3}, {3, 4}}, X)
	assert.Equal(t, []float64{3, 4, 5}, y)
}

func TestLaggedMatrixInvalid(t *testing.T) {
	s := New([]float64{1, 2, 3})
	for _, p := range []int{0, -1, 3, 4} {
		_, _, err := s.LaggedMatrix(p)
		assert.ErrorIs(t, err, ErrInvalidLag, "p=%d", p)
	}
}

func TestDetrend(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = 2 + 0.5*float64(i)
	}
	s := NewNamed("linear", values)

	trend, err := Detrend(s)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, trend.Bias, 1e-9)
	assert.InDelta(t, 0.5, trend.Weight, 1e-9)
	assert.InDelta(t, 7.0, trend.At(10), 1e-9)

	residual := trend.Remove(s)
	assert.Equal(t, "linear_detrended", residual.Name)
	for i, v := range residual.Values {
		assert.InDelta(t, 0.0, v, 1e-9, "index %d", i)
	}
}

func TestDetrendNoisy(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 10 - 0.3*float64(i) + float64(i%5-2)
	}

	trend, err := Detrend(New(values))
	require.NoError(t, err)
	assert.InDelta(t, -0.3, trend.Weight, 0.02)
}

func TestDetrendTooShort(t *testing.T) {
	_, err := Detrend(New([]float64{1}))
	assert.ErrorIs(t, err, ErrTooShort)
}
