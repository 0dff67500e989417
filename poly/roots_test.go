package poly

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRoots(t *testing.T, want, got []complex128) {
	t.Helper()
	require.Len(t, got, len(want))

	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if !used[i] && cmplx.Abs(w-g) < 1e-6 {
				used[i] = true
				found = true
				break
			}
		}
		assert.True(t, found, "root %v not found in %v", w, got)
	}
}

func TestRoots(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		want   []complex128
	}{
		{"quadratic", []float64{1, -3, 2}, []complex128{1, 2}},
		{"scaled", []float64{2, -6, 4}, []complex128{1, 2}},
		{"complex pair", []float64{1, 0, 1}, []complex128{1i, -1i}},
		{"linear", []float64{2, 1}, []complex128{-0.5}},
		{"leading zeros", []float64{0, 0, 1, -1}, []complex128{1}},
		{"trailing zeros", []float64{1, -1, 0, 0}, []complex128{1, 0, 0}},
		{"double root", []float64{1, -4, 4}, []complex128{2, 2}},
		{"constant", []float64{5}, []complex128{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Roots(tt.coeffs)
			require.NoError(t, err)
			assertRoots(t, tt.want, got)
		})
	}
}

func TestRootsDegenerate(t *testing.T) {
	got, err := Roots(nil)
	assert.NoError(t, err)
	assert.Empty(t, got)

	_, err = Roots([]float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrZeroPolynomial)
}

func TestRootsDoNotModifyInput(t *testing.T) {
	coeffs := []float64{0, 1, -3, 2, 0}
	_, err := Roots(coeffs)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, -3, 2, 0}, coeffs)
}

func TestModuli(t *testing.T) {
	got := Moduli([]complex128{3 + 4i, -2, 0})
	assert.InDeltaSlice(t, []float64{5, 2, 0}, got, 1e-12)
}

func TestOutsideUnitCircle(t *testing.T) {
	tests := []struct {
		name  string
		roots []complex128
		want  bool
	}{
		{"all modulus two", []complex128{2, -2, 2i, cmplx.Rect(2, 1)}, true},
		{"one inside", []complex128{2, 0.5}, false},
		{"on circle", []complex128{1i}, false},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutsideUnitCircle(tt.roots))
		})
	}
}
