// Package poly finds the complex roots of real polynomials.
package poly

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrZeroPolynomial is returned for a polynomial whose coefficients are all zero.
	ErrZeroPolynomial = errors.New("poly: all coefficients are zero")
	// ErrNoConvergence is returned when the eigenvalue solver fails.
	ErrNoConvergence = errors.New("poly: eigenvalue decomposition did not converge")
)

// Roots returns the roots of the polynomial whose coefficients are given
// highest degree first, so {1, -3, 2} is z² - 3z + 2. Roots are repeated
// according to multiplicity and their count equals the degree.
//
// Leading zero coefficients are dropped. Trailing zeros contribute roots at
// the origin. The remaining roots are the eigenvalues of the companion
// matrix of the monic polynomial.
func Roots(coeffs []float64) ([]complex128, error) {
	start := 0
	for start < len(coeffs) && coeffs[start] == 0 {
		start++
	}
	if start == len(coeffs) {
		if len(coeffs) == 0 {
			return nil, nil
		}
		return nil, ErrZeroPolynomial
	}
	c := coeffs[start:]

	end := len(c)
	for end > 1 && c[end-1] == 0 {
		end--
	}
	zeros := len(c) - end
	c = c[:end]

	roots := make([]complex128, 0, len(c)-1+zeros)
	if deg := len(c) - 1; deg > 0 {
		companion := mat.NewDense(deg, deg, nil)
		for j := 0; j < deg; j++ {
			companion.Set(0, j, -c[j+1]/c[0])
		}
		for i := 1; i < deg; i++ {
			companion.Set(i, i-1, 1)
		}

		var eig mat.Eigen
		if ok := eig.Factorize(companion, mat.EigenNone); !ok {
			return nil, ErrNoConvergence
		}
		roots = append(roots, eig.Values(nil)...)
	}
	for i := 0; i < zeros; i++ {
		roots = append(roots, 0)
	}
	return roots, nil
}

// Moduli returns |r| for every root.
func Moduli(roots []complex128) []float64 {
	out := make([]float64, len(roots))
	for i, r := range roots {
		out[i] = cmplx.Abs(r)
	}
	return out
}

// OutsideUnitCircle reports whether every root has modulus strictly greater
// than one. It is true for an empty set of roots.
func OutsideUnitCircle(roots []complex128) bool {
	for _, r := range roots {
		if cmplx.Abs(r) <= 1 {
			return false
		}
	}
	return true
}
