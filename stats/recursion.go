package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goarma/timeseries"
)

// Recursion holds the output of an order-by-order prediction recursion.
//
// Row i of Weights holds the coefficients of the order-(i+1) predictor in
// columns 0..i. Entries above the diagonal carry no meaning. Variances[i] is
// the one-step prediction-error variance at order i+1.
type Recursion struct {
	Weights   *mat.TriDense
	Variances []float64
}

// Order returns the highest order computed.
func (r *Recursion) Order() int {
	return len(r.Variances)
}

// Row returns a copy of the i+1 coefficients of the order-(i+1) predictor.
// It panics if i is out of range.
func (r *Recursion) Row(i int) []float64 {
	row := make([]float64, i+1)
	for j := range row {
		row[j] = r.Weights.At(i, j)
	}
	return row
}

// Last returns the coefficients at the highest order, or nil for order 0.
func (r *Recursion) Last() []float64 {
	if r.Order() == 0 {
		return nil
	}
	return r.Row(r.Order() - 1)
}

// Innovations runs the innovations algorithm on the series up to the given
// order and returns the innovation coefficients θ and the one-step
// prediction-error variances for orders 1..order.
//
// Order 0 yields an empty Recursion. ErrIllConditioned is returned as soon as
// a variance that is about to be used as a divisor falls to tol·γ(0) or below.
func Innovations(series *timeseries.Series, order int, opts ...Option) (*Recursion, error) {
	if order == 0 {
		return &Recursion{Variances: []float64{}}, nil
	}
	gamma, err := autocovariances(series, order)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	theta := mat.NewTriDense(order, mat.Lower, nil)
	v := make([]float64, order+1)
	v[0] = gamma[0]

	for i := 0; i < order; i++ {
		for j := 0; j <= i; j++ {
			if !(v[j] > cfg.tol*gamma[0]) {
				return nil, fmt.Errorf("%w: innovations variance %g at order %d", ErrIllConditioned, v[j], j)
			}
			var acc float64
			for k := 0; k < j; k++ {
				acc += theta.At(j-1, j-k-1) * theta.At(i, i-k) * v[k]
			}
			theta.SetTri(i, i-j, (gamma[i-j+1]-acc)/v[j])
		}

		var explained float64
		for j := 0; j <= i; j++ {
			c := theta.At(i, i-j)
			explained += c * c * v[j]
		}
		v[i+1] = gamma[0] - explained
	}

	return &Recursion{Weights: theta, Variances: v[1:]}, nil
}

// DurbinLevinson solves the Yule-Walker equations order by order and returns
// the AR coefficients φ and the one-step prediction-error variances for
// orders 1..order. The diagonal of Weights is the partial autocorrelation
// function at lags 1..order.
func DurbinLevinson(series *timeseries.Series, order int, opts ...Option) (*Recursion, error) {
	if order == 0 {
		return &Recursion{Variances: []float64{}}, nil
	}
	gamma, err := autocovariances(series, order)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	rho := func(k int) float64 { return gamma[k] / gamma[0] }

	phi := mat.NewTriDense(order, mat.Lower, nil)
	v := make([]float64, order)
	prev := gamma[0]

	for i := 0; i < order; i++ {
		diag := rho(1)
		if i > 0 {
			var num, den float64
			for k := 1; k <= i; k++ {
				w := phi.At(i-1, k-1)
				num += rho(i-k+1) * w
				den += rho(k) * w
			}
			den = 1 - den
			if !(den > cfg.tol) {
				return nil, fmt.Errorf("%w: Durbin-Levinson denominator %g at order %d", ErrIllConditioned, den, i+1)
			}
			diag = (rho(i+1) - num) / den
		}

		phi.SetTri(i, i, diag)
		for j := 0; j < i; j++ {
			phi.SetTri(i, j, phi.At(i-1, j)-diag*phi.At(i-1, i-j-1))
		}

		prev *= 1 - diag*diag
		v[i] = prev
	}

	return &Recursion{Weights: phi, Variances: v}, nil
}
