package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goarma/timeseries"
)

// Covariance returns the sample autocovariance of the series at each lag:
//
//	γ(ℓ) = 1/D · Σ_{i=0}^{n-ℓ-1} (x_i - x̄)(x_{i+ℓ} - x̄)
//
// with D = n when biased is set and D = n-1 otherwise. The mean is taken
// over the whole series once for all lags. Each lag must lie in [0, n).
func Covariance(series *timeseries.Series, lags []int, biased bool) ([]float64, error) {
	x := series.Values
	n := len(x)
	if n == 0 || (!biased && n < 2) {
		return nil, fmt.Errorf("%w: %d observations", ErrTooShort, n)
	}
	for _, l := range lags {
		if l < 0 || l >= n {
			return nil, fmt.Errorf("%w: lag %d for series of length %d", ErrInvalidLag, l, n)
		}
	}

	mean := stat.Mean(x, nil)
	div := float64(n - 1)
	if biased {
		div = float64(n)
	}

	out := make([]float64, len(lags))
	for idx, l := range lags {
		var sum float64
		for i := 0; i < n-l; i++ {
			sum += (x[i] - mean) * (x[i+l] - mean)
		}
		out[idx] = sum / div
	}
	return out, nil
}

// Lags returns the lag set 0..maxLag.
func Lags(maxLag int) []int {
	if maxLag < 0 {
		return nil
	}
	lags := make([]int, maxLag+1)
	for i := range lags {
		lags[i] = i
	}
	return lags
}

// autocovariances returns the unbiased γ(0..order) after checking that the
// series supports the order.
func autocovariances(series *timeseries.Series, order int) ([]float64, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if n := series.Len(); order >= n {
		return nil, fmt.Errorf("%w: order %d needs more than %d observations", ErrInvalidOrder, order, n)
	}
	gamma, err := Covariance(series, Lags(order), false)
	if err != nil {
		return nil, err
	}
	if !(gamma[0] > 0) {
		return nil, fmt.Errorf("%w: series has zero variance", ErrIllConditioned)
	}
	return gamma, nil
}
