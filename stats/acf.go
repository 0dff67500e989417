package stats

import (
	"github.com/sartorproj/goarma/timeseries"
)

// ACF calculates the Autocorrelation Function for the given series.
// Returns ACF values for lags 0 to maxLag, or nil for a constant series.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	gamma, err := Covariance(series, Lags(maxLag), true)
	if err != nil || gamma[0] == 0 {
		return nil
	}

	acf := make([]float64, len(gamma))
	for k, g := range gamma {
		acf[k] = g / gamma[0]
	}
	return acf
}

// PACF calculates the Partial Autocorrelation Function from the diagonal of
// the Durbin-Levinson recursion.
// Returns PACF values for lags 0 to maxLag, with PACF(0) = 1.
func PACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil
	}

	dl, err := DurbinLevinson(series, maxLag)
	if err != nil {
		return nil
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0
	for k := 1; k <= maxLag; k++ {
		pacf[k] = dl.Weights.At(k-1, k-1)
	}
	return pacf
}
