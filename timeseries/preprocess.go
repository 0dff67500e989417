package timeseries

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goarma/regression"
)

var (
	// ErrInvalidLag is returned when a lag or lookback does not fit the series.
	ErrInvalidLag = errors.New("timeseries: lag out of range")
	// ErrTooShort is returned when a series has too few observations.
	ErrTooShort = errors.New("timeseries: series too short")
)

// Interpolate fills missing (NaN) observations with the mean of the finite
// observations within window positions on either side. An even window is
// widened to the next odd size and the window is clipped to the series
// length. The right edge of the window stops at the next missing value, and
// values filled earlier in the pass count as observations. A position with
// no finite neighbours stays NaN.
//
// The receiver is left untouched; a series without any finite value is
// returned as a copy.
func (s *Series) Interpolate(window int) *Series {
	out := s.Copy()
	n := len(out.Values)
	if n == 0 || !out.HasMissing() {
		return out
	}

	if window < 1 {
		window = 1
	}
	if window%2 == 0 {
		window++
	}
	if window > n {
		window = n
	}

	allMissing := true
	for _, v := range out.Values {
		if !math.IsNaN(v) {
			allMissing = false
			break
		}
	}
	if allMissing {
		return out
	}

	data := out.Values
	for i := range data {
		if !math.IsNaN(data[i]) {
			continue
		}
		start := max(0, i-window)
		end := min(n, i+window+1)
		for j := i + 1; j < end; j++ {
			if math.IsNaN(data[j]) {
				end = j
				break
			}
		}

		finite := make([]float64, 0, end-start)
		for _, v := range data[start:end] {
			if !math.IsNaN(v) {
				finite = append(finite, v)
			}
		}
		if len(finite) > 0 {
			data[i] = stat.Mean(finite, nil)
		}
	}

	return out
}

// LaggedMatrix frames the series as a supervised regression problem: row k
// of X holds the p observations preceding y[k] in chronological order, for
// targets x[p..n-1].
func (s *Series) LaggedMatrix(p int) ([][]float64, []float64, error) {
	n := len(s.Values)
	if p < 1 || p >= n {
		return nil, nil, fmt.Errorf("%w: lookback %d for series of length %d", ErrInvalidLag, p, n)
	}

	X := make([][]float64, 0, n-p)
	y := make([]float64, 0, n-p)
	for i := p; i < n; i++ {
		row := make([]float64, p)
		copy(row, s.Values[i-p:i])
		X = append(X, row)
		y = append(y, s.Values[i])
	}
	return X, y, nil
}

// Trend is a linear trend value = Bias + Weight*t over the time index t.
type Trend struct {
	Bias   float64
	Weight float64
}

// At returns the trend value at time index t.
func (tr Trend) At(t int) float64 {
	return tr.Bias + tr.Weight*float64(t)
}

// Remove subtracts the trend from the series and returns the residual series.
func (tr Trend) Remove(s *Series) *Series {
	out := s.Copy()
	for i := range out.Values {
		out.Values[i] -= tr.At(i)
	}
	out.Name = s.Name + "_detrended"
	return out
}

// Detrend fits a least-squares line of the observations against their time
// index 0..n-1.
func Detrend(s *Series) (Trend, error) {
	n := len(s.Values)
	if n < 2 {
		return Trend{}, fmt.Errorf("%w: need at least 2 observations to fit a trend, got %d", ErrTooShort, n)
	}

	X := make([][]float64, n)
	for i := range X {
		X[i] = []float64{float64(i)}
	}

	fit, err := regression.Fit(X, s.Values)
	if err != nil {
		return Trend{}, fmt.Errorf("fit trend: %w", err)
	}
	return Trend{Bias: fit.Intercept, Weight: fit.Coefs[0]}, nil
}
