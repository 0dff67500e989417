package arma

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goarma/regression"
	"github.com/sartorproj/goarma/stats"
	"github.com/sartorproj/goarma/timeseries"
)

// AutoRegressive is an AR(p) model fitted by ordinary least squares on the
// lagged design matrix, with an intercept.
type AutoRegressive struct {
	P        int
	Bias     float64
	Weights  []float64 // coefficient of x[t-p+j] at column j
	Variance float64   // mean squared residual

	fit *regression.Linear
}

// NewAutoRegressive creates an untrained AR(p) model.
func NewAutoRegressive(p int) (*AutoRegressive, error) {
	if p < 1 {
		return nil, fmt.Errorf("%w: AR(%d)", stats.ErrInvalidOrder, p)
	}
	return &AutoRegressive{P: p}, nil
}

// Train fits the model to a design matrix with P columns, oldest lag first,
// and its targets.
func (a *AutoRegressive) Train(X [][]float64, y []float64) error {
	for i, row := range X {
		if len(row) != a.P {
			return fmt.Errorf("%w: row %d has %d lags, want %d", regression.ErrDimensionMismatch, i, len(row), a.P)
		}
	}
	fit, err := regression.Fit(X, y)
	if err != nil {
		return fmt.Errorf("arma: AR(%d) regression: %w", a.P, err)
	}
	res, err := fit.Residuals(X, y)
	if err != nil {
		return err
	}

	a.fit = fit
	a.Bias = fit.Intercept
	a.Weights = slices.Clone(fit.Coefs)
	a.Variance = floats.Dot(res, res) / float64(len(y))
	return nil
}

// TrainSeries frames the series with LaggedMatrix and fits it.
func (a *AutoRegressive) TrainSeries(series *timeseries.Series) error {
	X, y, err := series.LaggedMatrix(a.P)
	if err != nil {
		return err
	}
	return a.Train(X, y)
}

// Predict returns the one-step predictions for every row of X.
func (a *AutoRegressive) Predict(X [][]float64) ([]float64, error) {
	if a.fit == nil {
		return nil, ErrUntrained
	}
	return a.fit.Predict(X)
}

// Forecast iterates the fitted recurrence steps values past the end of the
// series, feeding each prediction back as an observation.
func (a *AutoRegressive) Forecast(series *timeseries.Series, steps int) ([]float64, error) {
	if a.fit == nil {
		return nil, ErrUntrained
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, steps)
	}
	if series.Len() < a.P {
		return nil, fmt.Errorf("%w: AR(%d) needs %d observations, got %d", ErrInsufficientHistory, a.P, a.P, series.Len())
	}

	window := series.Tail(a.P).Values
	out := make([]float64, steps)
	for h := range out {
		next := a.Bias + floats.Dot(a.Weights, window[len(window)-a.P:])
		out[h] = next
		window = append(window, next)
	}
	return out, nil
}
