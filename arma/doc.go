// Package arma estimates ARMA(p,q) models from a single series.
//
// Estimation follows the classical recursions: the innovations algorithm at
// order p+q yields the combined coefficients ψ, the Durbin-Levinson
// recursion recovers the AR coefficients φ, and the MA coefficients θ follow
// by deconvolution. Stability is judged from the roots of the AR and MA
// polynomials.
//
// # Basic Usage
//
//	model, err := arma.New(2, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := model.Train(series); err != nil {
//	    log.Fatal(err)
//	}
//
//	causal, _ := model.IsCausal()
//	invertible, _ := model.IsInvertible()
//	forecasts, _ := model.Forecast(series, 10)
//
// A model reports ErrUntrained until Train succeeds. Numeric failures from
// the recursions surface as stats.ErrIllConditioned or stats.ErrInvalidOrder.
//
// # Regression AR models
//
// AutoRegressive fits an AR(p) model with intercept by least squares on the
// lagged design matrix:
//
//	ar, _ := arma.NewAutoRegressive(3)
//	err := ar.TrainSeries(series)
//
// # Many Series
//
// TrainAll fits independent series concurrently:
//
//	models, err := arma.TrainAll(ctx, arma.Order{P: 1, Q: 1}, series)
package arma
