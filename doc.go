// Package goarma provides classical univariate time series estimation.
//
// GoARMA fits AR, MA and ARMA models through the innovations algorithm and
// the Durbin-Levinson recursion, and checks fitted models for causality and
// invertibility from the roots of their characteristic polynomials.
//
// # Features
//
//   - Sample autocovariance at arbitrary lags, biased or unbiased
//   - Innovations algorithm and Durbin-Levinson recursion
//   - ARMA(p,q) estimation, forecasting and stability diagnostics
//   - AR(p) estimation by least squares
//   - Interpolation of missing values, linear detrending and differencing
//
// # Quick Start
//
//	series := timeseries.New(values)
//	model, _ := arma.New(2, 1) // ARMA(2,1)
//	if err := model.Train(series); err != nil {
//	    return err
//	}
//	forecasts, _ := model.Forecast(series, 10)
//
// # Packages
//
//   - arma: ARMA and regression AR models
//   - stats: autocovariance, innovations, Durbin-Levinson, ACF and PACF
//   - timeseries: series type and preprocessing
//   - regression: ordinary least squares
//   - poly: polynomial roots
//
// # References
//
//   - Brockwell, P. J., & Davis, R. A. (2016). Introduction to Time Series and Forecasting
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
package goarma
