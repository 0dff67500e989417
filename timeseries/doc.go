// Package timeseries provides the series type and the preprocessing steps
// applied before estimation.
//
// # Creating a Series
//
//	series := timeseries.New([]float64{100, 102, 105, 103, 108, 110})
//
// # Missing Values
//
// Fill NaN observations with a local mean:
//
//	filled := series.Interpolate(3)
//
// # Trend Removal
//
//	trend, err := timeseries.Detrend(series)
//	residual := trend.Remove(series)
//
//	diff := series.Diff()            // first difference
//	sdiff := series.SeasonalDiff(12) // seasonal difference
//
// # Regression Framing
//
// Build the lagged design matrix of an AR(p) regression:
//
//	X, y, err := series.LaggedMatrix(3)
package timeseries
