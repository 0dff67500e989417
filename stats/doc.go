// Package stats provides autocovariance estimation and the classical
// prediction recursions used to fit AR, MA and ARMA models.
//
// # Autocovariance
//
// Sample autocovariances for any set of lags, biased (divisor n) or
// unbiased (divisor n-1):
//
//	gamma, err := stats.Covariance(series, stats.Lags(10), false)
//
// # Innovations Algorithm
//
// One-step predictor coefficients of an MA-type representation, order by
// order:
//
//	inno, err := stats.Innovations(series, 3)
//	theta := inno.Last()      // θ_{3,1..3}
//	v := inno.Variances       // prediction-error variance per order
//
// # Durbin-Levinson Recursion
//
// AR coefficients solving the Yule-Walker equations, order by order:
//
//	dl, err := stats.DurbinLevinson(series, 2)
//	phi := dl.Last()          // AR(2) coefficients
//
// Both recursions fail with ErrIllConditioned instead of dividing by a
// vanishing variance, and with ErrInvalidOrder when the series is too short
// for the requested order:
//
//	if errors.Is(err, stats.ErrIllConditioned) {
//	    // constant or degenerate series
//	}
//
// # Autocorrelation Functions
//
//	acf := stats.ACF(series, 20)
//	pacf := stats.PACF(series, 20)
package stats
