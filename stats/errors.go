package stats

import (
	"errors"

	"github.com/sartorproj/goarma/timeseries"
)

var (
	// ErrInvalidOrder is returned for a negative order or an order the series
	// is too short to support.
	ErrInvalidOrder = errors.New("stats: invalid order")
	// ErrIllConditioned is returned when a prediction-error variance or a
	// recursion denominator is zero or close to it.
	ErrIllConditioned = errors.New("stats: ill-conditioned recursion")
	// ErrInvalidLag is returned for a lag outside [0, n).
	ErrInvalidLag = timeseries.ErrInvalidLag
	// ErrTooShort is returned when a series has too few observations.
	ErrTooShort = timeseries.ErrTooShort
)
