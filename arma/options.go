package arma

import (
	"log/slog"

	"github.com/sartorproj/goarma/stats"
)

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for training records. Models log nothing
// by default.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithTolerance sets the ill-conditioning threshold of the underlying
// recursions. See stats.DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(m *Model) {
		m.statsOpts = append(m.statsOpts, stats.WithTolerance(tol))
	}
}
