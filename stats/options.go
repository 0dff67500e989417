package stats

// DefaultTolerance is the relative threshold below which a prediction-error
// variance, scaled by γ(0), is treated as zero.
const DefaultTolerance = 1e-10

// Option configures the innovations and Durbin-Levinson recursions.
type Option func(*config)

type config struct {
	tol float64
}

// WithTolerance overrides DefaultTolerance. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.tol = tol
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
