// Package arma implements ARMA(p,q) estimation through the innovations
// algorithm and the Durbin-Levinson recursion.
package arma

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goarma/poly"
	"github.com/sartorproj/goarma/stats"
	"github.com/sartorproj/goarma/timeseries"
)

var (
	// ErrUntrained is returned when a model is used before Train succeeded.
	ErrUntrained = errors.New("arma: model must be trained first")
	// ErrInsufficientHistory is returned when a forecast is requested from
	// fewer than p+q+1 observations.
	ErrInsufficientHistory = errors.New("arma: insufficient history")
	// ErrInvalidHorizon is returned for a forecast horizon below 1.
	ErrInvalidHorizon = errors.New("arma: horizon must be at least 1")
)

// Order represents ARMA model order (p, q).
type Order struct {
	P int // AR order
	Q int // MA order
}

func (o Order) String() string {
	return fmt.Sprintf("ARMA(%d,%d)", o.P, o.Q)
}

// State tells whether a model carries estimated parameters.
type State int

const (
	Untrained State = iota
	Trained
)

func (s State) String() string {
	switch s {
	case Untrained:
		return "untrained"
	case Trained:
		return "trained"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Params holds the estimates of a trained model.
//
// ARRoots and MARoots hold p and q roots unless the highest-order
// coefficient is exactly zero. The polynomial then has lower degree and its
// root at infinity is omitted, so the slices are shorter.
type Params struct {
	Order    Order
	Phis     []float64    // AR coefficients φ_1..φ_p
	Thetas   []float64    // MA coefficients θ_1..θ_q
	Psis     []float64    // innovations coefficients at order p+q
	ARRoots  []complex128 // roots of 1 - φ_1 z - ... - φ_p z^p
	MARoots  []complex128 // roots of 1 + θ_1 z + ... + θ_q z^q
	Variance float64      // one-step prediction-error variance at order p+q
}

func (p Params) clone() Params {
	return Params{
		Order:    p.Order,
		Phis:     slices.Clone(p.Phis),
		Thetas:   slices.Clone(p.Thetas),
		Psis:     slices.Clone(p.Psis),
		ARRoots:  slices.Clone(p.ARRoots),
		MARoots:  slices.Clone(p.MARoots),
		Variance: p.Variance,
	}
}

// Model is an ARMA(p,q) estimator. A Model is not safe for concurrent
// Train calls; once trained it may be shared by readers.
type Model struct {
	Order Order

	fit       *Params // nil until Train succeeds
	logger    *slog.Logger
	statsOpts []stats.Option
}

func (o Order) validate() error {
	if o.P < 0 || o.Q < 0 || o.P+o.Q == 0 {
		return fmt.Errorf("%w: %s", stats.ErrInvalidOrder, o)
	}
	return nil
}

// New creates an untrained ARMA(p,q) model. Both orders must be
// non-negative and at least one of them positive.
func New(p, q int, opts ...Option) (*Model, error) {
	if err := (Order{P: p, Q: q}).validate(); err != nil {
		return nil, err
	}
	m := &Model{
		Order:  Order{P: p, Q: q},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// State reports whether the model has been trained.
func (m *Model) State() State {
	if m.fit == nil {
		return Untrained
	}
	return Trained
}

// Train estimates the model from the series.
//
// The innovations algorithm at order p+q gives the combined coefficients
// ψ. The AR coefficients are the order-p Durbin-Levinson coefficients of ψ
// treated as a series; for a pure AR model (q = 0) the recursion runs on
// the observations directly. The MA coefficients follow from
//
//	θ_i = ψ_{i+1} - Σ_k φ_k ψ_{i-k},  ψ_0 = 1.
//
// On error the previously trained state, if any, is kept.
func (m *Model) Train(series *timeseries.Series) error {
	order := m.Order
	if err := order.validate(); err != nil {
		return err
	}
	p, q := order.P, order.Q

	inno, err := stats.Innovations(series, p+q, m.statsOpts...)
	if err != nil {
		return fmt.Errorf("arma: innovations at order %d: %w", p+q, err)
	}
	psis := inno.Last()

	phis, err := m.arCoefficients(order, series, psis)
	if err != nil {
		return err
	}
	thetas := maCoefficients(psis, phis, q)

	arRoots, err := poly.Roots(arPolynomial(phis))
	if err != nil {
		return fmt.Errorf("arma: AR roots: %w", err)
	}
	maRoots, err := poly.Roots(maPolynomial(thetas))
	if err != nil {
		return fmt.Errorf("arma: MA roots: %w", err)
	}

	m.fit = &Params{
		Order:    order,
		Phis:     phis,
		Thetas:   thetas,
		Psis:     psis,
		ARRoots:  arRoots,
		MARoots:  maRoots,
		Variance: inno.Variances[len(inno.Variances)-1],
	}

	m.log().Debug("arma model trained",
		"order", order.String(),
		"series", series.Name,
		"observations", series.Len(),
		"variance", m.fit.Variance,
		"causal", poly.OutsideUnitCircle(arRoots),
		"invertible", poly.OutsideUnitCircle(maRoots),
	)
	return nil
}

func (m *Model) log() *slog.Logger {
	if m.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return m.logger
}

func (m *Model) arCoefficients(order Order, series *timeseries.Series, psis []float64) ([]float64, error) {
	p := order.P
	if p == 0 {
		return []float64{}, nil
	}

	source := timeseries.New(psis)
	if order.Q == 0 {
		source = series
	}
	dl, err := stats.DurbinLevinson(source, p, m.statsOpts...)
	if err != nil {
		return nil, fmt.Errorf("arma: Durbin-Levinson at order %d: %w", p, err)
	}
	return dl.Last(), nil
}

// maCoefficients applies θ_i = ψ_{i+1} - Σ_{k=0}^{i} φ_k ψ_{i-k} with ψ_0 = 1
// and φ_k = 0 for k >= p.
func maCoefficients(psis, phis []float64, q int) []float64 {
	ext := make([]float64, 0, len(psis)+1)
	ext = append(ext, 1)
	ext = append(ext, psis...)

	thetas := make([]float64, q)
	for i := range thetas {
		var acc float64
		for k := 0; k <= i && k < len(phis); k++ {
			acc += phis[k] * ext[i-k]
		}
		thetas[i] = ext[i+1] - acc
	}
	return thetas
}

// arPolynomial returns 1 - φ_1 z - ... - φ_p z^p, highest degree first.
func arPolynomial(phis []float64) []float64 {
	coeffs := make([]float64, 0, len(phis)+1)
	for i := len(phis) - 1; i >= 0; i-- {
		coeffs = append(coeffs, -phis[i])
	}
	return append(coeffs, 1)
}

// maPolynomial returns 1 + θ_1 z + ... + θ_q z^q, highest degree first.
func maPolynomial(thetas []float64) []float64 {
	coeffs := make([]float64, 0, len(thetas)+1)
	for i := len(thetas) - 1; i >= 0; i-- {
		coeffs = append(coeffs, thetas[i])
	}
	return append(coeffs, 1)
}

// Params returns a copy of the trained parameters.
func (m *Model) Params() (Params, error) {
	if m.fit == nil {
		return Params{}, ErrUntrained
	}
	return m.fit.clone(), nil
}

// IsCausal reports whether every AR root lies strictly outside the unit
// circle. A model without AR part is causal.
func (m *Model) IsCausal() (bool, error) {
	if m.fit == nil {
		return false, ErrUntrained
	}
	return poly.OutsideUnitCircle(m.fit.ARRoots), nil
}

// IsInvertible reports whether every MA root lies strictly outside the unit
// circle. A model without MA part is invertible.
func (m *Model) IsInvertible() (bool, error) {
	if m.fit == nil {
		return false, ErrUntrained
	}
	return poly.OutsideUnitCircle(m.fit.MARoots), nil
}

// Forecast extends the series by steps values.
//
// The order is the one the model was trained with. The last p+q+1
// observations form a window, most recent first. Each new
// value is the dot product of ψ with the first p+q entries of the window
// and is pushed to its front. This is a truncated linear predictor built
// on the innovations coefficients alone, not the conditional expectation
// under the fitted ARMA structure.
func (m *Model) Forecast(series *timeseries.Series, steps int) ([]float64, error) {
	if m.fit == nil {
		return nil, ErrUntrained
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, steps)
	}
	psis := m.fit.Psis
	need := len(psis) + 1
	if series.Len() < need {
		return nil, fmt.Errorf("%w: %s needs %d observations, got %d", ErrInsufficientHistory, m.fit.Order, need, series.Len())
	}

	window := series.Tail(need).Reversed().Values
	for range steps {
		next := floats.Dot(psis, window[:len(psis)])
		window = slices.Insert(window, 0, next)
	}

	forecasts := slices.Clone(window[:steps])
	floats.Reverse(forecasts)
	return forecasts, nil
}
