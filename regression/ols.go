// Package regression implements the ordinary least-squares fitter used for
// trend removal and regression-based AR estimation.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RankTolerance is the relative cutoff, on the diagonal of R and on the
// singular values, below which the design matrix is treated as rank deficient.
const RankTolerance = 1e-12

var (
	// ErrDimensionMismatch is returned when X and y disagree in shape.
	ErrDimensionMismatch = errors.New("regression: dimension mismatch")
	// ErrEmpty is returned when there is nothing to fit.
	ErrEmpty = errors.New("regression: empty design matrix")
	// ErrSingular is returned when no least-squares solution could be computed.
	ErrSingular = errors.New("regression: singular design matrix")
)

// Linear is a fitted linear model y = Intercept + Coefs·x.
type Linear struct {
	Intercept float64
	Coefs     []float64
}

// Fit estimates an intercept and one coefficient per column of X by ordinary
// least squares. Rows of X are samples, columns are features.
//
// Full-rank designs are solved through a QR factorization. If QR reports the
// system as singular or badly conditioned the minimum-norm solution from the
// SVD is used instead.
func Fit(X [][]float64, y []float64) (*Linear, error) {
	n := len(X)
	if n == 0 || len(X[0]) == 0 {
		return nil, ErrEmpty
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d rows but %d targets", ErrDimensionMismatch, n, len(y))
	}

	k := len(X[0])
	design := mat.NewDense(n, k+1, nil)
	for i, row := range X {
		if len(row) != k {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrDimensionMismatch, i, len(row), k)
		}
		design.Set(i, 0, 1)
		for j, v := range row {
			design.Set(i, j+1, v)
		}
	}
	target := mat.NewDense(n, 1, append([]float64(nil), y...))

	beta, err := solveQR(design, target)
	if err != nil {
		beta, err = solveSVD(design, target)
		if err != nil {
			return nil, err
		}
	}

	coefs := make([]float64, k)
	for j := range coefs {
		coefs[j] = beta.At(j+1, 0)
	}
	return &Linear{Intercept: beta.At(0, 0), Coefs: coefs}, nil
}

func solveQR(design, target *mat.Dense) (*mat.Dense, error) {
	r, c := design.Dims()
	if r < c {
		return nil, ErrSingular
	}
	var qr mat.QR
	qr.Factorize(design)

	var rf mat.Dense
	qr.RTo(&rf)
	var largest float64
	for i := 0; i < c; i++ {
		largest = math.Max(largest, math.Abs(rf.At(i, i)))
	}
	for i := 0; i < c; i++ {
		if math.Abs(rf.At(i, i)) <= RankTolerance*largest {
			return nil, ErrSingular
		}
	}

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, target); err != nil {
		return nil, err
	}
	return &beta, nil
}

func solveSVD(design, target *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(design, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: SVD factorization failed", ErrSingular)
	}

	rank := svd.Rank(RankTolerance)
	if rank == 0 {
		return nil, fmt.Errorf("%w: design matrix is numerically zero", ErrSingular)
	}

	var beta mat.Dense
	svd.SolveTo(&beta, target, rank)
	return &beta, nil
}

// Predict evaluates the model on every row of X.
func (l *Linear) Predict(X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(l.Coefs) {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrDimensionMismatch, i, len(row), len(l.Coefs))
		}
		out[i] = l.Intercept + floats.Dot(l.Coefs, row)
	}
	return out, nil
}

// Residuals returns y - Predict(X).
func (l *Linear) Residuals(X [][]float64, y []float64) ([]float64, error) {
	if len(X) != len(y) {
		return nil, fmt.Errorf("%w: %d rows but %d targets", ErrDimensionMismatch, len(X), len(y))
	}
	pred, err := l.Predict(X)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(y))
	floats.SubTo(res, y, pred)
	return res, nil
}
