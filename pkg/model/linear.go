package model

import (
	"math"

	"gonum.org/v1/gonum/mat"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/core"
)

// LinearRegression is ordinary least squares with an intercept, solved in
// closed form. Rank-deficient designs (for example one-hot blocks next to the
// intercept) get the minimum-norm solution.
type LinearRegression struct {
	W    []float64 // weights
	b    float64   // bias
	Rank int
	fit  bool
}

func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit centres X and y, solves the centred problem through a thin SVD and
// recovers the intercept from the means.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	if len(X) != len(y) {
		return apperrors.DimensionMismatch("X has %d rows, y has %d", len(X), len(y))
	}
	A, err := core.FromRows(X)
	if err != nil {
		return err
	}
	n, p := A.Dims()

	xMean := core.ColMeans(A)
	yMean := 0.0
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	Ac := core.Center(A, xMean)
	yc := make([]float64, n)
	for i, v := range y {
		yc[i] = v - yMean
	}

	var svd mat.SVD
	if ok := svd.Factorize(Ac, mat.SVDThin); !ok {
		return apperrors.New(apperrors.CodeInternalError, "SVD factorization failed")
	}
	rcond := math.Nextafter(1, 2) - 1
	rcond *= float64(max(n, p))
	m.Rank = svd.Rank(rcond)

	m.W = make([]float64, p)
	if m.Rank > 0 {
		var w mat.Dense
		svd.SolveTo(&w, mat.NewDense(n, 1, yc), m.Rank)
		for j := range m.W {
			m.W[j] = w.At(j, 0)
		}
	}

	m.b = yMean
	for j, mu := range xMean {
		m.b -= mu * m.W[j]
	}
	m.fit = true
	return nil
}

// Predict returns predictions for rows in X (rows of features).
func (m *LinearRegression) Predict(X [][]float64) ([]float64, error) {
	if !m.fit {
		return nil, apperrors.NotFitted("LinearRegression")
	}
	if len(X) == 0 {
		return nil, nil
	}
	A, err := core.FromRows(X)
	if err != nil {
		return nil, err
	}
	if _, c := A.Dims(); c != len(m.W) {
		return nil, apperrors.DimensionMismatch("model has %d weights, X has %d columns", len(m.W), c)
	}
	var out mat.VecDense
	out.MulVec(A, mat.NewVecDense(len(m.W), m.W))
	pred := make([]float64, len(X))
	for i := range pred {
		pred[i] = out.AtVec(i) + m.b
	}
	return pred, nil
}

// Bias returns the fitted intercept.
func (m *LinearRegression) Bias() float64 {
	return m.b
}
