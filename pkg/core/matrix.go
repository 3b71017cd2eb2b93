package core

import (
	"gonum.org/v1/gonum/mat"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

// FromRows copies a row-major nested slice into a dense matrix.
// All rows must have the same length.
func FromRows(a [][]float64) (*mat.Dense, error) {
	r := len(a)
	if r == 0 {
		return nil, apperrors.New(apperrors.CodeEmptyDataset, "no rows")
	}
	c := len(a[0])
	if c == 0 {
		return nil, apperrors.InvalidArgument("rows have no columns")
	}
	data := make([]float64, 0, r*c)
	for i, row := range a {
		if len(row) != c {
			return nil, apperrors.DimensionMismatch("row %d has %d columns, want %d", i, len(row), c)
		}
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data), nil
}

// ColMeans returns the mean of every column of m.
func ColMeans(m mat.Matrix) []float64 {
	r, c := m.Dims()
	means := make([]float64, c)
	for j := 0; j < c; j++ {
		s := 0.0
		for i := 0; i < r; i++ {
			s += m.At(i, j)
		}
		means[j] = s / float64(r)
	}
	return means
}

// Center returns a copy of m with every column shifted by -means[j].
func Center(m mat.Matrix, means []float64) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 { return v - means[j] }, m)
	return out
}
