package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4.0, m.At(1, 1))

	_, err = FromRows(nil)
	assert.Equal(t, apperrors.CodeEmptyDataset, apperrors.Code(err))
	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.Equal(t, apperrors.CodeDimensionMismatch, apperrors.Code(err))
}

func TestCenter(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 10, 3, 30})
	means := ColMeans(m)
	assert.Equal(t, []float64{2, 20}, means)

	c := Center(m, means)
	assert.Equal(t, []float64{-1, -10, 1, 10}, c.RawMatrix().Data)
	assert.Equal(t, 1.0, m.At(0, 0), "input untouched")
}
