package dataprep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/pipeline"
)

func numBlock(t *testing.T, cols map[string][]float64, order ...string) *pipeline.Block {
	t.Helper()
	b := pipeline.NewBlock(len(cols[order[0]]))
	for _, n := range order {
		require.NoError(t, b.AddNum(n, cols[n]))
	}
	return b
}

func strBlock(t *testing.T, name string, col []string) *pipeline.Block {
	t.Helper()
	b := pipeline.NewBlock(len(col))
	require.NoError(t, b.AddStr(name, col))
	return b
}

func TestMedianImputer(t *testing.T) {
	train := numBlock(t, map[string][]float64{
		"hp":  {100, math.NaN(), 300, 200},
		"cyl": {math.NaN(), math.NaN(), math.NaN(), math.NaN()},
	}, "hp", "cyl")

	imp := NewMedianImputer()
	require.NoError(t, imp.Fit(train))
	assert.Equal(t, []float64{200, 0}, imp.Medians)

	test := numBlock(t, map[string][]float64{
		"hp":  {math.NaN(), 50},
		"cyl": {4, math.NaN()},
	}, "hp", "cyl")
	out, err := imp.Transform(test)
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 50}, out.Num[0], "median frozen from training rows")
	assert.Equal(t, []float64{4, 0}, out.Num[1])
	assert.True(t, math.IsNaN(test.Num[0][0]), "input untouched")
}

func TestModeImputer(t *testing.T) {
	imp := NewModeImputer()
	_, err := imp.Transform(strBlock(t, "size", []string{"x"}))
	assert.Equal(t, apperrors.CodeNotFitted, apperrors.Code(err))

	require.NoError(t, imp.Fit(strBlock(t, "size", []string{"Compact", "", "Large", "Compact"})))
	out, err := imp.Transform(strBlock(t, "size", []string{"", "Midsize"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Compact", "Midsize"}, out.Str[0])
}

func TestOneHotEncoder(t *testing.T) {
	enc := NewOneHotEncoder()
	require.NoError(t, enc.Fit(strBlock(t, "size", []string{"Large", "Compact", "Large", ""})))
	assert.Equal(t, [][]string{{"Compact", "Large"}}, enc.Categories)
	assert.Equal(t, []string{"size_Compact", "size_Large"}, enc.FeatureNames())

	out, err := enc.Transform(strBlock(t, "size", []string{"Compact", "Midsize", "Large", ""}))
	require.NoError(t, err)
	assert.Empty(t, out.StrNames)
	assert.Equal(t, []string{"size_Compact", "size_Large"}, out.NumNames)
	assert.Equal(t, [][]float64{
		{1, 0},
		{0, 0}, // unseen
		{0, 1},
		{0, 0}, // missing
	}, out.Matrix())
}

func TestOneHotKeepsNumericColumns(t *testing.T) {
	b := pipeline.NewBlock(2)
	require.NoError(t, b.AddNum("hp", []float64{1, 2}))
	require.NoError(t, b.AddStr("make", []string{"BMW", "Audi"}))

	enc := NewOneHotEncoder()
	require.NoError(t, enc.Fit(b))
	out, err := enc.Transform(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"hp", "make_Audi", "make_BMW"}, out.NumNames)
}
