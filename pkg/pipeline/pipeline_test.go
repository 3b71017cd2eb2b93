package pipeline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/dataprep"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/pipeline"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/stats"
)

func numericPipeline() *pipeline.Pipeline {
	return pipeline.NewPipeline(
		pipeline.Step{Name: "imputer", Transformer: dataprep.NewMedianImputer()},
		pipeline.Step{Name: "scaler", Transformer: stats.NewStandardScaler()},
	)
}

func categoricalPipeline() *pipeline.Pipeline {
	return pipeline.NewPipeline(
		pipeline.Step{Name: "imputer", Transformer: dataprep.NewModeImputer()},
		pipeline.Step{Name: "onehot", Transformer: dataprep.NewOneHotEncoder()},
	)
}

func frame(t *testing.T) *data.Frame {
	t.Helper()
	f, err := data.NewFrame(
		data.NewNumeric("hp", []float64{100, 200, math.NaN(), 400, 1000, 2000}),
		data.NewNumeric("mpg", []float64{30, 25, 20, math.NaN(), 10, 5}),
		data.NewCategorical("size", []string{"Compact", "", "Large", "Compact", "Large", "Huge"}),
	)
	require.NoError(t, err)
	return f
}

func newTransformer() *pipeline.ColumnTransformer {
	return pipeline.NewColumnTransformer(
		pipeline.ColumnSet{Name: "num", Columns: []string{"hp", "mpg"}, Pipeline: numericPipeline()},
		pipeline.ColumnSet{Name: "cat", Columns: []string{"size"}, Pipeline: categoricalPipeline()},
	)
}

func TestPipelineStepLookup(t *testing.T) {
	p := numericPipeline()
	assert.Equal(t, []string{"imputer", "scaler"}, p.Names())
	_, ok := p.Step("scaler")
	assert.True(t, ok)
	_, ok = p.Step("regressor")
	assert.False(t, ok)
}

func TestColumnTransformerNotFitted(t *testing.T) {
	_, err := newTransformer().Transform(frame(t))
	assert.Equal(t, apperrors.CodeNotFitted, apperrors.Code(err))
}

func TestColumnTransformerOutput(t *testing.T) {
	f := frame(t)
	ct := newTransformer()
	X, err := ct.FitTransform(f)
	require.NoError(t, err)

	assert.Equal(t, []string{"hp", "mpg", "size_Compact", "size_Huge", "size_Large"}, ct.FeatureNames())
	require.Len(t, X, f.Len())
	// row 1 has a missing size: imputed with the mode "Compact"
	assert.Equal(t, []float64{1, 0, 0}, X[1][2:])
	for _, row := range X {
		for _, v := range row {
			assert.False(t, math.IsNaN(v))
		}
	}
}

func TestTransformIsIdempotent(t *testing.T) {
	f := frame(t)
	ct := newTransformer()
	require.NoError(t, ct.Fit(f))

	first, err := ct.Transform(f)
	require.NoError(t, err)
	second, err := ct.Transform(f)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFitUsesTrainingRowsOnly(t *testing.T) {
	full := frame(t)
	train, err := full.Take([]int{0, 1, 2, 3})
	require.NoError(t, err)
	test, err := full.Take([]int{4, 5})
	require.NoError(t, err)

	ct := newTransformer()
	require.NoError(t, ct.Fit(train))

	num, _ := ct.Set("num")
	step, _ := num.Step("scaler")
	scaler := step.(*stats.StandardScaler)
	step, _ = num.Step("imputer")
	imputer := step.(*dataprep.MedianImputer)

	trainHP, _ := train.Float("hp")
	fullHP, _ := full.Float("hp")
	trainMedian, _ := stats.Median(trainHP)
	fullMedian, _ := stats.Median(fullHP)

	assert.Equal(t, trainMedian, imputer.Medians[0])
	assert.NotEqual(t, fullMedian, imputer.Medians[0])

	// scaler sees the imputed training column
	imputedHP := []float64{100, 200, trainMedian, 400}
	assert.InDelta(t, stats.Mean(imputedHP), scaler.Mean[0], 1e-12)
	assert.InDelta(t, stats.Std(imputedHP), scaler.Std[0], 1e-12)
	assert.NotEqual(t, stats.Mean(fullHP), scaler.Mean[0])

	// "Huge" is only in the test rows: all indicators zero
	X, err := ct.Transform(test)
	require.NoError(t, err)
	assert.Equal(t, []string{"hp", "mpg", "size_Compact", "size_Large"}, ct.FeatureNames())
	assert.Equal(t, []float64{0, 0}, X[1][2:])
}

func TestColumnSetMustEncodeStrings(t *testing.T) {
	ct := pipeline.NewColumnTransformer(
		pipeline.ColumnSet{Name: "cat", Columns: []string{"size"}, Pipeline: pipeline.NewPipeline(
			pipeline.Step{Name: "imputer", Transformer: dataprep.NewModeImputer()},
		)},
	)
	assert.Error(t, ct.Fit(frame(t)))
}
