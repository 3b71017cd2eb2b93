package carprice

import (
	"github.com/Shenika-D/ShadowFox-Internship/internal/config"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/dataprep"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/model"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/pipeline"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/stats"
)

// Column names the analysis refers to directly.
const (
	TargetColumn      = "MSRP"
	ModelColumn       = "Model"
	VehicleSizeColumn = "Vehicle Size"
)

// PairplotColumns are the features drawn against each other.
var PairplotColumns = []string{"Engine HP", "Engine Cylinders", "highway MPG", "city mpg", "MSRP"}

// DefaultSchema declares the columns of the car dataset.
func DefaultSchema() data.Schema {
	return data.NewSchema(config.DefaultNumeric, config.DefaultCategorical)
}

// BuildModel composes the preprocessing and the linear regressor:
// numeric columns are median-imputed then standardized, categorical columns
// are mode-imputed then one-hot encoded.
func BuildModel(numeric, categorical []string) *model.Pipeline {
	var sets []pipeline.ColumnSet
	if len(numeric) > 0 {
		sets = append(sets, pipeline.ColumnSet{
			Name:    "num",
			Columns: numeric,
			Pipeline: pipeline.NewPipeline(
				pipeline.Step{Name: "imputer", Transformer: dataprep.NewMedianImputer()},
				pipeline.Step{Name: "scaler", Transformer: stats.NewStandardScaler()},
			),
		})
	}
	if len(categorical) > 0 {
		sets = append(sets, pipeline.ColumnSet{
			Name:    "cat",
			Columns: categorical,
			Pipeline: pipeline.NewPipeline(
				pipeline.Step{Name: "imputer", Transformer: dataprep.NewModeImputer()},
				pipeline.Step{Name: "onehot", Transformer: dataprep.NewOneHotEncoder()},
			),
		})
	}
	return model.NewPipeline(pipeline.NewColumnTransformer(sets...), model.NewLinearRegression())
}
