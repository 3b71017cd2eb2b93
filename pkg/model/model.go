package model

import (
	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/pipeline"
)

// Regressor is a supervised model over row-major features.
type Regressor interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) ([]float64, error)
}

// Pipeline composes a column preprocessor with a regressor. Fit learns every
// preprocessing statistic and the regression coefficients from the frame it
// is given and nothing else; Predict replays them.
type Pipeline struct {
	Preprocessor *pipeline.ColumnTransformer
	Regressor    Regressor
}

func NewPipeline(pre *pipeline.ColumnTransformer, reg Regressor) *Pipeline {
	return &Pipeline{Preprocessor: pre, Regressor: reg}
}

// Fit fits the preprocessor and regressor on the training frame and target.
func (p *Pipeline) Fit(train *data.Frame, y []float64) error {
	if train.Len() != len(y) {
		return apperrors.DimensionMismatch("frame has %d rows, target has %d", train.Len(), len(y))
	}
	X, err := p.Preprocessor.FitTransform(train)
	if err != nil {
		return apperrors.Wrap(err, "preprocessor")
	}
	if err := p.Regressor.Fit(X, y); err != nil {
		return apperrors.Wrap(err, "regressor")
	}
	return nil
}

// Predict transforms f with the frozen preprocessor and predicts each row.
func (p *Pipeline) Predict(f *data.Frame) ([]float64, error) {
	X, err := p.Preprocessor.Transform(f)
	if err != nil {
		return nil, apperrors.Wrap(err, "preprocessor")
	}
	return p.Regressor.Predict(X)
}
