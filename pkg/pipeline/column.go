package pipeline

import (
	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
)

// ColumnSet routes a group of frame columns through its own Pipeline.
type ColumnSet struct {
	Name     string
	Columns  []string
	Pipeline *Pipeline
}

// ColumnTransformer applies one Pipeline per ColumnSet and concatenates the
// numeric outputs side by side, in set order.
type ColumnTransformer struct {
	sets   []ColumnSet
	names  []string
	fitted bool
}

func NewColumnTransformer(sets ...ColumnSet) *ColumnTransformer {
	return &ColumnTransformer{sets: sets}
}

func (ct *ColumnTransformer) block(f *data.Frame, cols []string) (*Block, error) {
	b := NewBlock(f.Len())
	for _, name := range cols {
		c, err := f.Col(name)
		if err != nil {
			return nil, err
		}
		switch c.Kind {
		case data.Numeric:
			err = b.AddNum(name, c.Num)
		default:
			err = b.AddStr(name, c.Str)
		}
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Fit fits every set on f. Callers pass only the training rows.
func (ct *ColumnTransformer) Fit(f *data.Frame) error {
	var names []string
	for _, set := range ct.sets {
		b, err := ct.block(f, set.Columns)
		if err != nil {
			return apperrors.Wrapf(err, "column set %q", set.Name)
		}
		out, err := set.Pipeline.FitTransform(b)
		if err != nil {
			return apperrors.Wrapf(err, "column set %q", set.Name)
		}
		if len(out.StrNames) > 0 {
			return apperrors.InvalidArgument("column set %q leaves string columns %v unencoded", set.Name, out.StrNames)
		}
		names = append(names, out.NumNames...)
	}
	ct.names = names
	ct.fitted = true
	return nil
}

// Transform replays the fitted sets on f and returns row-major features.
func (ct *ColumnTransformer) Transform(f *data.Frame) ([][]float64, error) {
	if !ct.fitted {
		return nil, apperrors.NotFitted("ColumnTransformer")
	}
	X := make([][]float64, f.Len())
	for i := range X {
		X[i] = make([]float64, 0, len(ct.names))
	}
	for _, set := range ct.sets {
		b, err := ct.block(f, set.Columns)
		if err != nil {
			return nil, apperrors.Wrapf(err, "column set %q", set.Name)
		}
		out, err := set.Pipeline.Transform(b)
		if err != nil {
			return nil, apperrors.Wrapf(err, "column set %q", set.Name)
		}
		for i := range X {
			for j := range out.Num {
				X[i] = append(X[i], out.Num[j][i])
			}
		}
	}
	for i := range X {
		if len(X[i]) != len(ct.names) {
			return nil, apperrors.DimensionMismatch("transform produced %d features, fit produced %d", len(X[i]), len(ct.names))
		}
	}
	return X, nil
}

// FitTransform fits on f and returns its transformed features.
func (ct *ColumnTransformer) FitTransform(f *data.Frame) ([][]float64, error) {
	if err := ct.Fit(f); err != nil {
		return nil, err
	}
	return ct.Transform(f)
}

// FeatureNames lists the output columns. Empty before Fit.
func (ct *ColumnTransformer) FeatureNames() []string {
	return append([]string(nil), ct.names...)
}

// Set returns the pipeline of the named column set.
func (ct *ColumnTransformer) Set(name string) (*Pipeline, bool) {
	for _, s := range ct.sets {
		if s.Name == name {
			return s.Pipeline, true
		}
	}
	return nil, false
}
