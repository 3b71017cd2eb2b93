package dataprep

import (
	"sort"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/pipeline"
)

// OneHotEncoder expands every string column into one indicator column per
// category seen during Fit. Categories are kept in lexical order. A value not
// seen during Fit, or a missing value, sets no indicator.
type OneHotEncoder struct {
	Categories [][]string
	lookup     []map[string]int
	names      []string
	fit        bool
}

func NewOneHotEncoder() *OneHotEncoder { return &OneHotEncoder{} }

func (e *OneHotEncoder) Fit(b *pipeline.Block) error {
	e.Categories = make([][]string, len(b.Str))
	e.lookup = make([]map[string]int, len(b.Str))
	for j, col := range b.Str {
		unique := map[string]struct{}{}
		for _, v := range col {
			if v != "" {
				unique[v] = struct{}{}
			}
		}
		cats := make([]string, 0, len(unique))
		for v := range unique {
			cats = append(cats, v)
		}
		sort.Strings(cats)
		idx := make(map[string]int, len(cats))
		for k, v := range cats {
			idx[v] = k
		}
		e.Categories[j] = cats
		e.lookup[j] = idx
	}
	e.names = append([]string(nil), b.StrNames...)
	e.fit = true
	return nil
}

// Transform moves the string columns to indicator columns appended after the
// block's existing numeric columns.
func (e *OneHotEncoder) Transform(b *pipeline.Block) (*pipeline.Block, error) {
	if !e.fit {
		return nil, apperrors.NotFitted("OneHotEncoder")
	}
	if err := pipeline.CheckNames("OneHotEncoder", e.names, b.StrNames); err != nil {
		return nil, err
	}
	out := pipeline.NewBlock(b.Rows())
	for j, name := range b.NumNames {
		if err := out.AddNum(name, append([]float64(nil), b.Num[j]...)); err != nil {
			return nil, err
		}
	}
	for j, col := range b.Str {
		indicators := make([][]float64, len(e.Categories[j]))
		for k := range indicators {
			indicators[k] = make([]float64, b.Rows())
		}
		for i, v := range col {
			if k, ok := e.lookup[j][v]; ok {
				indicators[k][i] = 1
			}
		}
		for k, cat := range e.Categories[j] {
			if err := out.AddNum(e.names[j]+"_"+cat, indicators[k]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// FeatureNames lists the indicator columns Transform produces.
func (e *OneHotEncoder) FeatureNames() []string {
	var out []string
	for j, cats := range e.Categories {
		for _, c := range cats {
			out = append(out, e.names[j]+"_"+c)
		}
	}
	return out
}
