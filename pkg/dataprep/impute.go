package dataprep

import (
	"math"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/pipeline"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/stats"
)

// ---------- Numeric ----------

// MedianImputer replaces missing numeric values with the training median of
// their column. A column with no observed value imputes 0.
type MedianImputer struct {
	Medians []float64
	names   []string
	fit     bool
}

func NewMedianImputer() *MedianImputer { return &MedianImputer{} }

func (m *MedianImputer) Fit(b *pipeline.Block) error {
	m.Medians = make([]float64, len(b.Num))
	for j, col := range b.Num {
		med, err := stats.Median(col)
		if err != nil {
			med = 0
		}
		m.Medians[j] = med
	}
	m.names = append([]string(nil), b.NumNames...)
	m.fit = true
	return nil
}

func (m *MedianImputer) Transform(b *pipeline.Block) (*pipeline.Block, error) {
	if !m.fit {
		return nil, apperrors.NotFitted("MedianImputer")
	}
	if err := pipeline.CheckNames("MedianImputer", m.names, b.NumNames); err != nil {
		return nil, err
	}
	out := b.Clone()
	for j, col := range out.Num {
		for i, v := range col {
			if math.IsNaN(v) {
				col[i] = m.Medians[j]
			}
		}
	}
	return out, nil
}

// ---------- Categorical ----------

// ModeImputer replaces missing string values with the most frequent training
// value of their column.
type ModeImputer struct {
	Modes []string
	names []string
	fit   bool
}

func NewModeImputer() *ModeImputer { return &ModeImputer{} }

func (m *ModeImputer) Fit(b *pipeline.Block) error {
	m.Modes = make([]string, len(b.Str))
	for j, col := range b.Str {
		// an all-missing column stays missing and later encodes to zeros
		m.Modes[j], _ = stats.ModeString(col)
	}
	m.names = append([]string(nil), b.StrNames...)
	m.fit = true
	return nil
}

func (m *ModeImputer) Transform(b *pipeline.Block) (*pipeline.Block, error) {
	if !m.fit {
		return nil, apperrors.NotFitted("ModeImputer")
	}
	if err := pipeline.CheckNames("ModeImputer", m.names, b.StrNames); err != nil {
		return nil, err
	}
	out := b.Clone()
	for j, col := range out.Str {
		for i, v := range col {
			if v == "" {
				col[i] = m.Modes[j]
			}
		}
	}
	return out, nil
}
