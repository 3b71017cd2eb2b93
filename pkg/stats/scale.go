package stats

import (
	"math"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/pipeline"
)

// StandardScaler standardizes each numeric column to zero mean and unit
// variance using the population statistics of the block it was fit on.
type StandardScaler struct {
	Mean  []float64
	Std   []float64
	names []string
	fit   bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

func (s *StandardScaler) Fit(b *pipeline.Block) error {
	c := len(b.Num)
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	for j, col := range b.Num {
		s.Mean[j] = Mean(col)
		s.Std[j] = Std(col)
		if math.IsNaN(s.Mean[j]) {
			s.Mean[j] = 0
		}
		// constant columns pass through centred
		if s.Std[j] == 0 || math.IsNaN(s.Std[j]) {
			s.Std[j] = 1
		}
	}
	s.names = append([]string(nil), b.NumNames...)
	s.fit = true
	return nil
}

func (s *StandardScaler) Transform(b *pipeline.Block) (*pipeline.Block, error) {
	if !s.fit {
		return nil, apperrors.NotFitted("StandardScaler")
	}
	if err := pipeline.CheckNames("StandardScaler", s.names, b.NumNames); err != nil {
		return nil, err
	}
	out := b.Clone()
	for j, col := range out.Num {
		for i, v := range col {
			col[i] = (v - s.Mean[j]) / s.Std[j]
		}
	}
	return out, nil
}
