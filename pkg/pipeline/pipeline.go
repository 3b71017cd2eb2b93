package pipeline

import (
	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

// Transformer is a fit/transform step. Fit freezes whatever statistics the
// step needs; Transform replays them and must not modify its input.
type Transformer interface {
	Fit(b *Block) error
	Transform(b *Block) (*Block, error)
}

// Step is a named Transformer inside a Pipeline.
type Step struct {
	Name        string
	Transformer Transformer
}

// Pipeline chains multiple transformers. A Pipeline is itself a Transformer.
type Pipeline struct {
	steps []Step
}

func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits each step on the output of the steps before it.
func (p *Pipeline) Fit(b *Block) error {
	_, err := p.FitTransform(b)
	return err
}

// FitTransform fits every step and returns the fully transformed block.
func (p *Pipeline) FitTransform(b *Block) (*Block, error) {
	for _, step := range p.steps {
		if err := step.Transformer.Fit(b); err != nil {
			return nil, apperrors.Wrapf(err, "fit step %q", step.Name)
		}
		out, err := step.Transformer.Transform(b)
		if err != nil {
			return nil, apperrors.Wrapf(err, "transform step %q", step.Name)
		}
		b = out
	}
	return b, nil
}

// Transform replays every fitted step in order.
func (p *Pipeline) Transform(b *Block) (*Block, error) {
	for _, step := range p.steps {
		out, err := step.Transformer.Transform(b)
		if err != nil {
			return nil, apperrors.Wrapf(err, "transform step %q", step.Name)
		}
		b = out
	}
	return b, nil
}

// Step returns the transformer registered under name.
func (p *Pipeline) Step(name string) (Transformer, bool) {
	for _, s := range p.steps {
		if s.Name == name {
			return s.Transformer, true
		}
	}
	return nil, false
}

// Names lists the step names in order.
func (p *Pipeline) Names() []string {
	out := make([]string, len(p.steps))
	for i, s := range p.steps {
		out[i] = s.Name
	}
	return out
}
