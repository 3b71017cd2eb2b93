package chart

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job renders one chart and returns the written path.
type Job func() (string, error)

// RenderAll runs jobs with at most the configured number of workers and
// returns the paths in job order. The first failure cancels the jobs not yet
// started.
func (r *Renderer) RenderAll(ctx context.Context, jobs ...Job) ([]string, error) {
	paths := make([]string, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := job()
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
