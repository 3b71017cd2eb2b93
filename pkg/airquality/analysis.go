package airquality

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/internal/logger"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/chart"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
)

// SuccessMessage is printed once the export and every chart are written.
const SuccessMessage = "All enhanced plots and Excel export generated successfully."

// Options configures one air-quality run.
type Options struct {
	Input    string
	Export   string
	Renderer *chart.Renderer
	Log      *logger.Logger
}

// Result is what a run produced.
type Result struct {
	Frame      *data.Frame
	Timestamps []time.Time
	Missing    []data.MissingCount
	ExportPath string
	Charts     []string
}

// Run loads the dataset, derives the time features and AQI categories,
// exports the augmented table and renders the charts. Missing-value counts
// and the final success line are written to out.
func Run(ctx context.Context, opts Options, out io.Writer) (*Result, error) {
	if opts.Renderer == nil {
		return nil, apperrors.InvalidArgument("airquality: renderer is required")
	}
	log := opts.Log

	loader := &data.Loader{Schema: Schema(), Log: log}
	f, err := loader.Load(opts.Input)
	if err != nil {
		return nil, err
	}

	ts, err := DeriveTimeFeatures(f, DateColumn)
	if err != nil {
		return nil, apperrors.Wrap(err, "derive time features")
	}

	missing := f.Missing()
	fmt.Fprintln(out, "Missing values:")
	for _, m := range missing {
		fmt.Fprintf(out, "%-10s %d\n", m.Column, m.Count)
	}

	if err := AddCategory(f); err != nil {
		return nil, err
	}
	if unknown := countCategory(f, Unknown); unknown > 0 {
		log.Warn("%d rows have no usable %s reading, labeled %s", unknown, PM25Column, Unknown)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := Export(opts.Export, f, ts); err != nil {
		return nil, err
	}
	log.Info("exported %d rows to %s", f.Len(), opts.Export)

	paths, err := Charts(ctx, opts.Renderer, f)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, SuccessMessage)
	return &Result{
		Frame:      f,
		Timestamps: ts,
		Missing:    missing,
		ExportPath: opts.Export,
		Charts:     paths,
	}, nil
}

func countCategory(f *data.Frame, c Category) int {
	cats, err := f.Strings(CategoryColumn)
	if err != nil {
		return 0
	}
	n := 0
	for _, s := range cats {
		if s == string(c) {
			n++
		}
	}
	return n
}
