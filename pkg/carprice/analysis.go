package carprice

import (
	"context"
	"fmt"
	"io"
	"math"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/internal/logger"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/chart"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/loader"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/model"
)

// DefaultSeed seeds the train/test split when Options.Seed is nil.
const DefaultSeed int64 = 42

// Options configures one regression run.
type Options struct {
	Input    string
	Schema   data.Schema
	Target   string
	Drop     []string
	TestSize float64
	Seed     *int64
	// ReportPath, when set, receives a YAML summary of the run.
	ReportPath string
	Renderer   *chart.Renderer
	Log        *logger.Logger
}

// Result is what a run produced.
type Result struct {
	Frame       *data.Frame
	Numeric     []string
	Categorical []string
	Train, Test []int
	Model       *model.Pipeline
	Predictions []float64
	MSE, R2     float64
	Charts      []string
	Report      *Report
}

func (o *Options) defaults() {
	if o.Schema == nil {
		o.Schema = DefaultSchema()
	}
	if o.Target == "" {
		o.Target = TargetColumn
	}
	if o.Drop == nil {
		o.Drop = []string{ModelColumn}
	}
	if o.TestSize == 0 {
		o.TestSize = 0.2
	}
	if o.Seed == nil {
		seed := DefaultSeed
		o.Seed = &seed
	}
}

// Run loads and deduplicates the car dataset, fits the price model on the
// training split, evaluates it on the test split and renders the charts.
// The two metrics are written to out.
func Run(ctx context.Context, opts Options, out io.Writer) (*Result, error) {
	if opts.Renderer == nil {
		return nil, apperrors.InvalidArgument("carprice: renderer is required")
	}
	opts.defaults()
	log := opts.Log
	if _, ok := opts.Schema.Lookup(opts.Target); !ok {
		return nil, apperrors.InvalidArgument("target %q not in schema", opts.Target)
	}

	ld := &data.Loader{Schema: opts.Schema, Log: log}
	raw, err := ld.Load(opts.Input)
	if err != nil {
		return nil, err
	}
	report := newReport(opts.Input)
	report.RowsLoaded = raw.Len()

	f := raw.DropDuplicates()
	report.RowsUnique = f.Len()
	log.Info("dropped %d duplicate rows", raw.Len()-f.Len())
	if f, err = f.Drop(opts.Drop...); err != nil {
		return nil, err
	}

	var charts []string
	path, err := MissingHeatmap(opts.Renderer, f)
	if err != nil {
		return nil, err
	}
	charts = append(charts, path)

	features := f.Schema().Without(opts.Target)
	numeric := features.Names(data.Numeric)
	categorical := features.Names(data.Categorical)
	log.Debug("numeric features %v", numeric)
	log.Debug("categorical features %v", categorical)

	modelFrame, err := completeTarget(f, opts.Target, log)
	if err != nil {
		return nil, err
	}
	train, test, err := loader.TrainTestSplit(modelFrame.Len(), opts.TestSize, *opts.Seed)
	if err != nil {
		return nil, err
	}
	trainF, err := modelFrame.Take(train)
	if err != nil {
		return nil, err
	}
	testF, err := modelFrame.Take(test)
	if err != nil {
		return nil, err
	}
	yTrain, _ := trainF.Float(opts.Target)
	yTest, _ := testF.Float(opts.Target)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := BuildModel(numeric, categorical)
	if err := m.Fit(trainF, yTrain); err != nil {
		return nil, apperrors.Wrap(err, "fit")
	}
	pred, err := m.Predict(testF)
	if err != nil {
		return nil, apperrors.Wrap(err, "predict")
	}
	mse := model.MSE(yTest, pred)
	r2 := model.R2(yTest, pred)
	fmt.Fprintf(out, "Mean Squared Error: %.2f\n", mse)
	fmt.Fprintf(out, "R² Score: %.2f\n", r2)
	log.Debug("fit on %d rows, %d features, evaluated on %d rows", len(train), len(m.Preprocessor.FeatureNames()), len(test))

	r := opts.Renderer
	rest, err := r.RenderAll(ctx,
		func() (string, error) {
			return CorrelationMatrix(r, f, append(append([]string{}, numeric...), opts.Target))
		},
		func() (string, error) { return Distribution(r, f, opts.Target) },
		func() (string, error) { return BySize(r, f, opts.Target) },
		func() (string, error) { return Pairplot(r, f, PairplotColumns) },
	)
	if err != nil {
		return nil, err
	}
	charts = append(charts, rest...)

	report.TrainRows = len(train)
	report.TestRows = len(test)
	report.Features = len(m.Preprocessor.FeatureNames())
	if lr, ok := m.Regressor.(*model.LinearRegression); ok {
		report.Intercept = lr.Bias()
	}
	report.MSE = mse
	report.RMSE = model.RMSE(yTest, pred)
	report.MAE = model.MAE(yTest, pred)
	report.R2 = r2
	if opts.ReportPath != "" {
		if err := WriteReport(opts.ReportPath, report); err != nil {
			return nil, err
		}
		log.Info("wrote report %s", opts.ReportPath)
	}

	return &Result{
		Frame:       f,
		Numeric:     numeric,
		Categorical: categorical,
		Train:       train,
		Test:        test,
		Model:       m,
		Predictions: pred,
		MSE:         mse,
		R2:          r2,
		Charts:      charts,
		Report:      report,
	}, nil
}

// completeTarget drops the rows whose target is missing.
func completeTarget(f *data.Frame, target string, log *logger.Logger) (*data.Frame, error) {
	y, err := f.Float(target)
	if err != nil {
		return nil, err
	}
	keep := make([]int, 0, len(y))
	for i, v := range y {
		if !math.IsNaN(v) {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(y) {
		return f, nil
	}
	log.Warn("dropping %d rows with no %s", len(y)-len(keep), target)
	return f.Take(keep)
}
