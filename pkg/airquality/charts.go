package airquality

import (
	"context"
	"math"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/Shenika-D/ShadowFox-Internship/pkg/chart"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/stats"
)

// Chart file names.
const (
	ChartPM25ByHour     = "pm2_5_by_hour.png"
	ChartPM25ByMonth    = "pm2_5_by_month.png"
	ChartCorrelation    = "correlation_heatmap.png"
	ChartPollutantsHour = "all_pollutants_by_hour.png"
	ChartPM25ByDay      = "pm2_5_by_day.png"
	ChartCategoryCounts = "aqi_category_distribution.png"
)

// Charts renders the six air-quality charts from a frame that already
// carries the time features and AQI_Category. It returns the written paths.
func Charts(ctx context.Context, r *chart.Renderer, f *data.Frame) ([]string, error) {
	steps := []func(*chart.Renderer, *data.Frame) (string, error){
		PM25ByHour,
		PM25ByMonth,
		CorrelationHeatmap,
		PollutantsByHour,
		PM25ByDay,
		CategoryDistribution,
	}
	jobs := make([]chart.Job, len(steps))
	for i, step := range steps {
		jobs[i] = func() (string, error) { return step(r, f) }
	}
	return r.RenderAll(ctx, jobs...)
}

func hourly(f *data.Frame, column string) (chart.Series, error) {
	h, err := f.Float("hour")
	if err != nil {
		return chart.Series{}, err
	}
	v, err := f.Float(column)
	if err != nil {
		return chart.Series{}, err
	}
	hours, means := stats.GroupMean(h, v)
	return chart.Series{Name: column, X: hours, Y: means}, nil
}

// PM25ByHour draws the mean PM2.5 per hour of day.
func PM25ByHour(r *chart.Renderer, f *data.Frame) (string, error) {
	s, err := hourly(f, PM25Column)
	if err != nil {
		return "", err
	}
	s.Name = ""
	return r.Plot(ChartPM25ByHour, chart.Inches(10, 5), func(p *plot.Plot) error {
		p.Title.Text = "Average PM2.5 by Hour"
		p.X.Label.Text = "Hour of Day"
		p.Y.Label.Text = "PM2.5"
		return chart.AddLine(p, s)
	})
}

// PM25ByMonth draws one PM2.5 box per month present in the data.
func PM25ByMonth(r *chart.Renderer, f *data.Frame) (string, error) {
	months, err := f.Float("month")
	if err != nil {
		return "", err
	}
	pm, err := f.Float(PM25Column)
	if err != nil {
		return "", err
	}
	keys := make([]string, len(months))
	present := map[int]bool{}
	for i, m := range months {
		if math.IsNaN(m) {
			continue
		}
		keys[i] = strconv.Itoa(int(m))
		present[int(m)] = true
	}
	var order []string
	for m := 1; m <= 12; m++ {
		if present[m] {
			order = append(order, strconv.Itoa(m))
		}
	}
	groups := stats.GroupValues(keys, pm, order)
	return r.Plot(ChartPM25ByMonth, chart.Inches(10, 5), func(p *plot.Plot) error {
		p.Title.Text = "PM2.5 Distribution by Month"
		p.X.Label.Text = "Month"
		p.Y.Label.Text = "PM2.5"
		return chart.AddBoxes(p, order, groups)
	})
}

// CorrelationHeatmap draws the annotated pairwise correlation of the pollutants.
func CorrelationHeatmap(r *chart.Renderer, f *data.Frame) (string, error) {
	cols := make([][]float64, len(Pollutants))
	for i, name := range Pollutants {
		v, err := f.Float(name)
		if err != nil {
			return "", err
		}
		cols[i] = v
	}
	corr := stats.CorrMatrix(cols)
	return r.Plot(ChartCorrelation, chart.Inches(10, 6), func(p *plot.Plot) error {
		p.Title.Text = "Correlation Heatmap of Pollutants"
		return chart.AddHeatmap(p, chart.Heatmap{
			Cols: Pollutants, Rows: Pollutants,
			Values: corr, Min: -1, Max: 1,
			Labels: chart.FormatCorr(corr),
		})
	})
}

// PollutantsByHour draws the hourly mean of every pollutant.
func PollutantsByHour(r *chart.Renderer, f *data.Frame) (string, error) {
	series := make([]chart.Series, 0, len(HourlyPollutants))
	for _, name := range HourlyPollutants {
		s, err := hourly(f, name)
		if err != nil {
			return "", err
		}
		series = append(series, s)
	}
	return r.Plot(ChartPollutantsHour, chart.Inches(12, 6), func(p *plot.Plot) error {
		p.Title.Text = "Pollutant Levels by Hour"
		p.X.Label.Text = "Hour of Day"
		p.Y.Label.Text = "Concentration"
		return chart.AddLine(p, series...)
	})
}

// PM25ByDay draws one PM2.5 box per weekday, Monday first.
func PM25ByDay(r *chart.Renderer, f *data.Frame) (string, error) {
	days, err := f.Strings("weekday")
	if err != nil {
		return "", err
	}
	pm, err := f.Float(PM25Column)
	if err != nil {
		return "", err
	}
	groups := stats.GroupValues(days, pm, Weekdays)
	return r.Plot(ChartPM25ByDay, chart.Inches(10, 5), func(p *plot.Plot) error {
		p.Title.Text = "PM2.5 Levels by Day of Week"
		p.X.Label.Text = "Day"
		p.Y.Label.Text = "PM2.5"
		return chart.AddBoxes(p, Weekdays, groups)
	})
}

// CategoryDistribution draws the count of every AQI category, most frequent first.
func CategoryDistribution(r *chart.Renderer, f *data.Frame) (string, error) {
	cats, err := f.Strings(CategoryColumn)
	if err != nil {
		return "", err
	}
	counts := stats.ValueCounts(cats)
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		values[i] = float64(c.N)
	}
	return r.Plot(ChartCategoryCounts, chart.Inches(8, 5), func(p *plot.Plot) error {
		p.Title.Text = "AQI Category Distribution Based on PM2.5"
		p.X.Label.Text = "AQI Category"
		p.Y.Label.Text = "Count"
		return chart.AddBars(p, labels, values, chart.CoolWarm(len(labels)).Colors())
	})
}
