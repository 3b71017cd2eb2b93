package carprice

import (
	"image/color"

	"gonum.org/v1/plot"

	"github.com/Shenika-D/ShadowFox-Internship/pkg/chart"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/stats"
)

// Chart file names.
const (
	ChartMissing      = "missing_values_heatmap.png"
	ChartCorrelation  = "correlation_matrix.png"
	ChartDistribution = "msrp_distribution.png"
	ChartBySize       = "msrp_by_vehicle_size.png"
	ChartPairplot     = "selected_features_pairplot.png"
)

const (
	histBins      = 50
	pairplotTitle = "Pairplot of Selected Features"
)

var pointColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// MissingHeatmap draws one cell per value, bright where the value is missing.
func MissingHeatmap(r *chart.Renderer, f *data.Frame) (string, error) {
	cols := f.Names()
	cells := make([][]float64, f.Len())
	for i := range cells {
		cells[i] = make([]float64, len(cols))
		for j := range cols {
			if f.IsMissing(i, j) {
				cells[i][j] = 1
			}
		}
	}
	return r.Plot(ChartMissing, chart.Inches(10, 6), func(p *plot.Plot) error {
		p.Title.Text = "Missing Values in Dataset"
		if err := chart.AddHeatmap(p, chart.Heatmap{
			Cols: cols, Values: cells, Min: 0, Max: 1, Palette: chart.TwoTone,
		}); err != nil {
			return err
		}
		p.HideY()
		return nil
	})
}

// CorrelationMatrix draws the annotated correlation of the given numeric columns.
func CorrelationMatrix(r *chart.Renderer, f *data.Frame, columns []string) (string, error) {
	cols := make([][]float64, len(columns))
	for i, name := range columns {
		v, err := f.Float(name)
		if err != nil {
			return "", err
		}
		cols[i] = v
	}
	corr := stats.CorrMatrix(cols)
	return r.Plot(ChartCorrelation, chart.Inches(12, 8), func(p *plot.Plot) error {
		p.Title.Text = "Correlation Matrix"
		return chart.AddHeatmap(p, chart.Heatmap{
			Cols: columns, Rows: columns,
			Values: corr, Min: -1, Max: 1,
			Labels: chart.FormatCorr(corr),
		})
	})
}

// Distribution draws a 50-bin histogram of column with a density overlay.
func Distribution(r *chart.Renderer, f *data.Frame, column string) (string, error) {
	v, err := f.Float(column)
	if err != nil {
		return "", err
	}
	return r.Plot(ChartDistribution, chart.Inches(10, 6), func(p *plot.Plot) error {
		p.Title.Text = "Distribution of " + column
		p.X.Label.Text = column
		p.Y.Label.Text = "Count"
		return chart.AddHist(p, v, histBins, stats.KDE(v))
	})
}

// BySize draws one box of column per vehicle size, in order of first appearance.
func BySize(r *chart.Renderer, f *data.Frame, column string) (string, error) {
	sizes, err := f.Strings(VehicleSizeColumn)
	if err != nil {
		return "", err
	}
	v, err := f.Float(column)
	if err != nil {
		return "", err
	}
	var order []string
	seen := map[string]bool{}
	for _, s := range sizes {
		if s != "" && !seen[s] {
			seen[s] = true
			order = append(order, s)
		}
	}
	groups := stats.GroupValues(sizes, v, order)
	return r.Plot(ChartBySize, chart.Inches(10, 6), func(p *plot.Plot) error {
		p.Title.Text = column + " by " + VehicleSizeColumn
		p.X.Label.Text = VehicleSizeColumn
		p.Y.Label.Text = column
		return chart.AddBoxes(p, order, groups)
	})
}

// Pairplot draws every pair of columns against each other on complete rows,
// with histograms on the diagonal.
func Pairplot(r *chart.Renderer, f *data.Frame, columns []string) (string, error) {
	sub, err := f.Select(columns...)
	if err != nil {
		return "", err
	}
	sub = sub.DropMissing()
	vals := make([][]float64, len(columns))
	for i, name := range columns {
		if vals[i], err = sub.Float(name); err != nil {
			return "", err
		}
	}
	n := len(columns)
	size := chart.Inches(2.5*float64(n), 2.5*float64(n)+0.4)
	return r.Grid(ChartPairplot, pairplotTitle, size, n, n, func(row, col int, p *plot.Plot) error {
		if row == n-1 {
			p.X.Label.Text = columns[col]
		}
		if col == 0 {
			p.Y.Label.Text = columns[row]
		}
		if row == col {
			if sub.Len() == 0 {
				return nil
			}
			return chart.AddHist(p, vals[col], 20, nil)
		}
		return chart.AddScatter(p, vals[col], vals[row], pointColor)
	})
}
