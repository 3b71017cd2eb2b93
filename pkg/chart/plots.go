package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

// Series is one named line.
type Series struct {
	Name string
	X, Y []float64
}

// AddLine draws each series as a line with point markers in its own color.
// Points with a NaN coordinate are skipped.
func AddLine(p *plot.Plot, series ...Series) error {
	for i, s := range series {
		pts := make(plotter.XYs, 0, len(s.X))
		for j := range s.X {
			if math.IsNaN(s.X[j]) || math.IsNaN(s.Y[j]) {
				continue
			}
			pts = append(pts, plotter.XY{X: s.X[j], Y: s.Y[j]})
		}
		if len(pts) == 0 {
			continue
		}
		l, sc, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		c := plotutil.Color(i)
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(1.5)
		sc.GlyphStyle.Color = c
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(l, sc)
		if s.Name != "" {
			p.Legend.Add(s.Name, l, sc)
		}
	}
	if len(series) > 1 {
		p.Legend.Top = true
	}
	return nil
}

// AddBoxes draws one box per group at the nominal positions given by names.
// Empty groups keep their slot but draw nothing.
func AddBoxes(p *plot.Plot, names []string, groups [][]float64) error {
	if len(names) != len(groups) {
		return apperrors.DimensionMismatch("%d names for %d groups", len(names), len(groups))
	}
	w := vg.Points(18)
	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(w, float64(i), plotter.Values(g))
		if err != nil {
			return err
		}
		b.FillColor = plotutil.Color(i)
		p.Add(b)
	}
	p.NominalX(names...)
	return nil
}

// AddBars draws one bar per label. Bar i takes colors[i] when given.
func AddBars(p *plot.Plot, labels []string, values []float64, colors []color.Color) error {
	if len(labels) != len(values) {
		return apperrors.DimensionMismatch("%d labels for %d values", len(labels), len(values))
	}
	w := vg.Points(24)
	for i, v := range values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, w)
		if err != nil {
			return err
		}
		bar.XMin = float64(i)
		bar.Color = plotutil.Color(i)
		if i < len(colors) {
			bar.Color = colors[i]
		}
		bar.LineStyle.Width = 0
		p.Add(bar)
	}
	p.NominalX(labels...)
	return nil
}

// AddHist draws a histogram of the finite values of x over bins bins.
// When kde is set, the density estimate is overlaid at count scale.
func AddHist(p *plot.Plot, x []float64, bins int, kde func(float64) float64) error {
	vals := make(plotter.Values, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return apperrors.New(apperrors.CodeEmptyDataset, "histogram has no values")
	}
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	p.Add(h)
	if kde == nil || len(h.Bins) == 0 {
		return nil
	}

	scale := float64(len(vals)) * h.Width
	f := plotter.NewFunction(func(v float64) float64 { return kde(v) * scale })
	f.XMin = h.Bins[0].Min
	f.XMax = h.Bins[len(h.Bins)-1].Max
	f.Samples = 200
	f.LineStyle.Width = vg.Points(1.5)
	f.LineStyle.Color = color.RGBA{R: 25, G: 25, B: 112, A: 255}
	p.Add(f)
	return nil
}

// AddScatter draws the points where both x and y are present.
func AddScatter(p *plot.Plot, x, y []float64, c color.Color) error {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s)
	return nil
}

// Matrix is a dense grid of values. Row 0 is drawn at the top.
type Matrix struct {
	Cells [][]float64
}

func (m Matrix) Dims() (c, r int) {
	if len(m.Cells) == 0 {
		return 0, 0
	}
	return len(m.Cells[0]), len(m.Cells)
}

func (m Matrix) Z(c, r int) float64 {
	return m.Cells[len(m.Cells)-1-r][c]
}

func (m Matrix) X(c int) float64 { return float64(c) }
func (m Matrix) Y(r int) float64 { return float64(r) }

// Heatmap describes an annotated heat map. Rows may be nil for an unlabeled
// Y axis.
type Heatmap struct {
	Cols, Rows []string
	Values     [][]float64
	Min, Max   float64
	Palette    palette.Palette
	// Labels, when set, annotates every cell. Same shape as Values.
	Labels [][]string
}

// AddHeatmap draws h with nominal axes. NaN cells take the palette's middle.
func AddHeatmap(p *plot.Plot, h Heatmap) error {
	if h.Rows != nil && len(h.Values) != len(h.Rows) {
		return apperrors.DimensionMismatch("%d rows for %d row names", len(h.Values), len(h.Rows))
	}
	z := make([][]float64, len(h.Values))
	for i, row := range h.Values {
		if len(row) != len(h.Cols) {
			return apperrors.DimensionMismatch("row %d has %d cells, want %d", i, len(row), len(h.Cols))
		}
		z[i] = make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				v = (h.Min + h.Max) / 2
			}
			z[i][j] = v
		}
	}
	if len(z) == 0 || len(h.Cols) == 0 {
		return apperrors.New(apperrors.CodeEmptyDataset, "heatmap has no cells")
	}
	pal := h.Palette
	if pal == nil {
		pal = CoolWarm(64)
	}

	hm := plotter.NewHeatMap(Matrix{Cells: z}, pal)
	hm.Min, hm.Max = h.Min, h.Max
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	if h.Labels != nil {
		var xys plotter.XYs
		var labels []string
		for i, row := range h.Labels {
			for j, s := range row {
				xys = append(xys, plotter.XY{X: float64(j), Y: float64(len(h.Labels) - 1 - i)})
				labels = append(labels, s)
			}
		}
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return err
		}
		for i := range l.TextStyle {
			l.TextStyle[i].XAlign = text.XCenter
			l.TextStyle[i].YAlign = text.YCenter
			l.TextStyle[i].Font.Size = vg.Points(7)
		}
		p.Add(l)
	}

	p.NominalX(h.Cols...)
	if h.Rows != nil {
		rows := make([]string, len(h.Rows))
		for i, r := range h.Rows {
			rows[len(h.Rows)-1-i] = r
		}
		p.NominalY(rows...)
	}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return nil
}

// CoolWarm returns the blue-white-red diverging palette with n colors.
func CoolWarm(n int) palette.Palette {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	if n < 2 {
		return Colors(cm.Palette(2).Colors()[:max(n, 0)])
	}
	return cm.Palette(n)
}

// Colors is a fixed palette.
type Colors []color.Color

// Colors implements palette.Palette.
func (c Colors) Colors() []color.Color { return c }

// TwoTone is the two-color palette used for present/missing maps:
// 0 is dark, 1 is bright.
var TwoTone = Colors{
	color.RGBA{R: 68, G: 1, B: 84, A: 255},
	color.RGBA{R: 253, G: 231, B: 37, A: 255},
}

// FormatCorr renders correlation coefficients for annotation.
func FormatCorr(m [][]float64) [][]string {
	out := make([][]string, len(m))
	for i, row := range m {
		out[i] = make([]string, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				out[i][j] = "nan"
				continue
			}
			out[i][j] = fmt.Sprintf("%.2f", v)
		}
	}
	return out
}
