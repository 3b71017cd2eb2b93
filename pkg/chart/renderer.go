package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/internal/logger"
)

// Config selects the non-interactive raster backend for every chart of a run.
type Config struct {
	Dir    string
	Format string // png or jpg
	DPI    int
	// Workers bounds how many charts RenderAll draws at once.
	Workers int
}

// Size is the page size of one chart.
type Size struct {
	W, H vg.Length
}

// Inches returns a Size of w by h inches.
func Inches(w, h float64) Size {
	return Size{W: vg.Length(w) * vg.Inch, H: vg.Length(h) * vg.Inch}
}

// Renderer writes charts to files. It holds no drawing state between calls:
// every chart gets a fresh canvas that is released once the file is written.
type Renderer struct {
	dir     string
	format  string
	dpi     int
	workers int
	log     *logger.Logger
}

// NewRenderer validates cfg and creates the output directory.
func NewRenderer(cfg Config, log *logger.Logger) (*Renderer, error) {
	format := strings.ToLower(cfg.Format)
	switch format {
	case "", "png":
		format = "png"
	case "jpg", "jpeg":
		format = "jpg"
	default:
		return nil, apperrors.InvalidArgument("unsupported chart format %q", cfg.Format)
	}
	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = 96
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.IOError("create chart dir "+dir, err)
	}
	return &Renderer{dir: dir, format: format, dpi: dpi, workers: workers, log: log}, nil
}

// Path returns where the chart called name is written. The extension of
// name is replaced by the renderer's format.
func (r *Renderer) Path(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(r.dir, base+"."+r.format)
}

// Plot renders a single plot built by build into the file for name.
func (r *Renderer) Plot(name string, size Size, build func(p *plot.Plot) error) (string, error) {
	return r.render(name, size, func(dc draw.Canvas) error {
		p := plot.New()
		if err := build(p); err != nil {
			return err
		}
		p.Draw(dc)
		return nil
	})
}

// Grid renders rows x cols aligned plots under an optional title. build is
// called once per cell.
func (r *Renderer) Grid(name, title string, size Size, rows, cols int, build func(row, col int, p *plot.Plot) error) (string, error) {
	return r.render(name, size, func(dc draw.Canvas) error {
		if title != "" {
			sty := plot.New().Title.TextStyle
			sty.Font.Size = vg.Points(16)
			descent := sty.FontExtents().Descent
			dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y + descent - vg.Points(4)}, title)
			dc.Max.Y -= sty.Rectangle(title).Size().Y + vg.Points(8)
		}
		plots := make([][]*plot.Plot, rows)
		for i := range plots {
			plots[i] = make([]*plot.Plot, cols)
			for j := range plots[i] {
				p := plot.New()
				if err := build(i, j, p); err != nil {
					return err
				}
				plots[i][j] = p
			}
		}
		tiles := draw.Tiles{
			Rows: rows, Cols: cols,
			PadTop: vg.Points(4), PadBottom: vg.Points(4),
			PadLeft: vg.Points(4), PadRight: vg.Points(4),
			PadX: vg.Points(6), PadY: vg.Points(6),
		}
		canvases := plot.Align(plots, tiles, dc)
		for i := range plots {
			for j := range plots[i] {
				plots[i][j].Draw(canvases[i][j])
			}
		}
		return nil
	})
}

func (r *Renderer) render(name string, size Size, paint func(dc draw.Canvas) error) (path string, err error) {
	c := vgimg.NewWith(vgimg.UseWH(size.W, size.H), vgimg.UseDPI(r.dpi))

	defer func() {
		// gonum/plot reports some bad inputs (empty ranges, NaN extents) by panicking
		if rec := recover(); rec != nil {
			err = apperrors.Newf(apperrors.CodeInvalidArgument, "render %s: %v", name, rec)
		}
	}()
	if err := paint(draw.New(c)); err != nil {
		return "", apperrors.Wrapf(err, "render %s", name)
	}

	path = r.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return "", apperrors.IOError("create "+path, err)
	}
	var w io.WriterTo = vgimg.PngCanvas{Canvas: c}
	if r.format == "jpg" {
		w = vgimg.JpegCanvas{Canvas: c}
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return "", apperrors.IOError("write "+path, err)
	}
	if err := f.Close(); err != nil {
		return "", apperrors.IOError("close "+path, err)
	}
	r.log.Info("saved chart %s", path)
	return path, nil
}

func (r *Renderer) String() string {
	return fmt.Sprintf("Renderer(dir=%s, format=%s, dpi=%d, workers=%d)", r.dir, r.format, r.dpi, r.workers)
}
