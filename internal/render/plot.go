package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/RMahshie/wavesum/pkg/models"
)

// PlotConfig holds output settings for the image renderer
type PlotConfig struct {
	Path   string // format is taken from the extension: .png, .svg, .pdf, .eps, .jpg
	Width  float64
	Height float64 // inches
}

// PlotRenderer draws charts to an image file with gonum/plot
type PlotRenderer struct {
	cfg PlotConfig
}

func NewPlotRenderer(cfg PlotConfig) *PlotRenderer {
	return &PlotRenderer{cfg: cfg}
}

// Path returns where Render writes the chart
func (r *PlotRenderer) Path() string {
	return r.cfg.Path
}

func (r *PlotRenderer) Render(chart models.Chart) error {
	p, err := BuildPlot(chart)
	if err != nil {
		return err
	}

	if err := p.Save(vg.Length(r.cfg.Width)*vg.Inch, vg.Length(r.cfg.Height)*vg.Inch, r.cfg.Path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", r.cfg.Path, err)
	}
	return nil
}

// WriteTo encodes the chart in the given format ("png", "svg", ...) to w
func (r *PlotRenderer) WriteTo(w io.Writer, chart models.Chart, format string) error {
	p, err := BuildPlot(chart)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Length(r.cfg.Width)*vg.Inch, vg.Length(r.cfg.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("failed to encode chart as %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// BuildPlot lays out every series as a line over its sample index,
// with a grid, axis labels and a legend.
func BuildPlot(chart models.Chart) (*plot.Plot, error) {
	if chart.Len() == 0 {
		return nil, ErrEmptyChart
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, s := range chart.Series {
		line, err := plotter.NewLine(indexed(s.Values))
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.LineStyle.Color = s.Color
		line.LineStyle.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	return p, nil
}

// indexed pairs each value with its position in the slice
func indexed(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i := range pts {
		pts[i].X = float64(i)
		pts[i].Y = values[i]
	}
	return pts
}
