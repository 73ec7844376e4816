package output

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNothingToPlot indicates a chart was requested for empty data.
var ErrNothingToPlot = errors.New("nothing to plot")

var salmon = color.RGBA{R: 250, G: 128, B: 114, A: 255}

// MissingChart builds the horizontal bar chart of missing-value percentages.
// Bars are drawn bottom to top in the order of stats.
func MissingChart(stats []models.MissingStat) (*plot.Plot, error) {
	if len(stats) == 0 {
		return nil, ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = "Missing Data Percentage by Column"
	p.X.Label.Text = "Percentage of Missing Values"
	p.Y.Label.Text = "Columns"

	values := make(plotter.Values, len(stats))
	names := make([]string, len(stats))
	points := make(plotter.XYs, len(stats))
	texts := make([]string, len(stats))
	for i, s := range stats {
		values[i] = s.Percent
		names[i] = s.Column
		points[i].X = s.Percent + 0.5
		points[i].Y = float64(i)
		texts[i] = fmt.Sprintf("%.2f%%", s.Percent)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("failed to create bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = salmon
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to create value labels: %w", err)
	}
	p.Add(labels)
	p.X.Min = 0

	return p, nil
}

// WriteMissingChart renders the missing-value chart as a 12x6 inch PNG.
func WriteMissingChart(w io.Writer, stats []models.MissingStat) error {
	p, err := MissingChart(stats)
	if err != nil {
		return err
	}

	writer, err := p.WriterTo(12*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("failed to create plot writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}
