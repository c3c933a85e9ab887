package output

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"stream-anomaly-detector/models"
)

// PlotSink renders the finished stream as a PNG: a line over all values
// with flagged samples overlaid as red scatter points. It is a pure sink
// for the computed series; nothing downstream consumes its output.
type PlotSink struct {
	path string
}

func NewPlotSink(path string) *PlotSink {
	return &PlotSink{path: path}
}

// Render draws the full series and saves it to the sink's path.
func (s *PlotSink) Render(verdicts []models.AnomalyVerdict) error {
	if len(verdicts) == 0 {
		return errors.New("nothing to plot: empty series")
	}

	series := make(plotter.XYs, 0, len(verdicts))
	var anomalies plotter.XYs
	for _, v := range verdicts {
		pt := plotter.XY{X: float64(v.Index), Y: v.Value}
		series = append(series, pt)
		if v.IsAnomaly {
			anomalies = append(anomalies, pt)
		}
	}

	p := plot.New()
	p.Title.Text = "Data Stream with Anomalies"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Value"

	line, err := plotter.NewLine(series)
	if err != nil {
		return fmt.Errorf("failed to build stream line: %w", err)
	}
	line.Color = color.Black
	p.Add(line)
	p.Legend.Add("Data Stream", line)

	if len(anomalies) > 0 {
		scatter, err := plotter.NewScatter(anomalies)
		if err != nil {
			return fmt.Errorf("failed to build anomaly scatter: %w", err)
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		p.Add(scatter)
		p.Legend.Add("Anomalies", scatter)
	}

	if err := p.Save(10*vg.Inch, 4*vg.Inch, s.path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
