package chart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart"
)

// ErrNoBars is returned when a PNG is requested for an empty collection.
var ErrNoBars = errors.New("no models to chart")

// RenderPNG writes the accuracy chart as a PNG with the y axis fixed to [0,1].
func RenderPNG(w io.Writer, bars []Bar) error {
	if len(bars) == 0 {
		return ErrNoBars
	}

	values := make([]gochart.Value, 0, len(bars))
	for _, b := range bars {
		values = append(values, gochart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: gochart.Style{
				Show:        true,
				FillColor:   gochart.ColorAlternateBlue,
				StrokeColor: gochart.ColorBlue,
				StrokeWidth: 1,
			},
		})
	}

	graph := gochart.BarChart{
		Title:      "Accuracy",
		TitleStyle: gochart.StyleShow(),
		Height:     400,
		BarWidth:   60,
		XAxis:      gochart.StyleShow(),
		YAxis: gochart.YAxis{
			Style: gochart.StyleShow(),
			Range: &gochart.ContinuousRange{Min: 0, Max: 1},
		},
		Bars: values,
	}
	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
