// Package render draws dashboard widgets as PNG images.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there is nothing to draw. Callers render an empty state instead.
var ErrNoData = errors.New("no data to render")

// Options sets the canvas size of every image.
type Options struct {
	Width  int
	Height int
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	return o
}

var (
	seriesColor = drawing.Color{R: 37, G: 99, B: 235, A: 255}
	barColor    = drawing.Color{R: 14, G: 116, B: 144, A: 255}
)

// CumulativeChart draws the running value total as a time series.
func CumulativeChart(w io.Writer, points []v1.CumulativePoint, opts Options) error {
	if len(points) == 0 {
		return ErrNoData
	}
	opts = opts.normalized()

	xs := make([]time.Time, 0, len(points)+1)
	ys := make([]float64, 0, len(points)+1)
	for _, p := range points {
		xs = append(xs, p.Date.Time)
		ys = append(ys, p.CumulativeValue.InexactFloat64())
	}
	// A single date has a zero-width x range, which go-chart refuses to draw.
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}

	ch := chart.Chart{
		Title:      "Cumulative complaint value",
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Value",
			Range:          &chart.ContinuousRange{Min: 0, Max: paddedMax(ys)},
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Cumulative value",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: seriesColor,
					StrokeWidth: 2,
					FillColor:   seriesColor.WithAlpha(48),
				},
			},
		},
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render cumulative chart: %w", err)
	}
	return nil
}

// DailyCountChart draws how many complaints were raised on each date.
func DailyCountChart(w io.Writer, points []v1.CumulativePoint, opts Options) error {
	if len(points) == 0 {
		return ErrNoData
	}
	opts = opts.normalized()

	xs := make([]time.Time, 0, len(points)+1)
	ys := make([]float64, 0, len(points)+1)
	for _, p := range points {
		xs = append(xs, p.Date.Time)
		ys = append(ys, float64(p.DailyCount))
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, 0)
	}

	ch := chart.Chart{
		Title:      "Complaints over time",
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Complaints",
			Range:          &chart.ContinuousRange{Min: 0, Max: paddedMax(ys)},
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Complaints per day",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: barColor,
					StrokeWidth: 2,
					DotColor:    barColor,
					DotWidth:    3,
				},
			},
		},
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render daily count chart: %w", err)
	}
	return nil
}

// RankingChart draws complaint counts per group in rank order.
func RankingChart(w io.Writer, groups []v1.RankedGroup, opts Options) error {
	if len(groups) == 0 {
		return ErrNoData
	}
	opts = opts.normalized()

	bars := make([]chart.Value, 0, len(groups))
	counts := make([]float64, 0, len(groups))
	for _, g := range groups {
		label := g.Value
		if label == "" {
			label = "(blank)"
		}
		bars = append(bars, chart.Value{
			Label: label,
			Value: float64(g.Count),
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		})
		counts = append(counts, float64(g.Count))
	}

	barWidth := (opts.Width - 120) / (2 * len(bars))
	if barWidth < 8 {
		barWidth = 8
	}
	if barWidth > 80 {
		barWidth = 80
	}

	bc := chart.BarChart{
		Title:      fmt.Sprintf("Complaints by %s", groups[0].Dimension.Label()),
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: paddedMax(counts)},
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
		},
		Bars: bars,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render ranking chart: %w", err)
	}
	return nil
}

// paddedMax returns a y-axis ceiling 10% above the largest value, never zero.
func paddedMax(values []float64) float64 {
	top := 0.0
	for _, v := range values {
		top = math.Max(top, v)
	}
	if top <= 0 {
		return 1
	}
	return top * 1.1
}
