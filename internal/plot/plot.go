// Package plot renders ROC and Precision-Recall curves with the current
// operating point.
package plot

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	roc "github.com/jamesainslie/go-roc"
	"github.com/jamesainslie/go-roc/curve"
)

// Format is an output image format.
type Format string

// Supported formats.
const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts "png" or "svg", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, SVG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported plot format %q", s)
	}
}

// FormatFromPath picks the format from a file extension, defaulting to PNG.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return PNG
}

const size = 640

var operatingColor = drawing.ColorFromHex("620059")

func curveStyle() chart.Style {
	return chart.Style{
		StrokeColor: chart.ColorBlue,
		StrokeWidth: 2,
	}
}

// pointSeries draws a single marker. The point is doubled because
// go-chart needs at least two values per series.
func pointSeries(name string, op roc.OperatingPoint) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{op.X, op.X},
		YValues: []float64{op.Y, op.Y},
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    7,
			DotColor:    operatingColor,
		},
	}
}

func unitAxes(c *chart.Chart, xName, yName string) {
	c.XAxis = chart.XAxis{Name: xName, Range: &chart.ContinuousRange{Min: 0, Max: 1}}
	c.YAxis = chart.YAxis{Name: yName, Range: &chart.ContinuousRange{Min: 0, Max: 1}}
}

// ROC renders c with the chance diagonal and the operating point.
func ROC(w io.Writer, c curve.ROCCurve, op roc.OperatingPoint, format Format) error {
	graph := chart.Chart{
		Title:  fmt.Sprintf("ROC curve (AUC %.3f)", c.AUC),
		Width:  size,
		Height: size,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Chance",
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style: chart.Style{
					StrokeColor:     chart.ColorAlternateGray,
					StrokeDashArray: []float64{5, 5},
					StrokeWidth:     1,
				},
			},
			chart.ContinuousSeries{
				Name:    "ROC",
				XValues: lo.Map(c.Points, func(p curve.ROCPoint, _ int) float64 { return p.FPR }),
				YValues: lo.Map(c.Points, func(p curve.ROCPoint, _ int) float64 { return p.TPR }),
				Style:   curveStyle(),
			},
			pointSeries("Threshold", op),
		},
	}
	unitAxes(&graph, "False positive rate", "True positive rate")
	return render(w, &graph, format)
}

// PR renders c with the operating point.
func PR(w io.Writer, c curve.PRCurve, op roc.OperatingPoint, format Format) error {
	graph := chart.Chart{
		Title:  fmt.Sprintf("Precision-Recall curve (AUPRC %.3f)", c.AUC),
		Width:  size,
		Height: size,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Precision-Recall",
				XValues: lo.Map(c.Points, func(p curve.PRPoint, _ int) float64 { return p.Recall }),
				YValues: lo.Map(c.Points, func(p curve.PRPoint, _ int) float64 { return p.Precision }),
				Style:   curveStyle(),
			},
			pointSeries("Threshold", op),
		},
	}
	unitAxes(&graph, "Recall", "Precision")
	return render(w, &graph, format)
}

// Snapshot renders whichever curve res carries.
func Snapshot(w io.Writer, res roc.Result, format Format) error {
	switch {
	case res.ROC != nil:
		return ROC(w, *res.ROC, res.Operating, format)
	case res.PR != nil:
		return PR(w, *res.PR, res.Operating, format)
	default:
		return fmt.Errorf("snapshot for %s carries no curve", res.Dataset)
	}
}

func render(w io.Writer, graph *chart.Chart, format Format) error {
	graph.Elements = []chart.Renderable{chart.Legend(graph)}

	provider := chart.PNG
	if format == SVG {
		provider = chart.SVG
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	return nil
}
