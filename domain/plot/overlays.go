package plot

import (
	"image/color"

	"gonum.org/v1/gonum/floats"

	"github.com/soocke/svmdeck/domain/dataset"
)

// CandidateLine is a hand-picked y = Slope·x + Intercept divider.
type CandidateLine struct {
	Slope, Intercept float64
}

// CandidateLines are the naive dividers drawn over the separable blobs.
var CandidateLines = []CandidateLine{
	{Slope: 1, Intercept: 0.65},
	{Slope: 0.5, Intercept: 1.6},
	{Slope: -0.2, Intercept: 2.9},
}

const (
	candidateXMin    = -1.0
	candidateXMax    = 3.5
	candidateSamples = 50

	// DefaultResolution is the decision grid size per axis.
	DefaultResolution = 30
	supportRadius     = 10
)

var marginGray = color.RGBA{0, 0, 0, 128}

// DrawScatter draws the base scatter of ds.
func DrawScatter(r Renderer, ds dataset.Dataset, cm Colormap) {
	r.Scatter(Scatter{Points: ds.Points, Labels: ds.Labels, Classes: ds.Classes, Colormap: cm, Size: 50})
}

// DrawCandidateLines draws CandidateLines over x ∈ [-1, 3.5] and pins the
// x-limits to that range. It draws nothing when enabled is false.
func DrawCandidateLines(r Renderer, enabled bool) {
	if !enabled {
		return
	}
	xs := floats.Span(make([]float64, candidateSamples), candidateXMin, candidateXMax)
	for _, c := range CandidateLines {
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = c.Slope*x + c.Intercept
		}
		r.Line(Line{Xs: xs, Ys: ys, Style: LineStyle{Color: Black, Width: 1.5}})
	}
	r.SetXLim(candidateXMin, candidateXMax)
}

// DecisionFunction is the part of a fitted classifier the overlay needs.
type DecisionFunction interface {
	Decision(p dataset.Point) float64
	SupportPoints() []dataset.Point
}

// DecisionOptions configures DrawDecisionFunction.
type DecisionOptions struct {
	Resolution  int
	PlotSupport bool
}

// DrawDecisionFunction contours the decision function over the current limits:
// the boundary (level 0) solid, the margins (levels ±1) dashed. Support points
// are circled when requested. The limits are pinned so the overlay does not
// rescale the axes.
func DrawDecisionFunction(r Renderer, m DecisionFunction, opts DecisionOptions) {
	res := opts.Resolution
	if res <= 0 {
		res = DefaultResolution
	}
	e := r.Limits()
	grid := EvalGrid(e, res, m.Decision)
	for _, level := range []float64{-1, 0, 1} {
		r.Contour(Contour{
			Level:    level,
			Segments: MarchingSquares(grid, level),
			Style:    LineStyle{Color: marginGray, Width: 1.5, Dashed: level != 0},
		})
	}
	if opts.PlotSupport {
		r.Circles(Circles{Centers: m.SupportPoints(), Radius: supportRadius, Style: LineStyle{Color: Black, Width: 1}})
	}
	r.SetXLim(e.XMin, e.XMax)
	r.SetYLim(e.YMin, e.YMax)
}

// DrawRadialProjection lifts ds to (x, y, exp(-(x²+y²))) and draws it as a 3-D
// scatter seen from cam.
func DrawRadialProjection(r Renderer, ds dataset.Dataset, cam Camera) {
	pts := make([]Vec3, len(ds.Points))
	for i, p := range ds.Points {
		pts[i] = Vec3{X: p.X, Y: p.Y, Z: dataset.RadialFeature(p)}
	}
	r.Scatter3D(Scatter3D{
		Points:     pts,
		Labels:     ds.Labels,
		Classes:    ds.Classes,
		Colormap:   Autumn,
		Camera:     cam,
		AxisLabels: [3]string{"x", "y", "r"},
		Size:       50,
	})
}
