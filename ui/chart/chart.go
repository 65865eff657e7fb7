// Package chart rasterizes recorded plot figures with go-chart.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/soocke/svmdeck/domain/dataset"
	"github.com/soocke/svmdeck/domain/plot"
)

// ErrNilFigure is returned when Rasterize is handed no figure.
var ErrNilFigure = errors.New("chart: nil figure")

const (
	ringSegments = 48
	// view3D is the half-extent of the projected 3-D scene; the normalized cube
	// projects inside sqrt(3).
	view3D = 1.8
)

// Rasterizer turns figures into images of a fixed size.
type Rasterizer struct {
	Width, Height int
}

// New returns a Rasterizer; non-positive sizes fall back to 640x480.
func New(width, height int) *Rasterizer {
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	return &Rasterizer{Width: width, Height: height}
}

// Rasterize renders fig into an image of the rasterizer's size.
func (r *Rasterizer) Rasterize(fig *plot.Figure) (image.Image, error) {
	if r == nil {
		r = New(0, 0)
	}
	return Rasterize(fig, r.Width, r.Height)
}

// Rasterize renders fig at width x height. An empty figure yields a blank canvas.
func Rasterize(fig *plot.Figure, width, height int) (image.Image, error) {
	if fig == nil {
		return nil, ErrNilFigure
	}
	var ch gochart.Chart
	if fig.Is3D() {
		ch = chart3D(fig)
	} else {
		ch = chart2D(fig)
	}
	if len(ch.Series) == 0 {
		return blank(width, height), nil
	}
	ch.Width = width
	ch.Height = height

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", fig.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", fig.Title, err)
	}
	return img, nil
}

func chart2D(fig *plot.Figure) gochart.Chart {
	lim := fig.Limits()
	var series []gochart.Series
	for _, p := range fig.Primitives() {
		switch v := p.(type) {
		case plot.Scatter:
			series = append(series, scatterSeries(v)...)
		case plot.Line:
			series = append(series, lineSeries(v.Xs, v.Ys, v.Style))
		case plot.Contour:
			series = append(series, contourSeries(v)...)
		case plot.Circles:
			series = append(series, circleSeries(v, lim)...)
		}
	}
	return gochart.Chart{
		Title:      fig.Title,
		Background: gochart.Style{Padding: gochart.Box{Top: 28, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  fig.XLabel,
			Range: &gochart.ContinuousRange{Min: lim.XMin, Max: lim.XMax},
			Ticks: niceTicks(lim.XMin, lim.XMax, 6),
		},
		YAxis: gochart.YAxis{
			Name:  fig.YLabel,
			Range: &gochart.ContinuousRange{Min: lim.YMin, Max: lim.YMax},
			Ticks: niceTicks(lim.YMin, lim.YMax, 6),
		},
		Series: series,
	}
}

// scatterSeries emits one dot-only series per label so every class keeps a
// single color.
func scatterSeries(s plot.Scatter) []gochart.Series {
	byLabel := make(map[int]*gochart.ContinuousSeries)
	var order []int
	for i, pt := range s.Points {
		lbl := 0
		if i < len(s.Labels) {
			lbl = s.Labels[i]
		}
		cs, ok := byLabel[lbl]
		if !ok {
			cs = &gochart.ContinuousSeries{Style: pointStyle(toDrawing(plot.ColorOf(s.Colormap, lbl, s.Classes)), s.Size)}
			byLabel[lbl] = cs
			order = append(order, lbl)
		}
		cs.XValues = append(cs.XValues, pt.X)
		cs.YValues = append(cs.YValues, pt.Y)
	}
	out := make([]gochart.Series, 0, len(order))
	for _, lbl := range order {
		out = append(out, *byLabel[lbl])
	}
	return out
}

func contourSeries(c plot.Contour) []gochart.Series {
	out := make([]gochart.Series, 0, len(c.Segments))
	for _, seg := range c.Segments {
		out = append(out, lineSeries([]float64{seg.A.X, seg.B.X}, []float64{seg.A.Y, seg.B.Y}, c.Style))
	}
	return out
}

// circleSeries draws each ring in screen space so it stays round regardless
// of the axis aspect. Radius is a marker size in points.
func circleSeries(c plot.Circles, lim dataset.Extent) []gochart.Series {
	rx := (lim.XMax - lim.XMin) * math.Sqrt(c.Radius) / 200
	ry := (lim.YMax - lim.YMin) * math.Sqrt(c.Radius) / 150
	out := make([]gochart.Series, 0, len(c.Centers))
	for _, ctr := range c.Centers {
		xs := make([]float64, ringSegments+1)
		ys := make([]float64, ringSegments+1)
		for i := range xs {
			a := 2 * math.Pi * float64(i) / ringSegments
			xs[i] = ctr.X + rx*math.Cos(a)
			ys[i] = ctr.Y + ry*math.Sin(a)
		}
		out = append(out, lineSeries(xs, ys, c.Style))
	}
	return out
}

func lineSeries(xs, ys []float64, ls plot.LineStyle) gochart.ContinuousSeries {
	st := gochart.Style{
		StrokeColor: toDrawing(ls.Color),
		StrokeWidth: math.Max(ls.Width, 1),
	}
	if ls.Dashed {
		st.StrokeDashArray = []float64{6, 4}
	}
	return gochart.ContinuousSeries{XValues: xs, YValues: ys, Style: st}
}

// pointStyle returns a style that renders points only. size follows the
// scatter convention of marker area in points squared.
func pointStyle(col drawing.Color, size float64) gochart.Style {
	r := 3.0
	if size > 0 {
		r = math.Sqrt(size) / 2
	}
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    r,
		DotColor:    col,
	}
}

func chart3D(fig *plot.Figure) gochart.Chart {
	var series []gochart.Series
	var labels []gochart.Value2
	for _, p := range fig.Primitives() {
		s, ok := p.(plot.Scatter3D)
		if !ok {
			continue
		}
		b := plot.BoundsOf(s.Points)
		edge := plot.LineStyle{Color: color.RGBA{R: 160, G: 160, B: 160, A: 255}, Width: 1}
		for _, e := range plot.CubeEdges() {
			u0, w0, _ := s.Camera.Project(e[0])
			u1, w1, _ := s.Camera.Project(e[1])
			series = append(series, lineSeries([]float64{u0, u1}, []float64{w0, w1}, edge))
		}
		series = append(series, points3D(s, b)...)
		axes := [3]plot.Vec3{{X: 1.25, Y: -1, Z: -1}, {X: -1, Y: 1.25, Z: -1}, {X: -1, Y: -1, Z: 1.25}}
		for i, a := range axes {
			if s.AxisLabels[i] == "" {
				continue
			}
			u, w, _ := s.Camera.Project(a)
			labels = append(labels, gochart.Value2{XValue: u, YValue: w, Label: s.AxisLabels[i]})
		}
	}
	if len(labels) > 0 {
		series = append(series, gochart.AnnotationSeries{Annotations: labels})
	}
	hidden := gochart.Style{Hidden: true}
	return gochart.Chart{
		Title:      fig.Title,
		Background: gochart.Style{Padding: gochart.Box{Top: 28, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Style: hidden, Range: &gochart.ContinuousRange{Min: -view3D, Max: view3D}},
		YAxis:      gochart.YAxis{Style: hidden, Range: &gochart.ContinuousRange{Min: -view3D, Max: view3D}},
		Series:     series,
	}
}

// points3D emits one series per point in painter's order, fading the far
// ones the way depth shading does.
func points3D(s plot.Scatter3D, b plot.Bounds3) []gochart.Series {
	order := s.DrawOrder()
	out := make([]gochart.Series, 0, len(order))
	for _, i := range order {
		u, w, depth := s.Camera.Project(b.Normalize(s.Points[i]))
		lbl := 0
		if i < len(s.Labels) {
			lbl = s.Labels[i]
		}
		col := toDrawing(plot.ColorOf(s.Colormap, lbl, s.Classes))
		col.A = shade(depth)
		out = append(out, gochart.ContinuousSeries{
			XValues: []float64{u},
			YValues: []float64{w},
			Style:   pointStyle(col, s.Size),
		})
	}
	return out
}

// shade maps a depth in [-sqrt3, sqrt3] to an alpha between 0.3 and 1.
func shade(depth float64) uint8 {
	t := (depth + math.Sqrt(3)) / (2 * math.Sqrt(3))
	t = math.Max(0, math.Min(1, t))
	return uint8(math.Round(255 * (0.3 + 0.7*t)))
}

// niceTicks generates tick marks on 1-2-2.5-5 steps whose first and last
// values are exactly min and max. go-chart derives the axis range from the
// ticks, so the bounds must be ticks themselves. Interior ticks closer than a
// quarter step to a bound are dropped to keep labels apart.
func niceTicks(min, max float64, n int) []gochart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	step := mag
	best := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		count := math.Max(math.Ceil((max-min)/(c*mag)), 2)
		if score := math.Abs(count - float64(n)); score < best {
			best = score
			step = c * mag
		}
	}
	ticks := []gochart.Tick{{Value: min, Label: formatTick(min, step/10)}}
	for v := math.Floor(min/step) * step; v < max; v += step {
		if v-min < step/4 || max-v < step/4 {
			continue
		}
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, gochart.Tick{Value: v, Label: formatTick(v, step)})
	}
	return append(ticks, gochart.Tick{Value: max, Label: formatTick(max, step/10)})
}

func formatTick(v, step float64) string {
	switch {
	case step >= 1:
		return fmt.Sprintf("%.0f", v)
	case step >= 0.1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blank(w, h int) image.Image {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}
