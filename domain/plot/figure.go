package plot

import (
	"math"

	"github.com/soocke/svmdeck/domain/dataset"
)

// Figure records primitives in draw order. It implements Renderer and is the
// artifact handed to the presentation shell.
type Figure struct {
	Title      string
	XLabel     string
	YLabel     string
	primitives []Primitive
	xlim, ylim *[2]float64
}

// NewFigure returns an empty figure.
func NewFigure(title string) *Figure { return &Figure{Title: title} }

func (f *Figure) Scatter(s Scatter)     { f.primitives = append(f.primitives, s) }
func (f *Figure) Line(l Line)           { f.primitives = append(f.primitives, l) }
func (f *Figure) Contour(c Contour)     { f.primitives = append(f.primitives, c) }
func (f *Figure) Circles(c Circles)     { f.primitives = append(f.primitives, c) }
func (f *Figure) Scatter3D(s Scatter3D) { f.primitives = append(f.primitives, s) }

func (f *Figure) SetXLim(min, max float64) { f.xlim = &[2]float64{min, max} }
func (f *Figure) SetYLim(min, max float64) { f.ylim = &[2]float64{min, max} }

// Primitives returns the recorded primitives in draw order.
func (f *Figure) Primitives() []Primitive { return f.primitives }

// Count returns how many primitives of kind k were recorded.
func (f *Figure) Count(k Kind) int {
	n := 0
	for _, p := range f.primitives {
		if p.Kind() == k {
			n++
		}
	}
	return n
}

// Is3D reports whether the figure holds a 3-D scatter.
func (f *Figure) Is3D() bool { return f.Count(KindScatter3D) > 0 }

// Limits autoscales over scatter and line data with a 5% margin, then applies
// any fixed limits.
func (f *Figure) Limits() dataset.Extent {
	lo := dataset.Point{X: math.Inf(1), Y: math.Inf(1)}
	hi := dataset.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(x, y float64) {
		lo.X, hi.X = math.Min(lo.X, x), math.Max(hi.X, x)
		lo.Y, hi.Y = math.Min(lo.Y, y), math.Max(hi.Y, y)
	}
	for _, p := range f.primitives {
		switch v := p.(type) {
		case Scatter:
			for _, pt := range v.Points {
				grow(pt.X, pt.Y)
			}
		case Line:
			for i := range v.Xs {
				grow(v.Xs[i], v.Ys[i])
			}
		}
	}
	e := dataset.Extent{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	if !math.IsInf(lo.X, 1) {
		e = dataset.Extent{XMin: lo.X, XMax: hi.X, YMin: lo.Y, YMax: hi.Y}.Pad(0.05)
	}
	if f.xlim != nil {
		e.XMin, e.XMax = f.xlim[0], f.xlim[1]
	}
	if f.ylim != nil {
		e.YMin, e.YMax = f.ylim[0], f.ylim[1]
	}
	return e
}

var _ Renderer = (*Figure)(nil)
