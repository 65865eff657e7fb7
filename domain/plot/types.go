package plot

import (
	"image/color"

	"github.com/soocke/svmdeck/domain/dataset"
)

// Kind identifies a primitive type.
type Kind int

const (
	KindScatter Kind = iota + 1
	KindLine
	KindContour
	KindCircles
	KindScatter3D
)

func (k Kind) String() string {
	switch k {
	case KindScatter:
		return "scatter"
	case KindLine:
		return "line"
	case KindContour:
		return "contour"
	case KindCircles:
		return "circles"
	case KindScatter3D:
		return "scatter3d"
	default:
		return "unknown"
	}
}

// Renderer is the drawing capability the demo routines need.
type Renderer interface {
	Scatter(s Scatter)
	Line(l Line)
	Contour(c Contour)
	Circles(c Circles)
	Scatter3D(s Scatter3D)
	SetXLim(min, max float64)
	SetYLim(min, max float64)
	// Limits returns the current data extent: fixed limits where set,
	// autoscaled from scatter and line data otherwise.
	Limits() dataset.Extent
}

// Primitive is a single recorded drawing operation.
type Primitive interface {
	Kind() Kind
}

// LineStyle controls stroke appearance.
type LineStyle struct {
	Color  color.RGBA
	Width  float64
	Dashed bool
}

// Scatter colors each point by its label through Colormap.
type Scatter struct {
	Points   []dataset.Point
	Labels   []int
	Classes  int
	Colormap Colormap
	Size     float64
}

// Line is an open polyline.
type Line struct {
	Xs, Ys []float64
	Style  LineStyle
}

// Segment is one straight piece of a contour.
type Segment struct {
	A, B dataset.Point
}

// Contour is the level set of a scalar field, already split into segments.
type Contour struct {
	Level    float64
	Segments []Segment
	Style    LineStyle
}

// Circles draws hollow rings, used to highlight support points.
type Circles struct {
	Centers []dataset.Point
	Radius  float64
	Style   LineStyle
}

// Scatter3D is a labeled 3-D point cloud viewed through Camera.
type Scatter3D struct {
	Points     []Vec3
	Labels     []int
	Classes    int
	Colormap   Colormap
	Camera     Camera
	AxisLabels [3]string
	Size       float64
}

func (Scatter) Kind() Kind   { return KindScatter }
func (Line) Kind() Kind      { return KindLine }
func (Contour) Kind() Kind   { return KindContour }
func (Circles) Kind() Kind   { return KindCircles }
func (Scatter3D) Kind() Kind { return KindScatter3D }

// ColorOf maps label to a color spread evenly over the colormap.
func ColorOf(cm Colormap, label, classes int) color.RGBA {
	if classes <= 1 {
		return cm.At(0)
	}
	return cm.At(float64(label) / float64(classes-1))
}
