package dataset

import (
	"errors"
	"math"
)

// ErrLabelMismatch is returned when a point set and its labels differ in length.
var ErrLabelMismatch = errors.New("dataset: label count does not match point count")

// Point is a single 2-D sample.
type Point struct {
	X, Y float64
}

// Dataset is a labeled point set. Labels[i] belongs to Points[i] and lies in [0, Classes).
// A Dataset is treated as immutable once built.
type Dataset struct {
	Points  []Point
	Labels  []int
	Classes int
}

// Extent is an axis-aligned plotting range.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// New builds a Dataset from parallel slices.
func New(points []Point, labels []int, classes int) (Dataset, error) {
	if len(points) != len(labels) {
		return Dataset{}, ErrLabelMismatch
	}
	return Dataset{Points: points, Labels: labels, Classes: classes}, nil
}

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.Points) }

// ClassCount reports how many distinct labels occur in the set.
func (d Dataset) ClassCount() int {
	seen := make(map[int]struct{}, 2)
	for _, l := range d.Labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}

// Extent returns the bounding box of the points widened by 5% on each side.
// An empty set yields the unit box.
func (d Dataset) Extent() Extent {
	if len(d.Points) == 0 {
		return Extent{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	}
	e := Extent{XMin: math.Inf(1), XMax: math.Inf(-1), YMin: math.Inf(1), YMax: math.Inf(-1)}
	for _, p := range d.Points {
		e.XMin = math.Min(e.XMin, p.X)
		e.XMax = math.Max(e.XMax, p.X)
		e.YMin = math.Min(e.YMin, p.Y)
		e.YMax = math.Max(e.YMax, p.Y)
	}
	return e.Pad(0.05)
}

// Pad widens the extent by frac of its span on every side.
func (e Extent) Pad(frac float64) Extent {
	dx := (e.XMax - e.XMin) * frac
	dy := (e.YMax - e.YMin) * frac
	if dx == 0 {
		dx = 0.5
	}
	if dy == 0 {
		dy = 0.5
	}
	return Extent{XMin: e.XMin - dx, XMax: e.XMax + dx, YMin: e.YMin - dy, YMax: e.YMax + dy}
}

// RadialFeature maps a point to exp(-(x²+y²)), the auxiliary axis used to lift
// the ring data into three dimensions.
func RadialFeature(p Point) float64 {
	return math.Exp(-(p.X*p.X + p.Y*p.Y))
}
