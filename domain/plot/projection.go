package plot

import (
	"math"
	"slices"
)

// Vec3 is a point in data space.
type Vec3 struct {
	X, Y, Z float64
}

// Camera is an orthographic view given as elevation above the x-y plane and
// azimuth around the z axis, both in degrees (matplotlib view_init convention).
type Camera struct {
	Elev, Azim float64
}

// Project maps v to screen coordinates (u right, w up) and a depth that grows
// towards the viewer.
func (c Camera) Project(v Vec3) (u, w, depth float64) {
	el := c.Elev * math.Pi / 180
	az := c.Azim * math.Pi / 180
	sinEl, cosEl := math.Sincos(el)
	sinAz, cosAz := math.Sincos(az)

	u = -sinAz*v.X + cosAz*v.Y
	w = -sinEl*cosAz*v.X - sinEl*sinAz*v.Y + cosEl*v.Z
	depth = cosEl*cosAz*v.X + cosEl*sinAz*v.Y + sinEl*v.Z
	return u, w, depth
}

// Bounds3 is an axis-aligned box in data space.
type Bounds3 struct {
	Min, Max Vec3
}

// BoundsOf returns the tight box around pts. An empty slice yields the unit cube.
func BoundsOf(pts []Vec3) Bounds3 {
	if len(pts) == 0 {
		return Bounds3{Max: Vec3{1, 1, 1}}
	}
	b := Bounds3{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min = Vec3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)}
		b.Max = Vec3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)}
	}
	return b
}

// Normalize maps v into the cube [-1, 1]³ spanned by b. Flat axes map to 0.
func (b Bounds3) Normalize(v Vec3) Vec3 {
	n := func(x, lo, hi float64) float64 {
		if hi == lo {
			return 0
		}
		return 2*(x-lo)/(hi-lo) - 1
	}
	return Vec3{n(v.X, b.Min.X, b.Max.X), n(v.Y, b.Min.Y, b.Max.Y), n(v.Z, b.Min.Z, b.Max.Z)}
}

// CubeEdges returns the twelve edges of the normalized cube.
func CubeEdges() [12][2]Vec3 {
	var edges [12][2]Vec3
	k := 0
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-1, 1} {
			edges[k] = [2]Vec3{{-1, a, b}, {1, a, b}}
			edges[k+1] = [2]Vec3{{a, -1, b}, {a, 1, b}}
			edges[k+2] = [2]Vec3{{a, b, -1}, {a, b, 1}}
			k += 3
		}
	}
	return edges
}

// DrawOrder returns point indices sorted far-to-near for painter's drawing.
func (s Scatter3D) DrawOrder() []int {
	b := BoundsOf(s.Points)
	depth := make([]float64, len(s.Points))
	order := make([]int, len(s.Points))
	for i, p := range s.Points {
		_, _, depth[i] = s.Camera.Project(b.Normalize(p))
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case depth[a] < depth[b]:
			return -1
		case depth[a] > depth[b]:
			return 1
		default:
			return 0
		}
	})
	return order
}
