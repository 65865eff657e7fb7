package plot

import (
	"gonum.org/v1/gonum/floats"

	"github.com/soocke/svmdeck/domain/dataset"
)

// Grid holds a scalar field sampled on a rectilinear lattice.
// Values[iy][ix] is the sample at (Xs[ix], Ys[iy]).
type Grid struct {
	Xs, Ys []float64
	Values [][]float64
}

// EvalGrid samples f on a res×res lattice spanning e, edges included.
func EvalGrid(e dataset.Extent, res int, f func(dataset.Point) float64) Grid {
	if res < 2 {
		res = 2
	}
	g := Grid{
		Xs:     floats.Span(make([]float64, res), e.XMin, e.XMax),
		Ys:     floats.Span(make([]float64, res), e.YMin, e.YMax),
		Values: make([][]float64, res),
	}
	for iy, y := range g.Ys {
		row := make([]float64, res)
		for ix, x := range g.Xs {
			row[ix] = f(dataset.Point{X: x, Y: y})
		}
		g.Values[iy] = row
	}
	return g
}

// cell edges: 0 bottom, 1 right, 2 top, 3 left.
var squareEdges = [16][][2]int{
	0:  nil,
	1:  {{3, 0}},
	2:  {{0, 1}},
	3:  {{3, 1}},
	4:  {{1, 2}},
	5:  nil, // saddle
	6:  {{0, 2}},
	7:  {{3, 2}},
	8:  {{2, 3}},
	9:  {{0, 2}},
	10: nil, // saddle
	11: {{1, 2}},
	12: {{1, 3}},
	13: {{0, 1}},
	14: {{3, 0}},
	15: nil,
}

// MarchingSquares extracts the level set of g as unjoined segments, linearly
// interpolated along cell edges. Saddle cells are resolved by the cell mean.
func MarchingSquares(g Grid, level float64) []Segment {
	var out []Segment
	for iy := 0; iy+1 < len(g.Ys); iy++ {
		for ix := 0; ix+1 < len(g.Xs); ix++ {
			v := [4]float64{
				g.Values[iy][ix],
				g.Values[iy][ix+1],
				g.Values[iy+1][ix+1],
				g.Values[iy+1][ix],
			}
			idx := 0
			for k, val := range v {
				if val >= level {
					idx |= 1 << k
				}
			}
			pairs := squareEdges[idx]
			if idx == 5 || idx == 10 {
				centerAbove := (v[0]+v[1]+v[2]+v[3])/4 >= level
				if (idx == 5) == centerAbove {
					pairs = [][2]int{{0, 1}, {2, 3}}
				} else {
					pairs = [][2]int{{3, 0}, {1, 2}}
				}
			}
			for _, p := range pairs {
				out = append(out, Segment{
					A: edgePoint(g, ix, iy, v, p[0], level),
					B: edgePoint(g, ix, iy, v, p[1], level),
				})
			}
		}
	}
	return out
}

func edgePoint(g Grid, ix, iy int, v [4]float64, edge int, level float64) dataset.Point {
	x0, x1 := g.Xs[ix], g.Xs[ix+1]
	y0, y1 := g.Ys[iy], g.Ys[iy+1]
	switch edge {
	case 0:
		t := frac(v[0], v[1], level)
		return dataset.Point{X: x0 + t*(x1-x0), Y: y0}
	case 1:
		t := frac(v[1], v[2], level)
		return dataset.Point{X: x1, Y: y0 + t*(y1-y0)}
	case 2:
		t := frac(v[3], v[2], level)
		return dataset.Point{X: x0 + t*(x1-x0), Y: y1}
	default:
		t := frac(v[0], v[3], level)
		return dataset.Point{X: x0, Y: y0 + t*(y1-y0)}
	}
}

func frac(a, b, level float64) float64 {
	if a == b {
		return 0.5
	}
	return (level - a) / (b - a)
}
