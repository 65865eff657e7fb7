package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/svmdeck/domain/dataset"
)

func sampleSet() dataset.Dataset {
	return dataset.Dataset{
		Points:  []dataset.Point{{X: 0, Y: 1}, {X: 1, Y: 4}, {X: 2, Y: 0.5}, {X: 3, Y: 3}},
		Labels:  []int{0, 1, 0, 1},
		Classes: 2,
	}
}

func TestCandidateLines_Disabled(t *testing.T) {
	fig := NewFigure("")
	DrawScatter(fig, sampleSet(), Winter)
	DrawCandidateLines(fig, false)

	require.Len(t, fig.Primitives(), 1)
	assert.Equal(t, 1, fig.Count(KindScatter))
	assert.Zero(t, fig.Count(KindLine))
}

func TestCandidateLines_Enabled(t *testing.T) {
	fig := NewFigure("")
	DrawScatter(fig, sampleSet(), Winter)
	DrawCandidateLines(fig, true)

	require.Len(t, fig.Primitives(), 4)
	assert.Equal(t, 3, fig.Count(KindLine))

	want := []CandidateLine{{1, 0.65}, {0.5, 1.6}, {-0.2, 2.9}}
	var got []CandidateLine
	for _, p := range fig.Primitives() {
		l, ok := p.(Line)
		if !ok {
			continue
		}
		require.Len(t, l.Xs, 50)
		assert.Equal(t, -1.0, l.Xs[0])
		assert.Equal(t, 3.5, l.Xs[len(l.Xs)-1])
		slope := (l.Ys[1] - l.Ys[0]) / (l.Xs[1] - l.Xs[0])
		got = append(got, CandidateLine{Slope: slope, Intercept: l.Ys[0] - slope*l.Xs[0]})
	}
	require.Len(t, got, 3)
	for i := range want {
		assert.InDelta(t, want[i].Slope, got[i].Slope, 1e-9)
		assert.InDelta(t, want[i].Intercept, got[i].Intercept, 1e-9)
	}

	e := fig.Limits()
	assert.Equal(t, -1.0, e.XMin)
	assert.Equal(t, 3.5, e.XMax)
}

func TestFigure_AutoscaleIncludesLines(t *testing.T) {
	fig := NewFigure("")
	DrawScatter(fig, sampleSet(), Autumn)
	before := fig.Limits()
	fig.Line(Line{Xs: []float64{0, 1}, Ys: []float64{-10, 10}})
	after := fig.Limits()
	assert.Less(t, after.YMin, before.YMin)
	assert.Greater(t, after.YMax, before.YMax)
}

type planeModel struct{ support []dataset.Point }

func (m planeModel) Decision(p dataset.Point) float64 { return p.X - 1.5 }
func (m planeModel) SupportPoints() []dataset.Point   { return m.support }

func TestDrawDecisionFunction_LevelsAndSupport(t *testing.T) {
	fig := NewFigure("")
	DrawScatter(fig, sampleSet(), Autumn)
	limits := fig.Limits()
	DrawDecisionFunction(fig, planeModel{support: []dataset.Point{{X: 1, Y: 4}}}, DecisionOptions{PlotSupport: true})

	assert.Equal(t, 3, fig.Count(KindContour))
	assert.Equal(t, 1, fig.Count(KindCircles))
	assert.Equal(t, limits, fig.Limits())

	var levels []float64
	for _, p := range fig.Primitives() {
		c, ok := p.(Contour)
		if !ok {
			continue
		}
		levels = append(levels, c.Level)
		assert.Equal(t, c.Level != 0, c.Style.Dashed)
		for _, s := range c.Segments {
			assert.InDelta(t, 1.5+c.Level, s.A.X, 1e-9)
			assert.InDelta(t, 1.5+c.Level, s.B.X, 1e-9)
		}
	}
	assert.Equal(t, []float64{-1, 0, 1}, levels)
}

func TestDrawDecisionFunction_NoSupport(t *testing.T) {
	fig := NewFigure("")
	DrawScatter(fig, sampleSet(), Autumn)
	DrawDecisionFunction(fig, planeModel{}, DecisionOptions{Resolution: 10})
	assert.Zero(t, fig.Count(KindCircles))
}

func TestMarchingSquares_Plane(t *testing.T) {
	e := dataset.Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	g := EvalGrid(e, 10, func(p dataset.Point) float64 { return p.X })
	segs := MarchingSquares(g, 0)
	require.Len(t, segs, 9)
	for _, s := range segs {
		assert.InDelta(t, 0, s.A.X, 1e-12)
		assert.InDelta(t, 0, s.B.X, 1e-12)
	}
}

func TestMarchingSquares_Circle(t *testing.T) {
	e := dataset.Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	g := EvalGrid(e, 60, func(p dataset.Point) float64 { return p.X*p.X + p.Y*p.Y })
	segs := MarchingSquares(g, 0.25)
	require.NotEmpty(t, segs)
	for _, s := range segs {
		assert.InDelta(t, 0.5, math.Hypot(s.A.X, s.A.Y), 0.02)
		assert.InDelta(t, 0.5, math.Hypot(s.B.X, s.B.Y), 0.02)
	}
}

func TestMarchingSquares_NoCrossing(t *testing.T) {
	e := dataset.Extent{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	g := EvalGrid(e, 5, func(dataset.Point) float64 { return 3 })
	assert.Empty(t, MarchingSquares(g, 0))
}

func TestCamera_Project(t *testing.T) {
	top := Camera{Elev: 90, Azim: -90}
	u, w, d := top.Project(Vec3{X: 0.3, Y: -0.4, Z: 0.9})
	assert.InDelta(t, 0.3, u, 1e-12)
	assert.InDelta(t, -0.4, w, 1e-12)
	assert.InDelta(t, 0.9, d, 1e-12)

	side := Camera{Elev: 0, Azim: 0}
	u, w, d = side.Project(Vec3{X: 0.3, Y: -0.4, Z: 0.9})
	assert.InDelta(t, -0.4, u, 1e-12)
	assert.InDelta(t, 0.9, w, 1e-12)
	assert.InDelta(t, 0.3, d, 1e-12)
}

func TestDrawRadialProjection(t *testing.T) {
	fig := NewFigure("")
	ds := sampleSet()
	DrawRadialProjection(fig, ds, Camera{Elev: 30, Azim: 30})
	require.True(t, fig.Is3D())

	s := fig.Primitives()[0].(Scatter3D)
	require.Len(t, s.Points, ds.Len())
	for i, p := range ds.Points {
		assert.Equal(t, dataset.RadialFeature(p), s.Points[i].Z)
	}
	order := s.DrawOrder()
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, order)
}

func TestBounds_NormalizeAndEdges(t *testing.T) {
	b := BoundsOf([]Vec3{{0, 0, 0}, {2, 4, 0}})
	assert.Equal(t, Vec3{1, 1, 0}, b.Normalize(Vec3{2, 4, 0}))
	assert.Equal(t, Vec3{-1, -1, 0}, b.Normalize(Vec3{0, 0, 0}))
	for _, e := range CubeEdges() {
		diff := 0
		if e[0].X != e[1].X {
			diff++
		}
		if e[0].Y != e[1].Y {
			diff++
		}
		if e[0].Z != e[1].Z {
			diff++
		}
		assert.Equal(t, 1, diff)
	}
}

func TestColormap(t *testing.T) {
	assert.Equal(t, Autumn.From, ColorOf(Autumn, 0, 2))
	assert.Equal(t, Autumn.To, ColorOf(Autumn, 1, 2))
	assert.Equal(t, Winter, ColormapByName("winter"))
	assert.Equal(t, Autumn, ColormapByName("other"))
}
