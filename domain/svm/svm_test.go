package svm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/svmdeck/domain/dataset"
)

func separableBlobs() dataset.Dataset {
	return dataset.MakeBlobs(dataset.BlobsOptions{
		Samples:      50,
		Std:          0.6,
		CenterPoints: []dataset.Point{{X: -2, Y: -2}, {X: 2, Y: 2}},
		Seed:         0,
	})
}

func rings() dataset.Dataset {
	return dataset.MakeCircles(dataset.CirclesOptions{Samples: 100, Factor: 0.1, Noise: 0.1, Seed: 7, Shuffle: true})
}

func TestSVC_TwoPointHardMargin(t *testing.T) {
	ds := dataset.Dataset{
		Points:  []dataset.Point{{X: -1, Y: 0}, {X: 1, Y: 0}},
		Labels:  []int{0, 1},
		Classes: 2,
	}
	f, err := NewSVC(Linear{}, 1e10).FitDetailed(ds)
	require.NoError(t, err)

	w, ok := f.Weights()
	require.True(t, ok)
	assert.InDelta(t, 1, w[0], 1e-9)
	assert.InDelta(t, 0, w[1], 1e-9)
	assert.InDelta(t, 0, f.Bias(), 1e-9)
	assert.InDelta(t, 0.5, f.Decision(dataset.Point{X: 0.5}), 1e-9)
	assert.Equal(t, []int{0, 1}, f.Support())
	assert.True(t, f.Stats().Converged)
}

func TestSVC_SeparableTrainingSetIsClassifiedExactly(t *testing.T) {
	ds := separableBlobs()
	m, err := NewSVC(Linear{}, 1e10).Fit(ds)
	require.NoError(t, err)

	count, rate := Misclassified(m, ds)
	assert.Zero(t, count)
	assert.Zero(t, rate)
}

func TestSVC_SupportIsNonEmptySubset(t *testing.T) {
	ds := separableBlobs()
	f, err := NewSVC(Linear{}, 1e10).FitDetailed(ds)
	require.NoError(t, err)

	support := f.Support()
	points := f.SupportPoints()
	require.NotEmpty(t, support)
	require.Len(t, points, len(support))
	for k, idx := range support {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, ds.Len())
		assert.Equal(t, ds.Points[idx], points[k])
	}
	assert.Less(t, len(support), ds.Len())
}

func TestSVC_HardMarginSupportLiesOnMargin(t *testing.T) {
	ds := separableBlobs()
	f, err := NewSVC(Linear{}, 1e10).FitDetailed(ds)
	require.NoError(t, err)
	require.True(t, f.Stats().Converged)

	for _, idx := range f.Support() {
		y := 2*float64(ds.Labels[idx]) - 1
		assert.InDelta(t, 1, y*f.Decision(ds.Points[idx]), 0.05)
	}
	for i, p := range ds.Points {
		y := 2*float64(ds.Labels[i]) - 1
		assert.Greater(t, y*f.Decision(p), 0.95)
	}
}

func TestSVC_LinearDecisionMatchesKernelExpansion(t *testing.T) {
	ds := separableBlobs()
	f, err := NewSVC(Linear{}, 1e10).FitDetailed(ds)
	require.NoError(t, err)

	p := dataset.Point{X: 0.3, Y: -0.7}
	sum := f.bias
	for i, sv := range f.points {
		sum += f.coef[i] * Linear{}.Eval(sv, p)
	}
	assert.InDelta(t, sum, f.Decision(p), 1e-6)
}

func TestSVC_LinearKernelFailsOnRings(t *testing.T) {
	ds := rings()
	m, err := NewSVC(Linear{}, 1).Fit(ds)
	require.NoError(t, err)

	count, rate := Misclassified(m, ds)
	assert.Positive(t, count)
	assert.Greater(t, rate, 0.0)
}

func TestSVC_RBFKernelSeparatesRings(t *testing.T) {
	ds := rings()
	m, err := NewSVC(RBF{Gamma: 2}, 10).Fit(ds)
	require.NoError(t, err)

	_, rate := Misclassified(m, ds)
	assert.LessOrEqual(t, rate, 0.05)
}

func TestSVC_Deterministic(t *testing.T) {
	ds := separableBlobs()
	a, err := NewSVC(Linear{}, 1e10).FitDetailed(ds)
	require.NoError(t, err)
	b, err := NewSVC(Linear{}, 1e10).FitDetailed(ds)
	require.NoError(t, err)
	assert.Equal(t, a.Support(), b.Support())
	assert.Equal(t, a.Bias(), b.Bias())
}

func TestSVC_Errors(t *testing.T) {
	_, err := NewSVC(Linear{}, 1).Fit(dataset.Dataset{})
	require.ErrorIs(t, err, ErrEmpty)

	oneClass := dataset.Dataset{Points: []dataset.Point{{X: 1}, {X: 2}}, Labels: []int{1, 1}, Classes: 2}
	_, err = NewSVC(Linear{}, 1).Fit(oneClass)
	require.ErrorIs(t, err, ErrNotBinary)

	threeClass := dataset.Dataset{Points: []dataset.Point{{X: 1}, {X: 2}}, Labels: []int{0, 2}, Classes: 3}
	_, err = NewSVC(Linear{}, 1).Fit(threeClass)
	require.ErrorIs(t, err, ErrNotBinary)

	mismatch := dataset.Dataset{Points: []dataset.Point{{X: 1}, {X: 2}}, Labels: []int{0}}
	_, err = NewSVC(Linear{}, 1).Fit(mismatch)
	require.ErrorIs(t, err, dataset.ErrLabelMismatch)
}

func TestParseKernel(t *testing.T) {
	k, err := ParseKernel("Linear", 0)
	require.NoError(t, err)
	assert.Equal(t, "linear", k.Name())

	k, err = ParseKernel("rbf", 0)
	require.NoError(t, err)
	assert.Equal(t, RBF{Gamma: 1}, k)

	_, err = ParseKernel("sigmoid", 0)
	require.ErrorIs(t, err, ErrUnknownKernel)
}
