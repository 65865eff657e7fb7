package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// CirclesOptions configures MakeCircles.
type CirclesOptions struct {
	Samples int
	Factor  float64 // inner radius relative to the unit outer circle
	Noise   float64 // std of the Gaussian added to both coordinates
	Seed    uint64
	Shuffle bool
}

// MakeCircles places Samples/2 points on the unit circle (label 0) and the rest on
// a circle of radius Factor (label 1), both evenly spaced over [0, 2π).
func MakeCircles(opts CirclesOptions) Dataset {
	src := newSource(opts.Seed)
	nOut := opts.Samples / 2
	nIn := opts.Samples - nOut

	ds := Dataset{
		Points:  make([]Point, 0, opts.Samples),
		Labels:  make([]int, 0, opts.Samples),
		Classes: 2,
	}
	ds.appendRing(nOut, 1, 0)
	ds.appendRing(nIn, opts.Factor, 1)

	if opts.Shuffle {
		rng := rand.New(src)
		rng.Shuffle(ds.Len(), func(i, j int) {
			ds.Points[i], ds.Points[j] = ds.Points[j], ds.Points[i]
			ds.Labels[i], ds.Labels[j] = ds.Labels[j], ds.Labels[i]
		})
	}
	if opts.Noise > 0 {
		noise := distuv.Normal{Mu: 0, Sigma: opts.Noise, Src: src}
		for i := range ds.Points {
			ds.Points[i].X += noise.Rand()
			ds.Points[i].Y += noise.Rand()
		}
	}
	return ds
}

func (d *Dataset) appendRing(n int, radius float64, label int) {
	if n <= 0 {
		return
	}
	// n+1 samples over the closed interval, dropping 2π so the ring is not doubled.
	angles := floats.Span(make([]float64, n+1), 0, 2*math.Pi)[:n]
	for _, a := range angles {
		d.Points = append(d.Points, Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
		d.Labels = append(d.Labels, label)
	}
}
