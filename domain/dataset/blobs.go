package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// BlobsOptions configures MakeBlobs.
// When CenterPoints is non-empty it overrides Centers and Box.
type BlobsOptions struct {
	Samples      int
	Centers      int
	Std          float64
	Box          [2]float64 // range for randomly placed centers, defaults to [-10, 10]
	CenterPoints []Point
	Seed         uint64
}

// MakeBlobs draws isotropic Gaussian clusters, one label per center.
// Samples are split evenly across centers; the first Samples%Centers centers get
// one extra point. Output is ordered by center and fully determined by Seed.
func MakeBlobs(opts BlobsOptions) Dataset {
	src := newSource(opts.Seed)
	centers := opts.CenterPoints
	if len(centers) == 0 {
		box := opts.Box
		if box[0] == 0 && box[1] == 0 {
			box = [2]float64{-10, 10}
		}
		u := distuv.Uniform{Min: box[0], Max: box[1], Src: src}
		centers = make([]Point, opts.Centers)
		for i := range centers {
			centers[i] = Point{X: u.Rand(), Y: u.Rand()}
		}
	}
	k := len(centers)
	ds := Dataset{
		Points:  make([]Point, 0, opts.Samples),
		Labels:  make([]int, 0, opts.Samples),
		Classes: k,
	}
	if k == 0 {
		return ds
	}
	noise := distuv.Normal{Mu: 0, Sigma: opts.Std, Src: src}
	for c, center := range centers {
		n := opts.Samples / k
		if c < opts.Samples%k {
			n++
		}
		for i := 0; i < n; i++ {
			ds.Points = append(ds.Points, Point{X: center.X + noise.Rand(), Y: center.Y + noise.Rand()})
			ds.Labels = append(ds.Labels, c)
		}
	}
	return ds
}

// newSource returns the PCG stream used by every generator in this package.
func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
