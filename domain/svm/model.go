package svm

import "github.com/soocke/svmdeck/domain/dataset"

// Fitted is the model produced by SVC. It is never mutated after fitting.
type Fitted struct {
	kernel  Kernel
	support []int
	points  []dataset.Point
	coef    []float64 // α_i·y_i for each support point
	bias    float64
	weights [2]float64
	linear  bool
	stats   FitStats
}

func newFitted(kernel Kernel, ds dataset.Dataset, y, alpha []float64, bias float64, stats FitStats) *Fitted {
	f := &Fitted{kernel: kernel, bias: bias, stats: stats}
	_, f.linear = kernel.(Linear)
	for i, a := range alpha {
		if a <= 0 {
			continue
		}
		p := ds.Points[i]
		f.support = append(f.support, i)
		f.points = append(f.points, p)
		f.coef = append(f.coef, a*y[i])
		f.weights[0] += a * y[i] * p.X
		f.weights[1] += a * y[i] * p.Y
	}
	return f
}

// Decision evaluates the signed decision function at p.
func (f *Fitted) Decision(p dataset.Point) float64 {
	if f.linear {
		return f.weights[0]*p.X + f.weights[1]*p.Y + f.bias
	}
	sum := f.bias
	for i, sv := range f.points {
		sum += f.coef[i] * f.kernel.Eval(sv, p)
	}
	return sum
}

// Predict returns 1 when the decision value is positive and 0 otherwise.
func (f *Fitted) Predict(p dataset.Point) int {
	if f.Decision(p) > 0 {
		return 1
	}
	return 0
}

func (f *Fitted) Support() []int { return append([]int(nil), f.support...) }

func (f *Fitted) SupportPoints() []dataset.Point { return append([]dataset.Point(nil), f.points...) }

// Weights returns the primal normal vector; ok is false for non-linear kernels.
func (f *Fitted) Weights() (w [2]float64, ok bool) { return f.weights, f.linear }

func (f *Fitted) Bias() float64 { return f.bias }

func (f *Fitted) Kernel() Kernel { return f.kernel }

func (f *Fitted) Stats() FitStats { return f.stats }

var (
	_ Classifier = (*SVC)(nil)
	_ Model      = (*Fitted)(nil)
)
