package svm

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/soocke/svmdeck/domain/dataset"
)

const (
	defaultTol     = 1e-3
	defaultMaxIter = 100000
	minQuad        = 1e-12
)

// SVC is a C-support vector classifier trained with sequential minimal
// optimization. The zero value fits a linear kernel with C=1.
type SVC struct {
	Kernel  Kernel
	C       float64
	Tol     float64 // stopping tolerance on the maximal KKT violation
	MaxIter int
}

// NewSVC returns a classifier with the given kernel and penalty.
func NewSVC(kernel Kernel, c float64) *SVC {
	return &SVC{Kernel: kernel, C: c}
}

// Fit implements Classifier.
func (s *SVC) Fit(ds dataset.Dataset) (Model, error) {
	f, err := s.FitDetailed(ds)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// FitDetailed trains the classifier and returns the concrete model.
//
// The dual problem min ½αᵀQα − eᵀα, 0 ≤ α ≤ C, yᵀα = 0 is solved two
// variables at a time, choosing the maximal violating pair at every step.
// Labels 0 and 1 map to −1 and +1.
func (s *SVC) FitDetailed(ds dataset.Dataset) (*Fitted, error) {
	n := ds.Len()
	if n == 0 {
		return nil, ErrEmpty
	}
	if len(ds.Labels) != n {
		return nil, dataset.ErrLabelMismatch
	}
	y := make([]float64, n)
	var pos, neg int
	for i, l := range ds.Labels {
		switch l {
		case 0:
			y[i] = -1
			neg++
		case 1:
			y[i] = 1
			pos++
		default:
			return nil, ErrNotBinary
		}
	}
	if pos == 0 || neg == 0 {
		return nil, ErrNotBinary
	}

	kernel := s.Kernel
	if kernel == nil {
		kernel = Linear{}
	}
	c := s.C
	if c <= 0 {
		c = 1
	}
	tol := s.Tol
	if tol <= 0 {
		tol = defaultTol
	}
	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = defaultMaxIter
	}

	gram := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			gram.SetSym(i, j, kernel.Eval(ds.Points[i], ds.Points[j]))
		}
	}
	q := func(a, b int) float64 { return y[a] * y[b] * gram.At(a, b) }

	alpha := make([]float64, n)
	grad := make([]float64, n)
	for i := range grad {
		grad[i] = -1
	}

	stats := FitStats{}
	for stats.Iterations < maxIter {
		i, j, gap := selectPair(y, alpha, grad, c)
		stats.Gap = gap
		if j < 0 || gap < tol {
			stats.Converged = true
			break
		}
		stats.Iterations++

		oldI, oldJ := alpha[i], alpha[j]
		quad := gram.At(i, i) + gram.At(j, j) - 2*gram.At(i, j)
		if quad <= 0 {
			quad = minQuad
		}
		if y[i] != y[j] {
			delta := (-grad[i] - grad[j]) / quad
			diff := alpha[i] - alpha[j]
			alpha[i] += delta
			alpha[j] += delta
			if diff > 0 {
				if alpha[j] < 0 {
					alpha[j] = 0
					alpha[i] = diff
				}
				if alpha[i] > c {
					alpha[i] = c
					alpha[j] = c - diff
				}
			} else {
				if alpha[i] < 0 {
					alpha[i] = 0
					alpha[j] = -diff
				}
				if alpha[j] > c {
					alpha[j] = c
					alpha[i] = c + diff
				}
			}
		} else {
			delta := (grad[i] - grad[j]) / quad
			sum := alpha[i] + alpha[j]
			alpha[i] -= delta
			alpha[j] += delta
			if sum > c {
				if alpha[i] > c {
					alpha[i] = c
					alpha[j] = sum - c
				}
				if alpha[j] > c {
					alpha[j] = c
					alpha[i] = sum - c
				}
			} else {
				if alpha[j] < 0 {
					alpha[j] = 0
					alpha[i] = sum
				}
				if alpha[i] < 0 {
					alpha[i] = 0
					alpha[j] = sum
				}
			}
		}

		dI, dJ := alpha[i]-oldI, alpha[j]-oldJ
		for t := 0; t < n; t++ {
			grad[t] += q(t, i)*dI + q(t, j)*dJ
		}
	}

	rho := computeRho(y, alpha, grad, c)
	return newFitted(kernel, ds, y, alpha, -rho, stats), nil
}

// selectPair returns the maximal violating pair (i from I_up, j from I_low)
// and the violation gap. j is -1 when no candidate exists.
func selectPair(y, alpha, grad []float64, c float64) (int, int, float64) {
	gmax, gmax2 := math.Inf(-1), math.Inf(-1)
	i, j := -1, -1
	for t := range alpha {
		if y[t] > 0 {
			if alpha[t] < c && -grad[t] >= gmax {
				gmax, i = -grad[t], t
			}
			if alpha[t] > 0 && grad[t] >= gmax2 {
				gmax2, j = grad[t], t
			}
		} else {
			if alpha[t] > 0 && grad[t] >= gmax {
				gmax, i = grad[t], t
			}
			if alpha[t] < c && -grad[t] >= gmax2 {
				gmax2, j = -grad[t], t
			}
		}
	}
	if i < 0 {
		return i, -1, 0
	}
	return i, j, gmax + gmax2
}

// computeRho derives the offset from the free variables, falling back to the
// midpoint of the feasible interval when every α sits at a bound.
func computeRho(y, alpha, grad []float64, c float64) float64 {
	ub, lb := math.Inf(1), math.Inf(-1)
	var nFree int
	var sumFree float64
	for t := range alpha {
		yg := y[t] * grad[t]
		switch {
		case alpha[t] >= c:
			if y[t] < 0 {
				ub = math.Min(ub, yg)
			} else {
				lb = math.Max(lb, yg)
			}
		case alpha[t] <= 0:
			if y[t] > 0 {
				ub = math.Min(ub, yg)
			} else {
				lb = math.Max(lb, yg)
			}
		default:
			nFree++
			sumFree += yg
		}
	}
	if nFree > 0 {
		return sumFree / float64(nFree)
	}
	return (ub + lb) / 2
}
