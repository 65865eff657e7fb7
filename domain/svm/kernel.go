package svm

import (
	"fmt"
	"math"
	"strings"

	"github.com/soocke/svmdeck/domain/dataset"
)

// Kernel is the inner product used by the classifier.
type Kernel interface {
	Eval(a, b dataset.Point) float64
	Name() string
}

// Linear is the plain dot product; its boundary is a straight line.
type Linear struct{}

func (Linear) Eval(a, b dataset.Point) float64 { return a.X*b.X + a.Y*b.Y }
func (Linear) Name() string                    { return "linear" }

// RBF is the Gaussian kernel exp(-Gamma·|a-b|²).
type RBF struct {
	Gamma float64
}

func (k RBF) Eval(a, b dataset.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Exp(-k.Gamma * (dx*dx + dy*dy))
}

func (k RBF) Name() string { return "rbf" }

// ParseKernel resolves a kernel by name. gamma is only used by "rbf" and
// defaults to 1 when non-positive.
func ParseKernel(name string, gamma float64) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return Linear{}, nil
	case "rbf", "gaussian":
		if gamma <= 0 {
			gamma = 1
		}
		return RBF{Gamma: gamma}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
}
