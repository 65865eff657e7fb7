package svm

import (
	"errors"

	"github.com/soocke/svmdeck/domain/dataset"
)

var (
	// ErrNotBinary is returned when the labels are not exactly the two classes 0 and 1.
	ErrNotBinary = errors.New("svm: training set needs both classes 0 and 1")
	// ErrUnknownKernel is returned by ParseKernel for unsupported names.
	ErrUnknownKernel = errors.New("svm: unknown kernel")
	// ErrEmpty is returned when fitting on an empty set.
	ErrEmpty = errors.New("svm: empty training set")
)

// Classifier fits a maximum-margin model to a labeled point set.
type Classifier interface {
	Fit(ds dataset.Dataset) (Model, error)
}

// Model is a fitted decision function. Decision > 0 predicts class 1.
type Model interface {
	Decision(p dataset.Point) float64
	Predict(p dataset.Point) int
	// Support returns the indices of the training points with non-zero dual weight.
	Support() []int
	SupportPoints() []dataset.Point
}

// FitStats summarises a solver run.
type FitStats struct {
	Iterations int
	Converged  bool
	Gap        float64 // final max violation m(α) - M(α)
}

// Misclassified counts training points whose predicted class differs from their label.
func Misclassified(m Model, ds dataset.Dataset) (count int, rate float64) {
	for i, p := range ds.Points {
		if m.Predict(p) != ds.Labels[i] {
			count++
		}
	}
	if ds.Len() > 0 {
		rate = float64(count) / float64(ds.Len())
	}
	return count, rate
}
