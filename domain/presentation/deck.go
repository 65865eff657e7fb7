package presentation

import (
	"fmt"

	"github.com/soocke/svmdeck/assets"
	"github.com/soocke/svmdeck/config"
	"github.com/soocke/svmdeck/domain/dataset"
	"github.com/soocke/svmdeck/domain/plot"
	"github.com/soocke/svmdeck/domain/svm"
)

// Deck is the ordered list of steps produced by one Build.
type Deck struct {
	Steps []Step
	Fits  []FitReport
}

// Len returns the number of steps.
func (d Deck) Len() int { return len(d.Steps) }

// Play emits every step to drv in order and stops at the first error.
func (d Deck) Play(drv Driver) error {
	for i, s := range d.Steps {
		if err := drv.Emit(s); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, s.Kind(), err)
		}
	}
	return nil
}

// Plots returns the plot steps in order.
func (d Deck) Plots() []Plot {
	var out []Plot
	for _, s := range d.Steps {
		if p, ok := s.(Plot); ok {
			out = append(out, p)
		}
	}
	return out
}

// Build generates fresh data, fits fresh classifiers and draws fresh figures.
// Nothing is shared between builds.
func Build(cfg *config.Config, opts Options) (Deck, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var d Deck
	add := func(name string) error {
		steps, err := narrative(name)
		if err != nil {
			return err
		}
		d.Steps = append(d.Steps, steps...)
		return nil
	}

	if err := add("intro"); err != nil {
		return Deck{}, err
	}
	if err := add("svm"); err != nil {
		return Deck{}, err
	}

	blobs := dataset.MakeBlobs(blobOptions(cfg))
	candidates := plot.NewFigure("Possible dividing lines")
	plot.DrawScatter(candidates, blobs, plot.Winter)
	plot.DrawCandidateLines(candidates, opts.ShowCandidates)
	d.Steps = append(d.Steps, Plot{Title: candidates.Title, Figure: candidates, Controls: ControlCandidates})

	d.Steps = append(d.Steps, Code{Caption: "Fit an SVM classifier in 2 lines of code", Source: assets.FitSnippet})
	separable := &svm.SVC{Kernel: svm.Linear{}, C: cfg.SeparableC, Tol: cfg.Tolerance, MaxIter: cfg.MaxIter}
	model, err := separable.FitDetailed(blobs)
	if err != nil {
		return Deck{}, fmt.Errorf("fit separable blobs: %w", err)
	}
	report := reportFor("separable blobs", model, blobs)
	d.Fits = append(d.Fits, report)
	d.Steps = append(d.Steps, Divider{})

	optimal := plot.NewFigure("Optimal decision hyperplane")
	plot.DrawScatter(optimal, blobs, plot.Autumn)
	plot.DrawDecisionFunction(optimal, model, plot.DecisionOptions{Resolution: cfg.GridResolution, PlotSupport: true})
	d.Steps = append(d.Steps, Plot{
		Title:  optimal.Title,
		Figure: optimal,
		Notes:  fmt.Sprintf("%d support points circled, %d of %d training points misclassified", report.Support, report.Misclassified, blobs.Len()),
	})

	if err := add("nonlinear"); err != nil {
		return Deck{}, err
	}

	rings := dataset.MakeCircles(dataset.CirclesOptions{
		Samples: cfg.CircleSamples,
		Factor:  cfg.CircleFactor,
		Noise:   cfg.CircleNoise,
		Seed:    cfg.Seed + 1,
		Shuffle: true,
	})
	kernel, err := svm.ParseKernel(cfg.RingKernel, cfg.Gamma)
	if err != nil {
		return Deck{}, err
	}
	ringSVC := &svm.SVC{Kernel: kernel, C: cfg.RingC, Tol: cfg.Tolerance, MaxIter: cfg.MaxIter}
	ringModel, err := ringSVC.FitDetailed(rings)
	if err != nil {
		return Deck{}, fmt.Errorf("fit rings: %w", err)
	}
	ringReport := reportFor("concentric rings", ringModel, rings)
	d.Fits = append(d.Fits, ringReport)

	failed := plot.NewFigure(fmt.Sprintf("%s kernel on concentric rings", kernel.Name()))
	plot.DrawScatter(failed, rings, plot.Autumn)
	plot.DrawDecisionFunction(failed, ringModel, plot.DecisionOptions{Resolution: cfg.GridResolution})
	d.Steps = append(d.Steps, Plot{
		Title:  failed.Title,
		Figure: failed,
		Notes:  fmt.Sprintf("%.0f%% of training points misclassified", ringReport.Rate*100),
	})

	if err := add("projection"); err != nil {
		return Deck{}, err
	}

	lifted := plot.NewFigure("Radial projection")
	plot.DrawRadialProjection(lifted, rings, plot.Camera{Elev: opts.Elev, Azim: opts.Azim})
	d.Steps = append(d.Steps, Plot{
		Title:    lifted.Title,
		Figure:   lifted,
		Notes:    fmt.Sprintf("elev %.0f°, azim %.0f°", opts.Elev, opts.Azim),
		Controls: ControlAngles,
	})

	if err := add("closing"); err != nil {
		return Deck{}, err
	}
	return d, nil
}

func blobOptions(cfg *config.Config) dataset.BlobsOptions {
	opts := dataset.BlobsOptions{
		Samples: cfg.BlobSamples,
		Centers: cfg.BlobCenters,
		Std:     cfg.BlobStd,
		Seed:    cfg.Seed,
	}
	for _, c := range cfg.BlobCenterPoints {
		opts.CenterPoints = append(opts.CenterPoints, dataset.Point{X: c[0], Y: c[1]})
	}
	return opts
}

func reportFor(name string, m *svm.Fitted, ds dataset.Dataset) FitReport {
	count, rate := svm.Misclassified(m, ds)
	stats := m.Stats()
	return FitReport{
		Name:          name,
		Kernel:        m.Kernel().Name(),
		Iterations:    stats.Iterations,
		Converged:     stats.Converged,
		Support:       len(m.Support()),
		Misclassified: count,
		Rate:          rate,
	}
}
