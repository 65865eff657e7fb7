package presenter

import (
	"errors"
	"image"
	"log/slog"

	"github.com/soocke/svmdeck/domain/plot"
	"github.com/soocke/svmdeck/domain/presentation"
)

// ErrNoBuilder is returned by Rebuild when the presenter has nothing to build from.
var ErrNoBuilder = errors.New("presenter: no deck builder")

// Builder produces a fresh deck for the given shell options.
type Builder func(opts presentation.Options) (presentation.Deck, error)

// Rasterizer turns a recorded figure into pixels.
type Rasterizer interface {
	Rasterize(fig *plot.Figure) (image.Image, error)
}

// DeckModel is the navigation state the presenter drives.
type DeckModel interface {
	Index() (index, count int)
	SetCount(n int)
	Go(i int) bool
	Next() bool
	Prev() bool
	ShowCandidates() bool
	SetShowCandidates(b bool) bool
	Angles() (elev, azim float64)
	SetAngles(elev, azim float64) bool
}

// StepContent is a render-ready step. Image is set for plot steps only.
type StepContent struct {
	Kind     presentation.StepKind
	Title    string
	Body     string
	Level    int
	Image    image.Image
	Controls presentation.Control
}

// StepView displays one step at a time and mirrors the shell controls.
type StepView interface {
	ShowStep(c StepContent)
	SetPosition(index, count int)
	SetShowCandidates(b bool)
	SetAngles(elev, azim float64)
}

// DeckPresenter owns the deck: it rebuilds it when options change, rasterizes
// plot steps and pushes the current step to the view.
type DeckPresenter struct {
	model  DeckModel
	build  Builder
	raster Rasterizer
	view   StepView
	logger *slog.Logger

	deck   presentation.Deck
	images map[int]image.Image
}

func NewDeckPresenter(model DeckModel, build Builder, raster Rasterizer, view StepView, logger *slog.Logger) *DeckPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckPresenter{model: model, build: build, raster: raster, view: view, logger: logger}
}

// Deck returns the most recently built deck.
func (p *DeckPresenter) Deck() presentation.Deck {
	if p == nil {
		return presentation.Deck{}
	}
	return p.deck
}

// Options returns the shell options currently held by the model.
func (p *DeckPresenter) Options() presentation.Options {
	if p == nil || p.model == nil {
		return presentation.Options{}
	}
	elev, azim := p.model.Angles()
	return presentation.Options{ShowCandidates: p.model.ShowCandidates(), Elev: elev, Azim: azim}
}

// Rebuild regenerates the whole deck from the current options and shows the
// current step. On error the previous deck is kept.
func (p *DeckPresenter) Rebuild() error {
	if p == nil || p.model == nil {
		return nil
	}
	if p.build == nil {
		return ErrNoBuilder
	}
	opts := p.Options()
	deck, err := p.build(opts)
	if err != nil {
		p.logger.Error("deck build failed", "error", err)
		return err
	}
	p.deck = deck
	p.images = make(map[int]image.Image)
	p.model.SetCount(deck.Len())
	for _, f := range deck.Fits {
		p.logger.Info("classifier fitted",
			"name", f.Name,
			"kernel", f.Kernel,
			"iterations", f.Iterations,
			"converged", f.Converged,
			"support_vectors", f.Support,
			"misclassified", f.Misclassified,
			"error_rate", f.Rate,
		)
	}
	p.logger.Debug("deck built", "steps", deck.Len(), "show_candidates", opts.ShowCandidates, "elev", opts.Elev, "azim", opts.Azim)
	if p.view != nil {
		p.view.SetShowCandidates(opts.ShowCandidates)
		p.view.SetAngles(opts.Elev, opts.Azim)
	}
	p.Show()
	return nil
}

// Show pushes the current step and position to the view.
func (p *DeckPresenter) Show() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	i, n := p.model.Index()
	p.view.SetPosition(i, n)
	if i >= p.deck.Len() {
		return
	}
	p.view.ShowStep(p.content(i))
}

// Next advances one step. Reports whether the step changed.
func (p *DeckPresenter) Next() bool {
	if p == nil || p.model == nil || !p.model.Next() {
		return false
	}
	p.Show()
	return true
}

// Prev goes back one step. Reports whether the step changed.
func (p *DeckPresenter) Prev() bool {
	if p == nil || p.model == nil || !p.model.Prev() {
		return false
	}
	p.Show()
	return true
}

// First jumps back to the opening step.
func (p *DeckPresenter) First() {
	if p == nil || p.model == nil {
		return
	}
	if p.model.Go(0) {
		p.Show()
	}
}

// SetShowCandidates toggles the candidate lines. Idempotent: an unchanged
// value does not rebuild. A failed rebuild restores the previous value.
func (p *DeckPresenter) SetShowCandidates(b bool) {
	if p == nil || p.model == nil {
		return
	}
	prev := p.model.ShowCandidates()
	if !p.model.SetShowCandidates(b) {
		return
	}
	if err := p.Rebuild(); err != nil {
		p.model.SetShowCandidates(prev)
		if p.view != nil {
			p.view.SetShowCandidates(prev)
		}
	}
}

// ToggleCandidates flips the candidate lines flag.
func (p *DeckPresenter) ToggleCandidates() {
	if p == nil || p.model == nil {
		return
	}
	p.SetShowCandidates(!p.model.ShowCandidates())
}

// SetAngles moves the 3-D camera. Idempotent and restored on failure like
// SetShowCandidates.
func (p *DeckPresenter) SetAngles(elev, azim float64) {
	if p == nil || p.model == nil {
		return
	}
	prevElev, prevAzim := p.model.Angles()
	if !p.model.SetAngles(elev, azim) {
		return
	}
	if err := p.Rebuild(); err != nil {
		p.model.SetAngles(prevElev, prevAzim)
		if p.view != nil {
			p.view.SetAngles(prevElev, prevAzim)
		}
	}
}

// content converts step i into view content, rasterizing plots once per build.
func (p *DeckPresenter) content(i int) StepContent {
	switch s := p.deck.Steps[i].(type) {
	case presentation.Heading:
		return StepContent{Kind: s.Kind(), Title: s.Text, Level: s.Level}
	case presentation.Text:
		return StepContent{Kind: s.Kind(), Body: s.Body}
	case presentation.Code:
		return StepContent{Kind: s.Kind(), Title: s.Caption, Body: s.Source}
	case presentation.Divider:
		return StepContent{Kind: s.Kind()}
	case presentation.Plot:
		c := StepContent{Kind: s.Kind(), Title: s.Title, Body: s.Notes, Controls: s.Controls}
		c.Image = p.image(i, s)
		return c
	default:
		return StepContent{}
	}
}

func (p *DeckPresenter) image(i int, s presentation.Plot) image.Image {
	if img, ok := p.images[i]; ok {
		return img
	}
	if p.raster == nil {
		return nil
	}
	img, err := p.raster.Rasterize(s.Figure)
	if err != nil {
		p.logger.Error("rasterize plot", "step", i, "title", s.Title, "error", err)
		return nil
	}
	if p.images == nil {
		p.images = make(map[int]image.Image)
	}
	p.images[i] = img
	return img
}
