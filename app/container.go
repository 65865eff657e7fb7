package app

import (
	"log/slog"
	"time"

	"github.com/soocke/svmdeck/config"
	"github.com/soocke/svmdeck/domain/presentation"
	"github.com/soocke/svmdeck/ui/chart"
	"github.com/soocke/svmdeck/ui/model"
	"github.com/soocke/svmdeck/ui/presenter"
)

// AppContainer assembles models, presenters and the renderer. Views are
// attached later by the Tk app wrapper so the container stays headless.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Deck       *model.DeckModel
	Session    *model.SessionModel
	Playback   *model.PlaybackModel
	Raster     *chart.Rasterizer

	// Presenters
	DeckPresenter     *presenter.DeckPresenter
	SessionPresenter  *presenter.SessionPresenter
	PlaybackPresenter *presenter.PlaybackPresenter
	Loop              *presenter.Loop
}

// BuildContainer constructs models and the rasterizer. No side effects.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Deck = model.NewDeckModel(cfg.ShowCandidates, cfg.Elev, cfg.Azim)
	c.Session = model.NewSessionModel()
	c.Playback = model.NewPlaybackModel(time.Duration(cfg.AutoAdvanceSeconds) * time.Second)
	c.Raster = chart.New(cfg.PlotWidth, cfg.PlotHeight)
	return c
}

// Builder returns a deck builder that always reads the current config, so
// applied form changes take effect on the next rebuild.
func (c *AppContainer) Builder() presenter.Builder {
	return func(opts presentation.Options) (presentation.Deck, error) {
		return presentation.Build(c.Config, opts)
	}
}

// Wire creates the presenters against the given views. schedule is invoked
// at the end of every loop tick.
func (c *AppContainer) Wire(step presenter.StepView, session presenter.SessionView, playback presenter.PlaybackView, schedule func()) {
	c.DeckPresenter = presenter.NewDeckPresenter(c.Deck, c.Builder(), c.Raster, step, c.Logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Deck, session)
	c.PlaybackPresenter = presenter.NewPlaybackPresenter(c.Playback, c.Session, c.DeckPresenter, playback)
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.PlaybackPresenter, schedule)
}
