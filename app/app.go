package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/svmdeck/config"
	"github.com/soocke/svmdeck/debug"
	"github.com/soocke/svmdeck/ui/theme"
	"github.com/soocke/svmdeck/ui/view"
)

const (
	tick = time.Second
)

type app struct {
	container *AppContainer
	root      *view.RootView
	logger    *slog.Logger
	afterID   string
	cancel    context.CancelFunc
}

// NewApp prepares the main window. Nothing is shown until Start.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &app{logger: logger}
	a.container = BuildContainer(cfg, logger, cfgPath)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	return a
}

// Start builds the UI, shows the first step and blocks in the Tk event loop.
func (a *app) Start() {
	c := a.container
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if c.Config.Debug {
		debug.StartGoroutineLogger(ctx, 5*time.Second, a.logger)
		debug.StartMemLogger(ctx, 5*time.Second, a.logger)
	}

	theme.SetDark(c.Config.DarkMode)
	a.root = view.NewRootView(c.Config, c.ConfigPath, a.logger)
	c.Wire(a.root, a.root, a.root, a.scheduleUpdate)
	a.root.Build(view.Handlers{
		OnNext:             func() { c.DeckPresenter.Next() },
		OnPrev:             func() { c.DeckPresenter.Prev() },
		OnFirst:            c.DeckPresenter.First,
		OnToggleCandidates: c.DeckPresenter.ToggleCandidates,
		OnAngles:           c.DeckPresenter.SetAngles,
		OnToggleAutoplay:   c.PlaybackPresenter.Toggle,
		OnConfigApplied:    func() { _ = c.DeckPresenter.Rebuild() },
		OnExit:             a.exitHandler,
	})

	if err := c.DeckPresenter.Rebuild(); err != nil {
		a.logger.Error("initial deck build failed", "error", err)
	}

	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.cancel != nil {
		a.cancel()
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}
