package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/soocke/svmdeck/config"
	"github.com/soocke/svmdeck/domain/presentation"
	"github.com/soocke/svmdeck/ui/presenter"
	"github.com/soocke/svmdeck/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Camera choices offered by the elevation/azimuth comboboxes.
var (
	elevChoices = []float64{0, 15, 30, 45, 60, 75, 90}
	azimChoices = []float64{-150, -120, -90, -60, -30, 0, 30, 60, 90, 120, 150, 180}
)

// Handlers are the user actions the root view forwards.
type Handlers struct {
	OnNext             func()
	OnPrev             func()
	OnFirst            func()
	OnToggleCandidates func()
	OnAngles           func(elev, azim float64)
	OnToggleAutoplay   func()
	OnConfigApplied    func()
	OnExit             func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session     SessionStats
	ConfigPanel ConfigPanel
	Plot        PlotView

	// Widgets
	TitleLabel   *LabelWidget
	BodyLabel    *LabelWidget
	CounterLabel *TLabelWidget
	DarkBtn      *ButtonWidget
	Candidates   *CheckbuttonWidget
	ElevSelect   *TComboboxWidget
	AzimSelect   *TComboboxWidget
	AutoplayBtn  *ButtonWidget

	frames       []*FrameWidget
	body         *FrameWidget
	candidatesOn bool
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	presenter.StepView
	presenter.SessionView
	presenter.PlaybackView
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout: header row, slide body, controls row and the
// parameter panel on the right.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	pal := theme.CurrentPalette()

	// Row 0: title and session stats
	header := Frame(Background(pal.AppBg))
	Grid(header, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.TitleLabel = Label(Txt(""), Anchor("w"), Font(theme.FontTitle...), Background(pal.AppBg), Foreground(pal.Text))
	Grid(rv.TitleLabel, In(header), Row(0), Column(0), Sticky("w"), Padx("0.4m"))
	rv.Session = NewSessionStats(header, 0, 1)

	// Row 1: slide body (plot image above text)
	body := Frame(Borderwidth(1), Relief("sunken"), Background(pal.Surface))
	Grid(body, Row(1), Column(0), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	GridRowConfigure(App, 1, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
	plotW, plotH := maxPlotW, maxPlotH
	if rv.cfg != nil {
		plotW, plotH = rv.cfg.PlotWidth, rv.cfg.PlotHeight
	}
	rv.Plot = NewPlotView(body, 0, plotW, plotH)
	rv.BodyLabel = Label(Txt(""), Anchor("nw"), Justify("left"), Wraplength("160m"), Font(theme.FontBody...), Background(pal.Surface), Foreground(pal.Text))
	Grid(rv.BodyLabel, In(body), Row(1), Column(0), Sticky("nwe"), Padx("1m"), Pady("0.5m"))

	// Row 1, column 1: data and classifier parameters
	side := Frame(Background(pal.AppBg))
	Grid(side, Row(1), Column(1), Sticky("ns"), Padx("0.3m"), Pady("0.3m"))
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, h.OnConfigApplied)
	rv.ConfigPanel.Build(side, 0)

	// Row 2: controls
	controls := Frame(Background(pal.AppBg))
	rv.frames = []*FrameWidget{header, side, controls}
	rv.body = body
	Grid(controls, Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	place := func(w Widget) {
		Grid(w, In(controls), Row(0), Column(col), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
		col++
	}
	place(TButton(Txt("<< First"), Style(theme.StylePrimaryButton), Command(h.OnFirst)))
	place(TButton(Txt("< Prev"), Style(theme.StylePrimaryButton), Command(h.OnPrev)))
	rv.CounterLabel = TLabel(Txt("0 / 0"), Width(8), Anchor("center"), Style(theme.StyleCounterLabel))
	place(rv.CounterLabel)
	place(TButton(Txt("Next >"), Style(theme.StylePrimaryButton), Command(h.OnNext)))

	rv.Candidates = Checkbutton(Txt("Show possible dividing lines"), Command(func() {
		rv.candidatesOn = !rv.candidatesOn
		if h.OnToggleCandidates != nil {
			h.OnToggleCandidates()
		}
	}))
	place(rv.Candidates)

	place(TLabel(Txt("Elevation"), Style(theme.StyleNoteLabel)))
	rv.ElevSelect = TCombobox(Values(angleLabels(elevChoices)), Width(5))
	place(rv.ElevSelect)
	place(TLabel(Txt("Azimuth"), Style(theme.StyleNoteLabel)))
	rv.AzimSelect = TCombobox(Values(angleLabels(azimChoices)), Width(5))
	place(rv.AzimSelect)
	onAngle := Command(func() {
		elev, errE := rv.selected(rv.ElevSelect, elevChoices)
		azim, errA := rv.selected(rv.AzimSelect, azimChoices)
		if errE != nil || errA != nil {
			if rv.logger != nil {
				rv.logger.Error("angle selection parse error", "elev_error", errE, "azim_error", errA)
			}
			return
		}
		if h.OnAngles != nil {
			h.OnAngles(elev, azim)
		}
	})
	Bind(rv.ElevSelect, "<<ComboboxSelected>>", onAngle)
	Bind(rv.AzimSelect, "<<ComboboxSelected>>", onAngle)

	rv.AutoplayBtn = Button(Txt("Autoplay: off"), Command(h.OnToggleAutoplay))
	place(rv.AutoplayBtn)
	if rv.cfg == nil || rv.cfg.AutoAdvanceSeconds <= 0 {
		rv.AutoplayBtn.Configure(State("disabled"))
	}
	rv.DarkBtn = Button(Txt(darkLabel(theme.IsDark())), Command(func() {
		theme.ToggleDark()
		rv.applyPalette()
	}))
	place(rv.DarkBtn)
	place(TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(h.OnExit)))

	Bind(App, "<Right>", Command(h.OnNext))
	Bind(App, "<Left>", Command(h.OnPrev))
	Bind(App, "<Home>", Command(h.OnFirst))
}

// ShowStep renders one step into the title, plot and body areas.
func (rv *RootView) ShowStep(c presenter.StepContent) {
	if rv == nil || rv.BodyLabel == nil || rv.TitleLabel == nil {
		return
	}
	switch c.Kind {
	case presentation.StepHeading:
		rv.TitleLabel.Configure(Txt(c.Title), Font(theme.LevelFont(c.Level)...))
		rv.setBody("", theme.FontBody)
		rv.Plot.Reset()
	case presentation.StepText:
		rv.setBody(c.Body, theme.FontBody)
		rv.Plot.Reset()
	case presentation.StepCode:
		rv.TitleLabel.Configure(Txt(c.Title), Font(theme.FontHeading...))
		rv.setBody(c.Body, theme.FontCode)
		rv.Plot.Reset()
	case presentation.StepDivider:
		rv.setBody("――――――――", theme.FontBody)
		rv.Plot.Reset()
	case presentation.StepPlot:
		rv.TitleLabel.Configure(Txt(c.Title), Font(theme.FontHeading...))
		rv.setBody(c.Body, theme.FontNote)
		if c.Image != nil {
			rv.Plot.Update(c.Image)
		} else {
			rv.Plot.Reset()
		}
	}
	if rv.Candidates != nil {
		rv.Candidates.Configure(State(controlState(c.Controls&presentation.ControlCandidates != 0)))
	}
	angles := controlState(c.Controls&presentation.ControlAngles != 0)
	if rv.ElevSelect != nil && rv.AzimSelect != nil {
		rv.ElevSelect.Configure(State(angles))
		rv.AzimSelect.Configure(State(angles))
	}
}

// SetPosition updates the step counter.
func (rv *RootView) SetPosition(index, count int) {
	if rv != nil && rv.CounterLabel != nil {
		rv.CounterLabel.Configure(Txt(fmt.Sprintf("%d / %d", index+1, count)))
	}
}

// SetShowCandidates mirrors the candidate flag into the checkbutton.
func (rv *RootView) SetShowCandidates(b bool) {
	if rv == nil || rv.Candidates == nil || rv.candidatesOn == b {
		return
	}
	rv.candidatesOn = b
	if b {
		rv.Candidates.Select()
	} else {
		rv.Candidates.Deselect()
	}
}

// SetAngles mirrors the camera angles into the comboboxes.
func (rv *RootView) SetAngles(elev, azim float64) {
	if rv == nil || rv.ElevSelect == nil || rv.AzimSelect == nil {
		return
	}
	rv.ElevSelect.Current(nearest(elevChoices, elev))
	rv.AzimSelect.Current(nearest(azimChoices, azim))
}

// SetSession updates step and total durations.
func (rv *RootView) SetSession(step, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetStep(step)
	rv.Session.SetTotal(total)
}

// SetAutoAdvance reflects the autoplay state on its button.
func (rv *RootView) SetAutoAdvance(on bool) {
	if rv == nil || rv.AutoplayBtn == nil {
		return
	}
	txt := "Autoplay: off"
	if on {
		txt = "Autoplay: on"
	}
	rv.AutoplayBtn.Configure(Txt(txt))
	if rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(!on)
	}
}

// applyPalette recolors the classic Tk widgets, which ttk styles do not reach.
func (rv *RootView) applyPalette() {
	pal := theme.CurrentPalette()
	for _, f := range rv.frames {
		f.Configure(Background(pal.AppBg))
	}
	if rv.body != nil {
		rv.body.Configure(Background(pal.Surface))
	}
	if rv.TitleLabel != nil {
		rv.TitleLabel.Configure(Background(pal.AppBg), Foreground(pal.Text))
	}
	if rv.BodyLabel != nil {
		rv.BodyLabel.Configure(Background(pal.Surface), Foreground(pal.Text))
	}
	if rv.DarkBtn != nil {
		rv.DarkBtn.Configure(Txt(darkLabel(theme.IsDark())))
	}
}

func darkLabel(dark bool) string {
	if dark {
		return "Light Mode"
	}
	return "Dark Mode"
}

func (rv *RootView) setBody(text string, font []any) {
	rv.BodyLabel.Configure(Txt(text), Font(font...))
}

func controlState(enabled bool) string {
	if enabled {
		return "normal"
	}
	return "disabled"
}

func (rv *RootView) selected(cb *TComboboxWidget, choices []float64) (float64, error) {
	idx, err := strconv.Atoi(cb.Current(nil))
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(choices) {
		return 0, fmt.Errorf("selection %d out of range", idx)
	}
	return choices[idx], nil
}

func angleLabels(choices []float64) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = strconv.FormatFloat(c, 'f', -1, 64)
	}
	return out
}

// nearest returns the index of the choice closest to v.
func nearest(choices []float64, v float64) int {
	best := 0
	for i, c := range choices {
		if abs(c-v) < abs(choices[best]-v) {
			best = i
		}
	}
	return best
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
