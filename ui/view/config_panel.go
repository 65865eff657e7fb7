package view

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/soocke/svmdeck/config"
	"github.com/soocke/svmdeck/domain/svm"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the data/classifier form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config, persists and notifies
}

type configPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func()
	applyBtn  *ButtonWidget
	widgets   map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg. onApplied runs after a valid
// change has been stored, typically to rebuild the deck.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func()) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApplied: onApplied, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(parent *FrameWidget, startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(10))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow(config.FieldSeed, "Seed", fmt.Sprintf("%d", c.Seed))
	makeRow(config.FieldBlobSamples, "Blob Samples", fmt.Sprintf("%d", c.BlobSamples))
	makeRow(config.FieldBlobStd, "Blob Std", fmt.Sprintf("%.2f", c.BlobStd))
	makeRow(config.FieldCircleSamples, "Ring Samples", fmt.Sprintf("%d", c.CircleSamples))
	makeRow(config.FieldCircleNoise, "Ring Noise", fmt.Sprintf("%.2f", c.CircleNoise))
	makeRow(config.FieldRingKernel, "Ring Kernel (linear/rbf)", c.RingKernel)
	makeRow(config.FieldRingC, "Ring C", fmt.Sprintf("%g", c.RingC))
	makeRow(config.FieldGamma, "RBF Gamma", fmt.Sprintf("%g", c.Gamma))
	makeRow(config.FieldGridResolution, "Grid Resolution", fmt.Sprintf("%d", c.GridResolution))
	makeRow(config.FieldShowCandidates, "Candidates On Start (true/false)", fmt.Sprintf("%t", c.ShowCandidates))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	fields := make(map[string]string, len(v.widgets))
	for id, w := range v.widgets {
		fields[id] = strings.TrimSpace(v.text(w))
	}
	cfg, err := config.ApplyFields(*v.cfg, fields)
	if err == nil {
		_, err = svm.ParseKernel(cfg.RingKernel, cfg.Gamma)
	}
	if err != nil {
		if v.logger != nil {
			v.logger.Error("config rejected", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApplied != nil {
		v.onApplied()
	}
}
