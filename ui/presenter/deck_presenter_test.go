package presenter

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"testing"

	"github.com/soocke/svmdeck/domain/plot"
	"github.com/soocke/svmdeck/domain/presentation"
	"github.com/soocke/svmdeck/ui/model"
)

type mockRaster struct{ calls int }

func (r *mockRaster) Rasterize(fig *plot.Figure) (image.Image, error) {
	r.calls++
	return image.NewRGBA(image.Rect(0, 0, 4, 3)), nil
}

type mockStepView struct {
	shown          []StepContent
	index, count   int
	showCandidates bool
	elev, azim     float64
}

func (v *mockStepView) ShowStep(c StepContent)       { v.shown = append(v.shown, c) }
func (v *mockStepView) SetPosition(index, count int) { v.index, v.count = index, count }
func (v *mockStepView) SetShowCandidates(b bool)     { v.showCandidates = b }
func (v *mockStepView) SetAngles(elev, azim float64) { v.elev, v.azim = elev, azim }

type recordingBuilder struct {
	calls int
	last  presentation.Options
	err   error
}

func (b *recordingBuilder) build(opts presentation.Options) (presentation.Deck, error) {
	b.calls++
	b.last = opts
	if b.err != nil {
		return presentation.Deck{}, b.err
	}
	fig := plot.NewFigure("blobs")
	plot.DrawCandidateLines(fig, opts.ShowCandidates)
	return presentation.Deck{
		Steps: []presentation.Step{
			presentation.Heading{Text: "Title", Level: 1},
			presentation.Text{Body: "body"},
			presentation.Plot{Title: "blobs", Figure: fig, Controls: presentation.ControlCandidates},
		},
		Fits: []presentation.FitReport{{Name: "separable", Kernel: "linear"}},
	}, nil
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newTestPresenter() (*DeckPresenter, *recordingBuilder, *mockRaster, *mockStepView, *model.DeckModel) {
	b := &recordingBuilder{}
	r := &mockRaster{}
	v := &mockStepView{}
	m := model.NewDeckModel(false, 30, 30)
	return NewDeckPresenter(m, b.build, r, v, quietLogger()), b, r, v, m
}

func TestDeckPresenter_RebuildShowsFirstStep(t *testing.T) {
	p, b, _, v, _ := newTestPresenter()
	if err := p.Rebuild(); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if b.calls != 1 || p.Deck().Len() != 3 {
		t.Fatalf("expected one build with 3 steps, got calls=%d len=%d", b.calls, p.Deck().Len())
	}
	if v.count != 3 || v.index != 0 {
		t.Fatalf("unexpected position %d/%d", v.index, v.count)
	}
	if len(v.shown) != 1 || v.shown[0].Kind != presentation.StepHeading || v.shown[0].Title != "Title" || v.shown[0].Level != 1 {
		t.Fatalf("unexpected first step %+v", v.shown)
	}
	if v.elev != 30 || v.azim != 30 {
		t.Fatalf("view angles not mirrored: %v/%v", v.elev, v.azim)
	}
}

func TestDeckPresenter_NavigationAndRasterCache(t *testing.T) {
	p, _, r, v, _ := newTestPresenter()
	_ = p.Rebuild()
	if !p.Next() || !p.Next() {
		t.Fatalf("expected to reach the plot step")
	}
	last := v.shown[len(v.shown)-1]
	if last.Kind != presentation.StepPlot || last.Image == nil || last.Controls != presentation.ControlCandidates {
		t.Fatalf("expected rasterized plot step, got %+v", last)
	}
	if p.Next() {
		t.Fatalf("should not advance past the last step")
	}
	p.Prev()
	p.Next()
	if r.calls != 1 {
		t.Fatalf("plot should be rasterized once per build, got %d", r.calls)
	}
	p.First()
	if v.index != 0 {
		t.Fatalf("First should return to step 0, got %d", v.index)
	}
}

func TestDeckPresenter_SetShowCandidates_Idempotent(t *testing.T) {
	p, b, _, v, _ := newTestPresenter()
	_ = p.Rebuild()

	p.SetShowCandidates(false)
	if b.calls != 1 {
		t.Fatalf("unchanged toggle should not rebuild, calls=%d", b.calls)
	}
	p.SetShowCandidates(true)
	if b.calls != 2 || !b.last.ShowCandidates || !v.showCandidates {
		t.Fatalf("toggle on failed: calls=%d opts=%+v view=%v", b.calls, b.last, v.showCandidates)
	}
	plots := p.Deck().Plots()
	if len(plots) != 1 || plots[0].Figure.Count(plot.KindLine) != 3 {
		t.Fatalf("expected three candidate lines after toggle")
	}
	p.ToggleCandidates()
	if b.calls != 3 || b.last.ShowCandidates {
		t.Fatalf("toggle off failed: calls=%d opts=%+v", b.calls, b.last)
	}
}

func TestDeckPresenter_SetAngles(t *testing.T) {
	p, b, _, v, _ := newTestPresenter()
	_ = p.Rebuild()
	p.SetAngles(30, 30)
	if b.calls != 1 {
		t.Fatalf("same angles should not rebuild")
	}
	p.SetAngles(60, 120)
	if b.calls != 2 || b.last.Elev != 60 || b.last.Azim != 120 || v.elev != 60 {
		t.Fatalf("angles not applied: calls=%d opts=%+v", b.calls, b.last)
	}
}

func TestDeckPresenter_BuildErrorKeepsDeck(t *testing.T) {
	p, b, _, _, _ := newTestPresenter()
	_ = p.Rebuild()
	b.err = errors.New("boom")
	if err := p.Rebuild(); err == nil {
		t.Fatalf("expected error")
	}
	if p.Deck().Len() != 3 {
		t.Fatalf("previous deck should survive a failed build")
	}
}

func TestDeckPresenter_FailedOptionChangeRestoresState(t *testing.T) {
	p, b, _, v, m := newTestPresenter()
	_ = p.Rebuild()
	b.err = errors.New("boom")

	// the checkbutton flips itself before the handler runs
	v.showCandidates = true
	p.SetShowCandidates(true)
	if m.ShowCandidates() || v.showCandidates {
		t.Fatalf("candidate flag should be restored: model=%v view=%v", m.ShowCandidates(), v.showCandidates)
	}

	p.SetAngles(60, 120)
	if elev, azim := m.Angles(); elev != 30 || azim != 30 {
		t.Fatalf("angles should be restored, got %v/%v", elev, azim)
	}
	if v.elev != 30 || v.azim != 30 {
		t.Fatalf("view angles should be restored, got %v/%v", v.elev, v.azim)
	}

	b.err = nil
	p.SetShowCandidates(true)
	if !b.last.ShowCandidates || !m.ShowCandidates() {
		t.Fatalf("retry after a failed build should apply the change")
	}
}

func TestDeckPresenter_NilSafe(t *testing.T) {
	var p *DeckPresenter
	if p.Next() || p.Prev() {
		t.Fatalf("nil presenter should not navigate")
	}
	p.First()
	p.SetShowCandidates(true)
	p.SetAngles(1, 2)
	if err := p.Rebuild(); err != nil {
		t.Fatalf("nil presenter rebuild should be a no-op")
	}
	noBuild := NewDeckPresenter(model.NewDeckModel(false, 0, 0), nil, nil, nil, nil)
	if err := noBuild.Rebuild(); !errors.Is(err, ErrNoBuilder) {
		t.Fatalf("expected ErrNoBuilder, got %v", err)
	}
}
