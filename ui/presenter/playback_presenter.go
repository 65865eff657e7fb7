package presenter

import "time"

// PlaybackModel provides auto-advance state access.
type PlaybackModel interface {
	Enabled() bool
	SetEnabled(bool)
	Interval() time.Duration
}

// StepClock reports how long the current step has been shown.
type StepClock interface {
	Values() (step, total time.Duration)
}

// Advancer moves the deck forward.
type Advancer interface {
	Next() bool
}

// PlaybackView reflects the auto-advance state.
type PlaybackView interface {
	SetAutoAdvance(on bool)
}

// PlaybackPresenter owns presentation logic for auto-advance.
type PlaybackPresenter struct {
	model PlaybackModel
	clock StepClock
	deck  Advancer
	view  PlaybackView
}

func NewPlaybackPresenter(model PlaybackModel, clock StepClock, deck Advancer, view PlaybackView) *PlaybackPresenter {
	return &PlaybackPresenter{model: model, clock: clock, deck: deck, view: view}
}

// Enable turns auto-advance on. Idempotent; a zero interval keeps it off.
func (p *PlaybackPresenter) Enable() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	if p.model.Enabled() || p.model.Interval() <= 0 {
		return
	}
	p.model.SetEnabled(true)
	p.view.SetAutoAdvance(true)
}

// Disable turns auto-advance off. Idempotent.
func (p *PlaybackPresenter) Disable() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	if !p.model.Enabled() {
		return
	}
	p.model.SetEnabled(false)
	p.view.SetAutoAdvance(false)
}

// Toggle flips enabled state delegating to Enable/Disable.
func (p *PlaybackPresenter) Toggle() {
	if p == nil || p.model == nil {
		return
	}
	if p.model.Enabled() {
		p.Disable()
		return
	}
	p.Enable()
}

// Tick advances once the current step has been shown for the interval and
// switches playback off on the last step.
func (p *PlaybackPresenter) Tick(now time.Time) {
	if p == nil || p.model == nil || p.clock == nil || p.deck == nil || !p.model.Enabled() {
		return
	}
	step, _ := p.clock.Values()
	if step < p.model.Interval() {
		return
	}
	if !p.deck.Next() {
		p.Disable()
	}
}
