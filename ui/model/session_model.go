package model

import (
	"time"
)

// SessionModel tracks how long the current step has been on screen and the
// total time since the presentation started.
// It is decoupled from the UI; presenters should poll Values() and update views.
// The zero value is ready to use.
type SessionModel struct {
	started   bool
	start     time.Time
	step      int
	stepStart time.Time
	dwell     time.Duration
	total     time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model with the currently shown step and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(step int, now time.Time) {
	if m == nil {
		return
	}
	if !m.started {
		m.started = true
		m.start = now
		m.step = step
		m.stepStart = now
	}
	if step != m.step { // step changed, restart dwell
		m.step = step
		m.stepStart = now
	}
	m.dwell = now.Sub(m.stepStart)
	m.total = now.Sub(m.start)
}

// Values returns the time spent on the current step and the total presentation time.
func (m *SessionModel) Values() (step, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	return m.dwell, m.total
}
