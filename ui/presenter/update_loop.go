package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Playback *PlaybackPresenter
	Schedule func()
}

func NewLoop(sess *SessionPresenter, playback *PlaybackPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Playback: playback, Schedule: schedule}
}

func (l *Loop) Tick() {
	l.TickAt(time.Now())
}

// TickAt runs one update with an explicit timestamp.
func (l *Loop) TickAt(now time.Time) {
	if l == nil {
		return
	}
	// Session first so playback sees the current dwell.
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Playback != nil {
		l.Playback.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
