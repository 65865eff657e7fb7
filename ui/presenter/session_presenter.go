package presenter

import (
	"time"

	"github.com/soocke/svmdeck/ui/model"
)

// StepIndex reports which step is currently shown.
type StepIndex interface{ Index() (index, count int) }

// SessionView displays formatted step and total durations.
type SessionView interface {
	SetSession(step, total time.Duration)
}

// SessionPresenter formats step and total durations from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	deck StepIndex
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, deck StepIndex, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, deck: deck, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.deck == nil || p.view == nil {
		return
	}
	i, _ := p.deck.Index()
	p.sess.OnTick(i, now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}
