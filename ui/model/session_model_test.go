package model

import (
	"testing"
	"time"
)

func TestSessionModel_BasicLifecycle(t *testing.T) {
	m := NewSessionModel()
	base := time.Unix(0, 0)

	// First tick starts the clock on step 0.
	m.OnTick(0, base)
	m.OnTick(0, base.Add(5*time.Second))
	step, total := m.Values()
	if step != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s step & total; got step=%v total=%v", step, total)
	}

	// Moving to step 1 restarts the dwell but not the total.
	m.OnTick(1, base.Add(7*time.Second))
	step, total = m.Values()
	if step != 0 || total != 7*time.Second {
		t.Fatalf("after step change expected 0s/7s; got step=%v total=%v", step, total)
	}

	m.OnTick(1, base.Add(10*time.Second))
	step, total = m.Values()
	if step != 3*time.Second || total != 10*time.Second {
		t.Fatalf("expected 3s/10s; got step=%v total=%v", step, total)
	}

	// Going back counts as a change too.
	m.OnTick(0, base.Add(11*time.Second))
	if step, _ = m.Values(); step != 0 {
		t.Fatalf("expected dwell reset on back navigation, got %v", step)
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.OnTick(1, time.Now())
	if s, tot := m.Values(); s != 0 || tot != 0 {
		t.Fatalf("nil model should report zero durations")
	}
}
