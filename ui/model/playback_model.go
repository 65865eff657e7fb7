package model

import (
	"sync/atomic"
	"time"
)

// PlaybackModel tracks whether the deck advances on its own. The zero value is disabled and usable.
// Concurrency-safe via atomic values because UI callbacks and presenter ticks may race.
type PlaybackModel struct {
	enabled  atomic.Bool
	interval atomic.Int64
}

// NewPlaybackModel returns a model that advances every interval once enabled.
func NewPlaybackModel(interval time.Duration) *PlaybackModel {
	m := &PlaybackModel{}
	m.SetInterval(interval)
	return m
}

// Enabled reports whether auto-advance is currently on.
func (m *PlaybackModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the enabled flag.
func (m *PlaybackModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	m.enabled.Store(b)
}

// Interval returns the dwell time per step; zero means auto-advance is unavailable.
func (m *PlaybackModel) Interval() time.Duration {
	if m == nil {
		return 0
	}
	return time.Duration(m.interval.Load())
}

// SetInterval stores the dwell time. Negative values are treated as zero.
func (m *PlaybackModel) SetInterval(d time.Duration) {
	if m == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	m.interval.Store(int64(d))
}
