package model

import "sync"

// DeckModel holds the navigation state of the presentation: the current
// step, the number of steps and the interactive plot options.
// Safe for concurrent use; the zero value is an empty deck.
type DeckModel struct {
	mu             sync.Mutex
	index          int
	count          int
	showCandidates bool
	elev, azim     float64
}

// NewDeckModel returns a model positioned on the first step.
func NewDeckModel(showCandidates bool, elev, azim float64) *DeckModel {
	return &DeckModel{showCandidates: showCandidates, elev: elev, azim: azim}
}

// Index returns the current step and the number of steps.
func (m *DeckModel) Index() (index, count int) {
	if m == nil {
		return 0, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index, m.count
}

// SetCount stores the number of steps, clamping the index into range.
func (m *DeckModel) SetCount(n int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if n < 0 {
		n = 0
	}
	m.count = n
	m.index = clampIndex(m.index, n)
}

// Go moves to step i. It reports whether the index changed.
func (m *DeckModel) Go(i int) bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i = clampIndex(i, m.count)
	if i == m.index {
		return false
	}
	m.index = i
	return true
}

// Next advances one step; false at the end of the deck.
func (m *DeckModel) Next() bool {
	i, _ := m.Index()
	return m.Go(i + 1)
}

// Prev goes back one step; false at the start of the deck.
func (m *DeckModel) Prev() bool {
	i, _ := m.Index()
	return m.Go(i - 1)
}

// AtEnd reports whether the current step is the last one.
func (m *DeckModel) AtEnd() bool {
	i, n := m.Index()
	return n == 0 || i == n-1
}

// ShowCandidates reports whether candidate lines are drawn.
func (m *DeckModel) ShowCandidates() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.showCandidates
}

// SetShowCandidates stores the flag and reports whether it changed.
func (m *DeckModel) SetShowCandidates(b bool) bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.showCandidates == b {
		return false
	}
	m.showCandidates = b
	return true
}

// Angles returns the 3-D camera elevation and azimuth in degrees.
func (m *DeckModel) Angles() (elev, azim float64) {
	if m == nil {
		return 0, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elev, m.azim
}

// SetAngles stores the camera angles and reports whether they changed.
func (m *DeckModel) SetAngles(elev, azim float64) bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.elev == elev && m.azim == azim {
		return false
	}
	m.elev, m.azim = elev, azim
	return true
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
