package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows time on the current step and total presentation time.
type SessionStats interface {
	SetStep(d time.Duration)
	SetTotal(d time.Duration)
}

type sessionStats struct {
	stepLbl  *LabelWidget
	totalLbl *LabelWidget
}

// NewSessionStats creates the step and total duration labels in a grid layout.
// The step label is placed at (row, startCol) and total label at (row, startCol+1).
// If parent is nil, labels are positioned relative to the App root.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	s := &sessionStats{stepLbl: Label(Width(12)), totalLbl: Label(Width(12))}
	if parent != nil {
		Grid(s.stepLbl, In(parent), Row(row), Column(startCol), Sticky("e"), Padx("0.2m"))
		Grid(s.totalLbl, In(parent), Row(row), Column(startCol+1), Sticky("e"), Padx("0.2m"))
	} else {
		Grid(s.stepLbl, Row(row), Column(startCol), Sticky("e"), Padx("0.2m"))
		Grid(s.totalLbl, Row(row), Column(startCol+1), Sticky("e"), Padx("0.2m"))
	}
	s.stepLbl.Configure(Txt(formatClock("Step", 0)))
	s.totalLbl.Configure(Txt(formatClock("Total", 0)))
	return s
}

// SetStep updates the current step duration display.
func (s *sessionStats) SetStep(d time.Duration) {
	if s == nil || s.stepLbl == nil {
		return
	}
	s.stepLbl.Configure(Txt(formatClock("Step", d)))
}

// SetTotal updates the total duration display.
func (s *sessionStats) SetTotal(d time.Duration) {
	if s == nil || s.totalLbl == nil {
		return
	}
	s.totalLbl.Configure(Txt(formatClock("Total", d)))
}

func formatClock(prefix string, d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%s: %02d:%02d", prefix, seconds/60, seconds%60)
}
