package presentation

import "github.com/soocke/svmdeck/domain/plot"

// StepKind enumerates render step records.
type StepKind int

const (
	StepHeading StepKind = iota + 1
	StepText
	StepCode
	StepDivider
	StepPlot
)

func (k StepKind) String() string {
	switch k {
	case StepHeading:
		return "heading"
	case StepText:
		return "text"
	case StepCode:
		return "code"
	case StepDivider:
		return "divider"
	case StepPlot:
		return "plot"
	default:
		return "unknown"
	}
}

// Step is one record of the deck: a text block or a plot artifact.
type Step interface {
	Kind() StepKind
}

// Heading is a section title. Level 1 is the page title.
type Heading struct {
	Text  string
	Level int
}

// Text is a narrative block; lines starting with "- " are bullets.
type Text struct {
	Body string
}

// Code shows a source snippet under a caption.
type Code struct {
	Caption string
	Source  string
}

// Divider separates sections.
type Divider struct{}

// Control flags which shell controls affect a plot step.
type Control uint8

const (
	// ControlCandidates marks the plot driven by the candidate-lines toggle.
	ControlCandidates Control = 1 << iota
	// ControlAngles marks the plot driven by the elevation/azimuth controls.
	ControlAngles
)

// Plot carries a rendered figure.
type Plot struct {
	Title    string
	Figure   *plot.Figure
	Notes    string
	Controls Control
}

func (Heading) Kind() StepKind { return StepHeading }
func (Text) Kind() StepKind    { return StepText }
func (Code) Kind() StepKind    { return StepCode }
func (Divider) Kind() StepKind { return StepDivider }
func (Plot) Kind() StepKind    { return StepPlot }

// Options are the shell-controlled inputs of a build.
type Options struct {
	ShowCandidates bool
	Elev, Azim     float64
}

// FitReport summarises one classifier fit made while building the deck.
type FitReport struct {
	Name          string
	Kernel        string
	Iterations    int
	Converged     bool
	Support       int
	Misclassified int
	Rate          float64
}

// Driver consumes steps in order, e.g. a view or an exporter.
type Driver interface {
	Emit(step Step) error
}
