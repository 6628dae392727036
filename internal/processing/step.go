// Package processing shows the post-interview processing stage.
package processing

import "time"

// StepKind is one stage of processing a recorded interview.
type StepKind int

const (
	StepVideo StepKind = iota
	StepTranscript
	StepAnalysis
)

// Steps lists the processing stages in order.
var Steps = []StepKind{StepVideo, StepTranscript, StepAnalysis}

func (k StepKind) Label() string {
	switch k {
	case StepVideo:
		return "Processing video recording..."
	case StepTranscript:
		return "Generating transcript..."
	case StepAnalysis:
		return "Analyzing performance..."
	default:
		return "Almost done..."
	}
}

func (k StepKind) Icon() string {
	switch k {
	case StepVideo:
		return "🎥"
	case StepTranscript:
		return "📝"
	case StepAnalysis:
		return "📊"
	default:
		return "⏳"
	}
}

func (k StepKind) Duration() time.Duration {
	switch k {
	case StepVideo:
		return 2000 * time.Millisecond
	case StepTranscript:
		return 3000 * time.Millisecond
	case StepAnalysis:
		return 2000 * time.Millisecond
	default:
		return 0
	}
}

// StepState is how far along a single step is.
type StepState int

const (
	Pending StepState = iota
	InProgress
	Done
)

func (s StepState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case InProgress:
		return "In Progress"
	case Done:
		return "Done"
	default:
		return "unknown"
	}
}

// Total is the combined duration of all steps.
func Total() time.Duration {
	var d time.Duration
	for _, s := range Steps {
		d += s.Duration()
	}

	return d
}

// Stage returns the index of the step running at elapsed. Once every step
// has run it stays on the last one.
func Stage(elapsed time.Duration) int {
	var acc time.Duration

	for i, s := range Steps {
		acc += s.Duration()
		if elapsed < acc {
			return i
		}
	}

	return len(Steps) - 1
}

// Percent is the overall progress in [0, 1].
func Percent(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}

	return min(float64(elapsed)/float64(Total()), 1)
}

// StateOf reports the state of step i while step current runs.
func StateOf(i, current int, finished bool) StepState {
	switch {
	case finished || i < current:
		return Done
	case i == current:
		return InProgress
	default:
		return Pending
	}
}
