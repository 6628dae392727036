package ui

import (
	"fmt"
	"io"
	"strings"
)

// Problem is a failure the user can act on.
type Problem int

const (
	ProblemNotFound Problem = iota
	ProblemMicrophone
	ProblemRecording
	ProblemNetwork
)

// Page is the text shown for a Problem.
type Page struct {
	Title       string
	Description string
	Action      string
}

// Page returns the title, description and suggested action for p.
func (p Problem) Page() Page {
	switch p {
	case ProblemNotFound:
		return Page{
			Title:       "Page not found",
			Description: "The interview you are looking for doesn't exist or has been removed.",
			Action:      "Run 'rehearse list' to see your interviews.",
		}
	case ProblemMicrophone:
		return Page{
			Title:       "Microphone access required",
			Description: "We need access to your camera and microphone to record your interview.",
			Action:      "Allow access when asked, or start again with --mode practice.",
		}
	case ProblemRecording:
		return Page{
			Title:       "Recording failed",
			Description: "Something went wrong while recording your interview.",
			Action:      "Start a new interview with 'rehearse'.",
		}
	case ProblemNetwork:
		return Page{
			Title:       "Connection problem",
			Description: "The review server could not be reached.",
			Action:      "Check the port with 'rehearse serve --port' and try again.",
		}
	default:
		return Page{Title: "Unknown problem"}
	}
}

func (p Problem) String() string {
	return p.Page().Title
}

// Render formats the problem page as plain text.
func (p Problem) Render() string {
	page := p.Page()

	var s strings.Builder

	s.WriteString(Red(page.Title))
	s.WriteString("\n\n" + page.Description)

	if page.Action != "" {
		s.WriteString("\n" + Highlight(page.Action))
	}

	return s.String()
}

// PrintProblem writes the rendered problem page to w.
func PrintProblem(w io.Writer, p Problem) {
	fmt.Fprintln(w, p.Render())
}
