package app

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/rehearse/internal/status"
)

const noInterviewMsg = "No interview in progress"

// printStatus writes the one-line status of the running interview. A status
// that has not been refreshed recently is left over from a room that did not
// exit cleanly.
func printStatus(w io.Writer, s *status.Status, now time.Time) {
	if s == nil {
		fmt.Fprintln(w, pterm.Info.Sprint(noInterviewMsg))
		return
	}

	if s.Stale(now) {
		fmt.Fprintln(
			w,
			pterm.Warning.Sprintf(
				"%s (last updated %s ago, the room may have exited)",
				s,
				now.Sub(s.UpdatedAt).Round(time.Second),
			),
		)

		return
	}

	fmt.Fprintln(w, s)
}
