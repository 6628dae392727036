package app

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/rehearse/internal/catalog"
	"github.com/ayoisaiah/rehearse/internal/review"
	"github.com/ayoisaiah/rehearse/internal/ui"
)

const noInterviewsMsg = "No interviews match the specified filters"

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// listInterviews prints the interview dashboard.
func listInterviews(w io.Writer, cat *catalog.Catalog, interviews []catalog.Interview, now time.Time) error {
	if len(interviews) == 0 {
		_, err := fmt.Fprintln(w, pterm.Info.Sprint(noInterviewsMsg))
		return err
	}

	if err := ui.PrintTable(w, review.DashboardRows(cat, interviews)); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, review.Summary(interviews, now))

	return err
}
