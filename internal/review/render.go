// Package review renders finished and past interviews for the terminal and
// serves them over HTTP.
package review

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/rehearse/internal/catalog"
	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/timeutil"
	"github.com/ayoisaiah/rehearse/internal/ui"
)

const dateFormat = "Jan 2, 2006"

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", ui.Highlight(title))
}

func bullets(w io.Writer, items []string) {
	for _, s := range items {
		fmt.Fprintf(w, "  • %s\n", s)
	}
}

// DashboardRows turns interviews into table rows with a header.
func DashboardRows(cat *catalog.Catalog, interviews []catalog.Interview) [][]string {
	rows := [][]string{{"#", "ID", "INTERVIEW", "COMPANY", "TYPE", "DATE", "DURATION", "RATING"}}

	for i, iv := range interviews {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			iv.ID,
			iv.Title,
			iv.Company,
			cat.TypeLabel(iv.Type),
			iv.Date.Format(dateFormat),
			timeutil.Humanize(iv.Duration),
			fmt.Sprintf("%.1f", iv.Rating),
		})
	}

	return rows
}

// TemplateRows turns templates into table rows with a header.
func TemplateRows(cat *catalog.Catalog) [][]string {
	rows := [][]string{{"ID", "NAME", "COMPANY", "TYPE", "QUESTIONS"}}

	for _, t := range cat.Templates {
		rows = append(rows, []string{
			t.ID,
			t.Name,
			t.Company,
			cat.TypeLabel(t.Type),
			strconv.Itoa(len(t.Questions)),
		})
	}

	return rows
}

// RenderInterview writes the transcript and evaluation of a past interview.
func RenderInterview(w io.Writer, cat *catalog.Catalog, iv catalog.Interview) {
	fmt.Fprintf(w, "%s\n", ui.Highlight(iv.Title+" at "+iv.Company))
	fmt.Fprintf(
		w,
		"%s · %s · %s · %s\n",
		iv.Date.Format(dateFormat),
		timeutil.Humanize(iv.Duration),
		cat.TypeLabel(iv.Type),
		ui.Stars(iv.Rating),
	)

	section(w, "Transcript")

	for _, l := range iv.Transcript {
		speaker := ui.Cyan(l.Speaker)
		if l.Speaker == "You" {
			speaker = ui.Green(l.Speaker)
		}

		fmt.Fprintf(w, "  [%s] %s: %s\n", l.Time, speaker, l.Text)
	}

	renderEvaluation(w, iv.Evaluation)
}

func renderEvaluation(w io.Writer, e catalog.Evaluation) {
	section(w, "Evaluation")

	fmt.Fprintf(w, "  Overall: %s\n", ui.Stars(e.Overall()))

	for _, c := range e.Competencies {
		fmt.Fprintf(w, "  %-18s %s  %s\n", c.Name, ui.Stars(c.Rating), c.Description)
	}

	if len(e.Strengths) > 0 {
		section(w, "Strengths")
		bullets(w, e.Strengths)
	}

	if len(e.Improvements) > 0 {
		section(w, "Areas for improvement")
		bullets(w, e.Improvements)
	}

	if len(e.NextSteps) > 0 {
		section(w, "Next steps")
		bullets(w, e.NextSteps)
	}
}

// CompareRows lines up the competency ratings of two interviews. Competencies
// missing from one side are shown as "-".
func CompareRows(a, b catalog.Interview) [][]string {
	rows := [][]string{{"COMPETENCY", "#" + a.ID, "#" + b.ID, "CHANGE"}}

	var order []catalog.Competency

	seen := make(map[string]bool)

	for _, c := range append(append([]catalog.Competency(nil), a.Evaluation.Competencies...), b.Evaluation.Competencies...) {
		if !seen[c.ID] {
			seen[c.ID] = true

			order = append(order, c)
		}
	}

	rating := func(iv catalog.Interview, id string) (float64, string) {
		c, ok := iv.Evaluation.Competency(id)
		if !ok {
			return 0, "-"
		}

		return c.Rating, fmt.Sprintf("%.1f", c.Rating)
	}

	for _, c := range order {
		ra, sa := rating(a, c.ID)
		rb, sb := rating(b, c.ID)

		change := "-"
		if sa != "-" && sb != "-" {
			change = fmt.Sprintf("%+.1f", rb-ra)
		}

		rows = append(rows, []string{c.Name, sa, sb, change})
	}

	rows = append(rows, []string{
		"Overall",
		fmt.Sprintf("%.1f", a.Evaluation.Overall()),
		fmt.Sprintf("%.1f", b.Evaluation.Overall()),
		fmt.Sprintf("%+.1f", b.Evaluation.Overall()-a.Evaluation.Overall()),
	})

	return rows
}

// RenderHandoff writes the summary of a session that just ended.
func RenderHandoff(
	w io.Writer,
	h session.Handoff,
	questions []session.Question,
	timeFormat string,
) {
	title := "Interview complete"
	if h.Reason == session.ReasonEnded {
		title = "Interview ended early"
	}

	fmt.Fprintf(w, "%s\n", ui.Highlight(title))
	fmt.Fprintf(w, "  Session:   %s\n", h.SessionID)
	fmt.Fprintf(w, "  Ended at:  %s\n", h.EndedAt.Format(timeFormat))
	fmt.Fprintf(w, "  Recorded:  %s\n", timeutil.Clock(h.Elapsed))
	fmt.Fprintf(w, "  Questions: %d of %d\n", h.Reached, h.Total)

	if len(h.Flagged) > 0 {
		section(w, "Flagged for review")

		for _, i := range h.Flagged {
			if i >= 0 && i < len(questions) {
				fmt.Fprintf(w, "  %d. %s\n", i+1, questions[i].Prompt)
			}
		}
	}

	if strings.TrimSpace(h.Notes) != "" {
		section(w, "Notes")

		for _, line := range strings.Split(strings.TrimSpace(h.Notes), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	if len(h.Transcript) > 0 {
		section(w, "Transcript")

		last := -1

		for _, e := range h.Transcript {
			if e.QuestionIndex != last && e.QuestionIndex < len(questions) {
				last = e.QuestionIndex
				fmt.Fprintf(w, "  Q%d. %s\n", e.QuestionIndex+1, questions[e.QuestionIndex].Prompt)
			}

			fmt.Fprintf(w, "    [%s] %s\n", timeutil.Clock(e.Offset), e.Text)
		}
	}
}

// Summary is the one-line total shown under the dashboard.
func Summary(interviews []catalog.Interview, now time.Time) string {
	thisWeek := 0
	weekAgo := now.AddDate(0, 0, -7)

	for _, iv := range interviews {
		if iv.Date.After(weekAgo) {
			thisWeek++
		}
	}

	return fmt.Sprintf(
		"%d interviews · average rating %.1f · %d this week",
		len(interviews),
		catalog.AverageRating(interviews),
		thisWeek,
	)
}
