package room

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/timeutil"
	"github.com/ayoisaiah/rehearse/internal/ui"
)

// highlight renders prompt with the first occurrence of focus emphasised.
func highlight(prompt, focus string, s ui.Styles) string {
	if focus == "" {
		return s.Main.Render(prompt)
	}

	i := strings.Index(strings.ToLower(prompt), strings.ToLower(focus))
	if i < 0 {
		return s.Main.Render(prompt)
	}

	end := i + len(focus)

	return s.Main.Render(prompt[:i]) +
		s.Focus.Render(prompt[i:end]) +
		s.Main.Render(prompt[end:])
}

func (m *Model) refreshTranscript() {
	entries := m.ctrl.Transcript()
	lines := make([]string, len(entries))

	for i, e := range entries {
		lines[i] = m.styles.Hint.Render("["+timeutil.Clock(e.Offset)+"]") + " " + e.Text
	}

	m.transcript.SetContent(strings.Join(lines, "\n"))
	m.transcript.GotoBottom()
}

func (m *Model) headerView(sess session.Session) string {
	var s strings.Builder

	s.WriteString(m.styles.Accent.Render(m.opts.Title))

	if m.opts.Role != "" {
		s.WriteString(m.styles.Hint.Render("  " + m.opts.Role))
		if m.opts.Company != "" {
			s.WriteString(m.styles.Hint.Render(" @ " + m.opts.Company))
		}
	}

	s.WriteString("\n")

	switch sess.Status {
	case session.Recording:
		s.WriteString(m.styles.Danger.Render("● REC"))
	case session.Paused:
		s.WriteString(m.styles.Secondary.Render("❚❚ PAUSED"))
	case session.Idle:
		s.WriteString(m.styles.Hint.Render("○ READY"))
	case session.Ended:
		s.WriteString(m.styles.Hint.Render("■ ENDED"))
	}

	s.WriteString(" " + m.styles.Main.Render(timeutil.Clock(sess.Elapsed)))

	if m.opts.Duration > 0 {
		s.WriteString(m.styles.Hint.Render(
			" / " + timeutil.Clock(int(m.opts.Duration.Seconds())),
		))
	}

	s.WriteString(m.styles.Hint.Render("  " + m.opts.Mode.Label()))

	if sess.Muted {
		s.WriteString(m.styles.Danger.Render("  🎤 muted"))
	}

	if sess.CameraOff {
		s.WriteString(m.styles.Danger.Render("  📷 off"))
	}

	return s.String()
}

func (m *Model) interviewerView() string {
	indicator := m.styles.Hint.Render("listening")

	if m.speaking {
		indicator = m.styles.Success.Render("speaking...")
	}

	return "🧑‍💼 " + m.styles.Secondary.Render("AI Interviewer") + "  " + indicator
}

func (m *Model) questionView(sess session.Session) string {
	var s strings.Builder

	q := m.ctrl.Current()
	total := len(m.ctrl.Questions())

	s.WriteString(m.styles.Hint.Render(fmt.Sprintf("Question %d of %d", q.Index+1, total)))

	if sess.IsFlagged(q.Index) {
		s.WriteString(m.styles.Accent.Render("  ⚑ flagged"))
	}

	s.WriteString(m.styles.Hint.Render("  on this question " + timeutil.Clock(sess.QuestionElapsed)))
	s.WriteString("\n\n" + highlight(q.Prompt, q.Focus, m.styles) + "\n\n")
	s.WriteString(m.progress.ViewAs(float64(q.Index+1) / float64(total)))

	return s.String()
}

func (m *Model) questionListView(sess session.Session) string {
	var s strings.Builder

	current := m.ctrl.Current().Index

	for _, q := range m.ctrl.Questions() {
		marker := "  "

		switch {
		case q.Index == current:
			marker = "▶ "
		case q.Index < current:
			marker = "✓ "
		}

		line := fmt.Sprintf("%s%d. %s", marker, q.Index+1, q.Prompt)

		if sess.IsFlagged(q.Index) {
			line += " ⚑"
		}

		if q.Index == current {
			s.WriteString(m.styles.Secondary.Render(line) + "\n")
		} else {
			s.WriteString(m.styles.Hint.Render(line) + "\n")
		}
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (m *Model) transcriptView() string {
	title := m.styles.Secondary.Render("Live transcript")

	if len(m.ctrl.Transcript()) == 0 {
		return title + "\n" + m.styles.Hint.Render("Start speaking to see your transcript here.")
	}

	return title + "\n" + m.transcript.View()
}

func (m *Model) notesView(sess session.Session) string {
	title := m.styles.Secondary.Render("Notes")

	if m.editing {
		return title + "\n" + m.notes.View()
	}

	if sess.Notes == "" {
		return title + "\n" + m.styles.Hint.Render("Press n to add notes.")
	}

	return title + "\n" + sess.Notes
}

func (m *Model) liveView() string {
	sess := m.ctrl.Snapshot()

	sections := []string{
		m.headerView(sess),
		m.interviewerView(),
		m.styles.Panel.Render(m.questionView(sess)),
		m.questionListView(sess),
		m.styles.Panel.Render(m.transcriptView()),
		m.notesView(sess),
	}

	if m.toast != "" {
		sections = append(sections, m.styles.Toast.Render(m.toast))
	}

	if m.err != nil {
		sections = append(sections, m.styles.Danger.Render(m.err.Error()))
	}

	if m.form != nil {
		sections = append(sections, m.styles.Dialog.Render(m.form.View()))
	} else if m.editing {
		sections = append(sections, m.help.ShortHelpView([]key.Binding{defaultKeymap.doneNotes}))
	} else {
		sections = append(sections, m.help.View(defaultKeymap))
	}

	return strings.Join(sections, "\n\n")
}

// deviceFailed reports whether starting failed for a reason other than the
// user refusing access.
func (m *Model) deviceFailed() bool {
	return m.err != nil && errors.Unwrap(m.err) != nil
}

func (m *Model) deniedView() string {
	var s strings.Builder

	problem := ui.ProblemMicrophone
	if m.deviceFailed() {
		problem = ui.ProblemRecording
	}

	page := problem.Page()

	s.WriteString(m.styles.Danger.Render(page.Title) + "\n\n")
	s.WriteString(m.styles.Secondary.Render(page.Description) + "\n")
	s.WriteString(m.styles.Hint.Render(page.Action))

	if m.deviceFailed() {
		s.WriteString("\n\n" + m.styles.Hint.Render(m.err.Error()))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.retry,
		defaultKeymap.leave,
	}))

	return s.String()
}

func (m *Model) consentView() string {
	if m.form == nil {
		return ""
	}

	return m.styles.Accent.Render(m.opts.Title) + "\n\n" + m.styles.Dialog.Render(m.form.View())
}

func (m *Model) View() string {
	var view string

	switch m.phase {
	case phaseConsent:
		view = m.consentView()
	case phaseDenied:
		view = m.deniedView()
	case phaseLive, phaseLeave:
		view = m.liveView()
	case phaseEnded:
		return ""
	}

	return m.styles.Base.Render(view)
}
