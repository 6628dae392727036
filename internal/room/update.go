package room

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/rehearse/internal/cue"
	"github.com/ayoisaiah/rehearse/internal/session"
)

// handleTick applies a clock tick and waits for the next one.
func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Tick(msg.tick) {
		elapsed := m.ctrl.Snapshot().Elapsed

		if m.opts.Simulate && due(elapsed, m.opts.Interval) {
			if m.ctrl.Append(m.script.Next()) {
				m.refreshTranscript()
			}
		}

		m.writeStatus()
	}

	return m, waitForTick(m.ctrl)
}

func (m *Model) handleAdvance(adv session.Advance, err error) tea.Cmd {
	if err != nil {
		m.err = err
		return nil
	}

	if adv.Ended {
		return m.finish(adv.Handoff)
	}

	if adv.From != adv.To {
		m.playCue(cue.Question)
		m.refreshTranscript()
	}

	m.writeStatus()

	if adv.Skipped {
		return m.showToast("Question skipped")
	}

	return nil
}

// handleForm routes a message to the open dialog and acts on its answer.
func (m *Model) handleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.form = nil

		if m.phase == phaseConsent {
			m.consent.Answer(m.allow)
			return m, m.start()
		}

		m.phase = phaseLive

		if m.leave {
			h, err := m.ctrl.End()
			if err != nil {
				m.err = err
				return m, nil
			}

			return m, m.finish(&h)
		}

		return m, nil

	case huh.StateAborted:
		m.form = nil

		if m.phase == phaseConsent {
			return m, m.abandon()
		}

		m.phase = phaseLive

		return m, nil

	case huh.StateNormal:
	}

	return m, cmd
}

func (m *Model) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.doneNotes) {
		m.editing = false
		m.notes.Blur()

		if err := m.ctrl.SetNotes(m.notes.Value()); err != nil {
			m.err = err
		}

		return m, m.showToast("Notes saved")
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)

	return m, cmd
}

func (m *Model) handleLiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleNotesKey(msg)
	}

	m.err = nil

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		st, err := m.ctrl.TogglePause()
		if err != nil {
			m.err = err
			return m, nil
		}

		m.writeStatus()

		if st == session.Paused {
			return m, m.showToast("Recording paused")
		}

		return m, m.showToast("Recording resumed")

	case key.Matches(msg, defaultKeymap.next):
		return m, m.handleAdvance(m.ctrl.NextQuestion())

	case key.Matches(msg, defaultKeymap.skip):
		return m, m.handleAdvance(m.ctrl.SkipQuestion())

	case key.Matches(msg, defaultKeymap.previous):
		return m, m.handleAdvance(m.ctrl.PreviousQuestion())

	case key.Matches(msg, defaultKeymap.flag):
		flagged, err := m.ctrl.ToggleFlag(m.ctrl.Current().Index)
		if err != nil {
			m.err = err
			return m, nil
		}

		if flagged {
			return m, m.showToast("Question flagged for review")
		}

		return m, m.showToast("Flag removed")

	case key.Matches(msg, defaultKeymap.repeat):
		return m, m.showToast("The interviewer will repeat the question")

	case key.Matches(msg, defaultKeymap.mute):
		muted, err := m.ctrl.ToggleMute()
		if err != nil {
			m.err = err
			return m, nil
		}

		m.writeStatus()

		if muted {
			return m, m.showToast("Microphone muted")
		}

		return m, m.showToast("Microphone on")

	case key.Matches(msg, defaultKeymap.camera):
		off, err := m.ctrl.ToggleCamera()
		if err != nil {
			m.err = err
			return m, nil
		}

		if off {
			return m, m.showToast("Camera off")
		}

		return m, m.showToast("Camera on")

	case key.Matches(msg, defaultKeymap.notes):
		m.editing = true

		return m, m.notes.Focus()

	case key.Matches(msg, defaultKeymap.help):
		m.help.ShowAll = !m.help.ShowAll

		return m, nil

	case key.Matches(msg, defaultKeymap.leave):
		m.phase = phaseLeave
		m.form = m.leaveForm()

		return m, m.form.Init()
	}

	return m, nil
}

func (m *Model) handleDeniedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.retry):
		m.phase = phaseConsent
		m.form = m.consentForm()

		return m, m.form.Init()

	case key.Matches(msg, defaultKeymap.leave):
		return m, m.abandon()
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.opts.Debug {
		if _, ok := msg.(tickMsg); !ok {
			slog.Debug("room message", slog.String("msg", spew.Sdump(msg)))
		}
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(msg)

	case clockDoneMsg:
		return m, nil

	case speakingMsg:
		if m.phase == phaseEnded {
			return m, nil
		}

		if m.ctrl.Status() == session.Recording {
			m.speaking = !m.speaking
		}

		return m, speak()

	case toastMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}

		return m, nil

	case tea.WindowSizeMsg:
		width := min(msg.Width-padding*2-4, maxWidth)

		m.progress.Width = width
		m.transcript.Width = width
		m.notes.SetWidth(width)

		return m, nil

	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) {
			return m, m.abandon()
		}
	}

	if m.form != nil {
		return m.handleForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.phase {
	case phaseLive:
		return m.handleLiveKey(keyMsg)
	case phaseDenied:
		return m.handleDeniedKey(keyMsg)
	case phaseConsent, phaseLeave, phaseEnded:
	}

	return m, nil
}
