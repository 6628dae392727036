// Package room is the interactive interview room. It is a view over a
// session.Controller: every user action and clock tick is turned into a
// controller call on the bubbletea event loop.
package room

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/rehearse/internal/cue"
	"github.com/ayoisaiah/rehearse/internal/media"
	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/status"
	"github.com/ayoisaiah/rehearse/internal/ui"
)

const (
	speakingInterval = 3 * time.Second
	toastDuration    = 2 * time.Second
	padding          = 2
	maxWidth         = 80
	transcriptHeight = 6
)

type phase int

const (
	phaseConsent phase = iota
	phaseDenied
	phaseLive
	phaseLeave
	phaseEnded
)

type (
	tickMsg      struct{ tick session.Tick }
	clockDoneMsg struct{}
	speakingMsg  struct{}
	toastMsg     struct{ id int }
)

// CuePlayer plays audible cues.
type CuePlayer interface {
	Play(k cue.Kind, done func()) error
}

// Options configures the room.
type Options struct {
	Cues       CuePlayer
	Title      string
	Role       string
	Company    string
	Mode       media.Mode
	StatusPath string
	TimeFormat string
	Script     []string
	Styles     ui.Styles
	Duration   time.Duration
	Interval   int
	AutoGrant  bool
	Simulate   bool
	Debug      bool
}

// Model is the bubbletea model of the interview room.
type Model struct {
	ctx         context.Context
	ctrl        *session.Controller
	consent     *media.Consent
	cues        CuePlayer
	handoff     *session.Handoff
	form        *huh.Form
	script      *script
	opts        Options
	styles      ui.Styles
	toast       string
	err         error
	help        help.Model
	progress    progress.Model
	transcript  viewport.Model
	notes       textarea.Model
	phase       phase
	toastID     int
	allow       bool
	leave       bool
	speaking    bool
	editing     bool
}

// New returns a room for ctrl. consent receives the answer to the camera and
// microphone prompt before the controller asks for access.
func New(
	ctx context.Context,
	ctrl *session.Controller,
	consent *media.Consent,
	opts Options,
) *Model {
	notes := textarea.New()
	notes.Placeholder = "Jot down anything you want to revisit..."
	notes.ShowLineNumbers = false
	notes.SetHeight(3)

	vp := viewport.New(maxWidth-padding*2, transcriptHeight)

	return &Model{
		ctx:        ctx,
		ctrl:       ctrl,
		consent:    consent,
		cues:       opts.Cues,
		opts:       opts,
		styles:     opts.Styles,
		script:     newScript(opts.Script),
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		transcript: vp,
		notes:      notes,
		phase:      phaseConsent,
		allow:      true,
	}
}

// Handoff is set once the session has ended normally.
func (m *Model) Handoff() *session.Handoff {
	return m.handoff
}

// Err is the last error shown to the user.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	video, audio := m.opts.Mode.Devices()

	if m.opts.AutoGrant || (!video && !audio) {
		m.consent.Answer(true)

		return m.start()
	}

	m.form = m.consentForm()

	return m.form.Init()
}

func (m *Model) consentForm() *huh.Form {
	m.allow = true

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Allow rehearse to use your "+devicesLabel(m.opts.Mode)+"?").
				Description("Your interview is recorded so it can be reviewed afterwards.").
				Affirmative("Allow").
				Negative("Don't allow").
				Value(&m.allow),
		),
	)
}

func (m *Model) leaveForm() *huh.Form {
	m.leave = false

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("End the interview?").
				Description("Your answers so far will be processed for review.").
				Affirmative("End interview").
				Negative("Keep going").
				Value(&m.leave),
		),
	)
}

func devicesLabel(mode media.Mode) string {
	video, audio := mode.Devices()

	switch {
	case video && audio:
		return "camera and microphone"
	case video:
		return "camera"
	default:
		return "microphone"
	}
}

// start asks the controller to begin recording.
func (m *Model) start() tea.Cmd {
	err := m.ctrl.Start(m.ctx)
	if err != nil {
		m.err = err
		m.phase = phaseDenied

		slog.Warn("could not start the interview", slog.Any("error", err))

		return nil
	}

	m.err = nil
	m.phase = phaseLive
	m.writeStatus()
	m.playCue(cue.Start)

	return tea.Batch(waitForTick(m.ctrl), speak())
}

// waitForTick blocks until the controller's clock ticks or is disarmed.
func waitForTick(ctrl *session.Controller) tea.Cmd {
	ticks, done := ctrl.Ticks(), ctrl.ClockDone()

	return func() tea.Msg {
		select {
		case t := <-ticks:
			return tickMsg{tick: t}
		case <-done:
			return clockDoneMsg{}
		}
	}
}

func speak() tea.Cmd {
	return tea.Tick(speakingInterval, func(time.Time) tea.Msg {
		return speakingMsg{}
	})
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toastID++
	m.toast = text

	id := m.toastID

	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastMsg{id: id}
	})
}

func (m *Model) playCue(k cue.Kind) {
	if m.cues == nil {
		return
	}

	if err := m.cues.Play(k, nil); err != nil {
		slog.Warn("disabling audio cues", slog.Any("error", err))

		m.cues = nil
	}
}

func (m *Model) writeStatus() {
	if m.opts.StatusPath == "" {
		return
	}

	s := status.FromSession(
		m.ctrl.Snapshot(),
		m.opts.Title,
		len(m.ctrl.Questions()),
		time.Now(),
	)

	if err := status.Write(m.opts.StatusPath, s); err != nil {
		slog.Debug("writing status file failed", slog.Any("error", err))
	}
}

func (m *Model) removeStatus() {
	if m.opts.StatusPath == "" {
		return
	}

	if err := status.Remove(m.opts.StatusPath); err != nil {
		slog.Debug("removing status file failed", slog.Any("error", err))
	}
}

// finish records the handoff and stops the program.
func (m *Model) finish(h *session.Handoff) tea.Cmd {
	m.handoff = h
	m.phase = phaseEnded
	m.editing = false
	m.removeStatus()
	m.playCue(cue.End)

	return tea.Quit
}

// abandon discards the session and stops the program.
func (m *Model) abandon() tea.Cmd {
	if err := m.ctrl.Close(); err != nil {
		slog.Warn("closing session failed", slog.Any("error", err))
	}

	m.phase = phaseEnded
	m.removeStatus()

	return tea.Quit
}
