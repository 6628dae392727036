package processing

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/timeutil"
	"github.com/ayoisaiah/rehearse/internal/ui"
)

const (
	tickInterval = 100 * time.Millisecond
	grace        = 500 * time.Millisecond
	padding      = 2
	maxWidth     = 60
)

type (
	tickMsg   struct{}
	finishMsg struct{}
)

// Notifier shows a desktop notification.
type Notifier func(title, message string) error

// Options configures the processing screen.
type Options struct {
	Notify Notifier
	Title  string
	Styles ui.Styles
}

var quitKey = key.NewBinding(
	key.WithKeys("q", "ctrl+c", "esc"),
	key.WithHelp("q", "skip"),
)

// Model is the bubbletea model of the processing screen.
type Model struct {
	notify   Notifier
	handoff  session.Handoff
	title    string
	styles   ui.Styles
	help     help.Model
	progress progress.Model
	elapsed  time.Duration
	current  int
	finished bool
	done     bool
}

// DesktopNotifier sends notifications through the operating system.
func DesktopNotifier(title, message string) error {
	return beeep.Notify(title, message, "")
}

// New returns the processing screen for a finished session.
func New(h session.Handoff, opts Options) *Model {
	return &Model{
		handoff:  h,
		title:    opts.Title,
		notify:   opts.Notify,
		styles:   opts.Styles,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

// Done reports whether processing has finished or was skipped.
func (m *Model) Done() bool {
	return m.done
}

// Handoff returns the session being processed.
func (m *Model) Handoff() session.Handoff {
	return m.handoff
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.finished {
			return m, nil
		}

		m.elapsed += tickInterval
		m.current = Stage(m.elapsed)

		if m.elapsed >= Total() {
			m.finished = true

			return m, tea.Tick(grace, func(time.Time) tea.Msg {
				return finishMsg{}
			})
		}

		return m, tick()

	case finishMsg:
		m.done = true
		m.sendNotification()

		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			m.done = true

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil

	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}

func (m *Model) sendNotification() {
	if m.notify == nil {
		return
	}

	msg := fmt.Sprintf(
		"%d of %d questions in %s",
		m.handoff.Reached,
		m.handoff.Total,
		timeutil.Clock(m.handoff.Elapsed),
	)

	if err := m.notify(m.title+" is ready for review", msg); err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	var s strings.Builder

	step := Steps[m.current]
	label := step.Label()

	if m.finished {
		label = "Almost done..."
	}

	percent := Percent(m.elapsed)

	s.WriteString(m.styles.Accent.Render(step.Icon()+"  Processing Your Interview") + "\n\n")
	s.WriteString(m.styles.Secondary.Render(label) + "\n\n")
	s.WriteString(m.progress.ViewAs(percent) + "\n")
	s.WriteString(m.styles.Hint.Render(fmt.Sprintf(
		"%d%% complete   Step %d of %d",
		timeutil.Round(percent*100),
		m.current+1,
		len(Steps),
	)))
	s.WriteString("\n\n")

	for i, k := range Steps {
		state := StateOf(i, m.current, m.finished)

		line := fmt.Sprintf("%s %-32s %s", k.Icon(), k.Label(), state)

		switch state {
		case Done:
			line = m.styles.Success.Render(line)
		case InProgress:
			line = m.styles.Accent.Render(line)
		case Pending:
			line = m.styles.Hint.Render(line)
		}

		s.WriteString(line + "\n")
	}

	s.WriteString("\n" + m.help.ShortHelpView([]key.Binding{quitKey}))

	return m.styles.Base.Render(s.String())
}
