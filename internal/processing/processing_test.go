package processing

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/ui"
)

func TestStage(t *testing.T) {
	testCases := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 0},
		{1900 * time.Millisecond, 0},
		{2000 * time.Millisecond, 1},
		{4999 * time.Millisecond, 1},
		{5000 * time.Millisecond, 2},
		{6900 * time.Millisecond, 2},
		{time.Minute, 2},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Stage(tc.elapsed), tc.elapsed)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 7*time.Second, Total())
	assert.Zero(t, Percent(0))
	assert.InDelta(t, 0.5, Percent(3500*time.Millisecond), 1e-9)
	assert.InDelta(t, 1.0, Percent(10*time.Second), 1e-9)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, Done, StateOf(0, 1, false))
	assert.Equal(t, InProgress, StateOf(1, 1, false))
	assert.Equal(t, Pending, StateOf(2, 1, false))
	assert.Equal(t, Done, StateOf(2, 2, true))
	assert.Equal(t, "In Progress", InProgress.String())
}

func TestStepKinds(t *testing.T) {
	for _, k := range Steps {
		assert.NotEmpty(t, k.Label())
		assert.NotEmpty(t, k.Icon())
		assert.Positive(t, k.Duration())
	}

	assert.Equal(t, "Almost done...", StepKind(7).Label())
	assert.Zero(t, StepKind(7).Duration())
}

func newModel(notify Notifier) *Model {
	return New(session.Handoff{
		SessionID: "abc",
		Reached:   4,
		Total:     5,
		Elapsed:   125,
	}, Options{
		Title:  "Frontend Developer Interview",
		Notify: notify,
		Styles: ui.NewStyles("#7C3AED", true),
	})
}

func TestModelRunsThroughSteps(t *testing.T) {
	var title, body string

	m := newModel(func(t, b string) error {
		title, body = t, b
		return nil
	})

	require.NotNil(t, m.Init())

	steps := int(Total() / tickInterval)

	for i := 0; i < steps-1; i++ {
		_, cmd := m.Update(tickMsg{})
		require.NotNil(t, cmd)
	}

	assert.Equal(t, 2, m.current)
	assert.False(t, m.finished)
	assert.Contains(t, m.View(), "Analyzing performance...")

	_, cmd := m.Update(tickMsg{})
	require.NotNil(t, cmd)
	assert.True(t, m.finished)
	assert.Contains(t, m.View(), "Almost done...")

	_, cmd = m.Update(tickMsg{})
	assert.Nil(t, cmd, "ticks after the last step are ignored")

	_, cmd = m.Update(finishMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Done())
	assert.Empty(t, m.View())

	assert.Equal(t, "Frontend Developer Interview is ready for review", title)
	assert.Equal(t, "4 of 5 questions in 02:05", body)
}

func TestModelSkip(t *testing.T) {
	m := newModel(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.Equal(t, "abc", m.Handoff().SessionID)
}

func TestNotificationFailureIsNotFatal(t *testing.T) {
	m := newModel(func(string, string) error {
		return errors.New("no notification daemon")
	})

	_, cmd := m.Update(finishMsg{})
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
}

func TestWindowSize(t *testing.T) {
	m := newModel(nil)

	m.Update(tea.WindowSizeMsg{Width: 40})
	assert.Equal(t, 32, m.progress.Width)

	m.Update(tea.WindowSizeMsg{Width: 200})
	assert.Equal(t, maxWidth, m.progress.Width)
}
