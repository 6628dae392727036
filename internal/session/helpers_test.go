package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

type fakeClock struct {
	ticks   chan Tick
	done    chan struct{}
	starts  int
	stopped bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		ticks: make(chan Tick),
		done:  make(chan struct{}),
	}
}

func (f *fakeClock) Start() { f.starts++ }

func (f *fakeClock) Stop() {
	if !f.stopped {
		f.stopped = true
		close(f.done)
	}
}

func (f *fakeClock) Ticks() <-chan Tick { return f.ticks }

func (f *fakeClock) Done() <-chan struct{} { return f.done }

type fakeStream struct {
	closed int
}

func (s *fakeStream) Close() error {
	s.closed++
	return nil
}

type fakeAccess struct {
	err      error
	stream   *fakeStream
	requests int
	video    bool
	audio    bool
}

func (a *fakeAccess) RequestAccess(
	_ context.Context,
	video, audio bool,
) (Stream, error) {
	a.requests++
	a.video, a.audio = video, audio

	if a.err != nil {
		return nil, a.err
	}

	a.stream = &fakeStream{}

	return a.stream, nil
}

var fixedNow = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

func testQuestions(n int) []Question {
	prompts := []string{
		"What job experience level are you targeting?",
		"Tell me about a time when you led a team through a difficult project.",
		"How do you approach problem solving in complex situations?",
		"What makes you passionate about this role?",
		"Describe your biggest achievement in your career so far.",
	}

	qs := make([]Question, n)
	for i := range n {
		qs[i] = Question{Prompt: prompts[i%len(prompts)]}
	}

	return qs
}

func newTestController(
	t *testing.T,
	n int,
	access *fakeAccess,
) (*Controller, *fakeClock) {
	t.Helper()

	clock := newFakeClock()

	c, err := NewController(
		testQuestions(n),
		access,
		clock,
		WithID("sess-1"),
		WithNow(func() time.Time { return fixedNow }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatal(err)
	}

	return c, clock
}

func startedController(t *testing.T, n int) (*Controller, *fakeClock, *fakeAccess) {
	t.Helper()

	access := &fakeAccess{}

	c, clock := newTestController(t, n, access)

	if err := c.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	return c, clock, access
}
