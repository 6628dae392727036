package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EndReason explains how a session reached the Ended status.
type EndReason string

const (
	// ReasonCompleted means the last question was moved past.
	ReasonCompleted EndReason = "completed"
	// ReasonEnded means the session was ended early.
	ReasonEnded EndReason = "ended"
	// ReasonDiscarded means the room was left without ending the session.
	ReasonDiscarded EndReason = "discarded"
)

// Handoff is produced once a session ends. It carries everything the
// processing stage needs to pick up the session by its identifier.
type Handoff struct {
	EndedAt    time.Time `json:"ended_at"`
	SessionID  string    `json:"session_id"`
	Reason     EndReason `json:"reason"`
	Notes      string    `json:"notes"`
	Flagged    []int     `json:"flagged"`
	Transcript []Entry   `json:"transcript"`
	Elapsed    int       `json:"elapsed"`
	// Reached is the number of questions that were shown
	Reached int `json:"reached"`
	Total   int `json:"total"`
}

// Advance describes the outcome of moving between questions.
type Advance struct {
	Handoff *Handoff
	From    int
	To      int
	Skipped bool
	Ended   bool
}

// Controller is the only writer of a Session. It is not safe for concurrent
// use: every method must be called from the same goroutine, which is also the
// goroutine that receives from the clock.
type Controller struct {
	access     MediaAccess
	clock      Clock
	stream     Stream
	logger     *slog.Logger
	now        func() time.Time
	seq        *Sequencer
	transcript *Transcript
	archive    []Entry
	reached    int
	sess       Session
	video      bool
	audio      bool
	armed      bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithMedia selects which devices Start asks for.
func WithMedia(video, audio bool) Option {
	return func(c *Controller) {
		c.video = video
		c.audio = audio
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithID overrides the generated session identifier.
func WithID(id string) Option {
	return func(c *Controller) {
		c.sess.ID = id
	}
}

// WithNow overrides the wall clock used for timestamps.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates an idle session over the given questions. The clock is
// armed by Start and disarmed when the session ends or the controller is
// closed.
func NewController(
	questions []Question,
	access MediaAccess,
	clock Clock,
	opts ...Option,
) (*Controller, error) {
	seq, err := NewSequencer(questions)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		access:     access,
		clock:      clock,
		seq:        seq,
		transcript: NewTranscript(0),
		reached:    1,
		video:      true,
		audio:      true,
		logger:     slog.Default(),
		now:        time.Now,
		sess: Session{
			ID:      uuid.NewString(),
			Status:  Idle,
			Flagged: make(map[int]struct{}),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With(slog.String("session_id", c.sess.ID))

	return c, nil
}

// ID returns the session identifier.
func (c *Controller) ID() string {
	return c.sess.ID
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.sess.Status
}

// Snapshot returns a copy of the session state.
func (c *Controller) Snapshot() Session {
	return c.sess.clone()
}

// Current returns the active question.
func (c *Controller) Current() Question {
	return c.seq.Current()
}

// Questions returns all the questions in order.
func (c *Controller) Questions() []Question {
	return c.seq.Questions()
}

// Transcript returns the entries captured for the active question.
func (c *Controller) Transcript() []Entry {
	return c.transcript.Entries()
}

// Ticks exposes the clock's tick channel to the event loop.
func (c *Controller) Ticks() <-chan Tick {
	return c.clock.Ticks()
}

// ClockDone is closed once the clock has been disarmed.
func (c *Controller) ClockDone() <-chan struct{} {
	return c.clock.Done()
}

func (c *Controller) invalid(action string) error {
	c.logger.Debug(
		"rejected action",
		slog.String("action", action),
		slog.String("status", c.sess.Status.String()),
	)

	return ErrInvalidState.Fmt(action, c.sess.Status)
}

// Start asks for camera and microphone access and begins recording once it is
// granted. On denial the session stays idle, the clock is not armed and an
// error matching ErrPermissionDenied is returned.
func (c *Controller) Start(ctx context.Context) error {
	if c.sess.Status != Idle {
		return c.invalid("start")
	}

	stream, err := c.access.RequestAccess(ctx, c.video, c.audio)
	if err != nil {
		if stream != nil {
			_ = stream.Close()
		}

		c.logger.Warn("media access denied", slog.Any("error", err))

		if errors.Is(err, ErrPermissionDenied) {
			return err
		}

		return ErrPermissionDenied.Wrap(err)
	}

	c.stream = stream
	c.sess.Status = Recording
	c.sess.StartedAt = c.now()

	c.clock.Start()
	c.armed = true

	c.logger.Info(
		"recording started",
		slog.Bool("video", c.video),
		slog.Bool("audio", c.audio),
	)

	return nil
}

// TogglePause switches between recording and paused and returns the new
// status.
func (c *Controller) TogglePause() (Status, error) {
	switch c.sess.Status {
	case Recording:
		c.sess.Status = Paused
	case Paused:
		c.sess.Status = Recording
	case Idle, Ended:
		return c.sess.Status, c.invalid("pause")
	}

	c.logger.Info("pause toggled", slog.String("status", c.sess.Status.String()))

	return c.sess.Status, nil
}

// Tick applies one elapsed second. It reports false and changes nothing unless
// the session is recording.
func (c *Controller) Tick(_ Tick) bool {
	if c.sess.Status != Recording {
		return false
	}

	c.sess.Elapsed++
	c.sess.QuestionElapsed++

	return true
}

// Append adds an utterance to the transcript of the active question. Text
// received while the session is not recording is dropped.
func (c *Controller) Append(text string) bool {
	if c.sess.Status != Recording {
		return false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	return c.transcript.Append(Entry{
		Text:          text,
		QuestionIndex: c.seq.Index(),
		Offset:        c.sess.Elapsed,
	})
}

// NextQuestion moves to the next question. On the last question the session
// ends and the returned Advance carries the handoff.
func (c *Controller) NextQuestion() (Advance, error) {
	return c.advance(false)
}

// SkipQuestion behaves like NextQuestion but marks the move as a skip.
func (c *Controller) SkipQuestion() (Advance, error) {
	return c.advance(true)
}

func (c *Controller) advance(skipped bool) (Advance, error) {
	action := "move to the next question"
	if skipped {
		action = "skip a question"
	}

	if c.sess.Status == Ended {
		return Advance{}, c.invalid(action)
	}

	from := c.seq.Index()

	if !c.seq.Advance() {
		h := c.finish(ReasonCompleted)

		return Advance{
			From:    from,
			To:      from,
			Skipped: skipped,
			Ended:   true,
			Handoff: &h,
		}, nil
	}

	c.switchQuestion()

	if c.seq.Index()+1 > c.reached {
		c.reached = c.seq.Index() + 1
	}

	c.logger.Info(
		"question changed",
		slog.Int("from", from),
		slog.Int("to", c.seq.Index()),
		slog.Bool("skipped", skipped),
	)

	return Advance{
		From:    from,
		To:      c.seq.Index(),
		Skipped: skipped,
	}, nil
}

// PreviousQuestion goes back one question. It is a no-op on the first
// question.
func (c *Controller) PreviousQuestion() (Advance, error) {
	if c.sess.Status == Ended {
		return Advance{}, c.invalid("go back a question")
	}

	from := c.seq.Index()

	if c.seq.Rewind() {
		c.switchQuestion()
	}

	return Advance{
		From: from,
		To:   c.seq.Index(),
	}, nil
}

func (c *Controller) switchQuestion() {
	c.sess.QuestionIndex = c.seq.Index()
	c.sess.QuestionElapsed = 0
	c.archive = append(c.archive, c.transcript.Reset(c.seq.Index())...)
}

// ToggleFlag marks or unmarks the question at index i for review and reports
// whether it is now flagged.
func (c *Controller) ToggleFlag(i int) (bool, error) {
	if c.sess.Status == Ended {
		return false, c.invalid("flag a question")
	}

	if i < 0 || i >= c.seq.Len() {
		return false, ErrQuestionOutOfRange.Fmt(i, c.seq.Len())
	}

	if _, ok := c.sess.Flagged[i]; ok {
		delete(c.sess.Flagged, i)
		return false, nil
	}

	c.sess.Flagged[i] = struct{}{}

	return true, nil
}

// SetNotes replaces the session notes.
func (c *Controller) SetNotes(notes string) error {
	if c.sess.Status == Ended {
		return c.invalid("edit notes")
	}

	c.sess.Notes = notes

	return nil
}

// ToggleMute mutes or unmutes the microphone while the session is live.
func (c *Controller) ToggleMute() (bool, error) {
	if c.sess.Status != Recording && c.sess.Status != Paused {
		return c.sess.Muted, c.invalid("toggle the microphone")
	}

	c.sess.Muted = !c.sess.Muted

	return c.sess.Muted, nil
}

// ToggleCamera turns the camera off or on while the session is live.
func (c *Controller) ToggleCamera() (bool, error) {
	if c.sess.Status != Recording && c.sess.Status != Paused {
		return c.sess.CameraOff, c.invalid("toggle the camera")
	}

	c.sess.CameraOff = !c.sess.CameraOff

	return c.sess.CameraOff, nil
}

// End finishes the session regardless of the current question.
func (c *Controller) End() (Handoff, error) {
	if c.sess.Status == Ended {
		return Handoff{}, c.invalid("end")
	}

	return c.finish(ReasonEnded), nil
}

// Close releases the clock and media stream. A session that has not ended is
// discarded. Close is safe to call more than once.
func (c *Controller) Close() error {
	if c.sess.Status != Ended {
		c.sess.Status = Ended
		c.sess.EndedAt = c.now()

		c.logger.Info("session discarded")
	}

	return c.release()
}

func (c *Controller) finish(reason EndReason) Handoff {
	c.sess.Status = Ended
	c.sess.EndedAt = c.now()

	if err := c.release(); err != nil {
		c.logger.Warn("releasing media failed", slog.Any("error", err))
	}

	c.archive = append(c.archive, c.transcript.Reset(c.seq.Index())...)

	h := Handoff{
		SessionID:  c.sess.ID,
		Reason:     reason,
		EndedAt:    c.sess.EndedAt,
		Elapsed:    c.sess.Elapsed,
		Reached:    c.reached,
		Total:      c.seq.Len(),
		Flagged:    c.sess.FlaggedIndices(),
		Notes:      c.sess.Notes,
		Transcript: append([]Entry(nil), c.archive...),
	}

	c.logger.Info(
		"session ended",
		slog.String("reason", string(reason)),
		slog.Int("elapsed", h.Elapsed),
		slog.Int("reached", h.Reached),
	)

	return h
}

func (c *Controller) release() error {
	if c.armed {
		c.clock.Stop()
		c.armed = false
	}

	if c.stream == nil {
		return nil
	}

	err := c.stream.Close()
	c.stream = nil

	return err
}
