// Package media provides the camera and microphone collaborators used by the
// interview room. Nothing is captured: a stream only records which devices are
// held until it is closed.
package media

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ayoisaiah/rehearse/internal/apperr"
	"github.com/ayoisaiah/rehearse/internal/session"
)

// Mode is a recording mode chosen when setting up an interview.
type Mode string

const (
	ModeVideoAudio Mode = "video-audio"
	ModeAudioOnly  Mode = "audio-only"
	ModePractice   Mode = "practice"
)

var errUnknownMode = &apperr.Error{
	Message: "unknown recording mode %q (expected video-audio, audio-only, or practice)",
}

// Modes lists the recording modes in display order.
var Modes = []Mode{ModeVideoAudio, ModeAudioOnly, ModePractice}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))

	switch m {
	case ModeVideoAudio, ModeAudioOnly, ModePractice:
		return m, nil
	}

	return "", errUnknownMode.Fmt(s)
}

// Devices reports which devices the mode needs.
func (m Mode) Devices() (video, audio bool) {
	switch m {
	case ModeVideoAudio:
		return true, true
	case ModeAudioOnly:
		return false, true
	case ModePractice:
		return false, false
	}

	return false, false
}

// Label is the human readable name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeVideoAudio:
		return "Video + Audio"
	case ModeAudioOnly:
		return "Audio Only"
	case ModePractice:
		return "Practice Mode"
	}

	return string(m)
}

// Stream is a simulated capture stream.
type Stream struct {
	Video    bool
	Audio    bool
	released bool
}

// Close releases the devices. Closing twice is harmless.
func (s *Stream) Close() error {
	if s.released {
		return nil
	}

	s.released = true

	slog.Debug(
		"media released",
		slog.Bool("video", s.Video),
		slog.Bool("audio", s.Audio),
	)

	return nil
}

// Released reports whether the stream has been closed.
func (s *Stream) Released() bool {
	return s.released
}

// Static grants or refuses every request.
type Static struct {
	// Last is the most recently granted stream
	Last     *Stream
	Requests int
	Allow    bool
}

// Grant returns a Static that allows access.
func Grant() *Static {
	return &Static{Allow: true}
}

// Deny returns a Static that refuses access.
func Deny() *Static {
	return &Static{}
}

// RequestAccess implements session.MediaAccess.
func (s *Static) RequestAccess(
	ctx context.Context,
	video, audio bool,
) (session.Stream, error) {
	s.Requests++

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !s.Allow {
		return nil, session.ErrPermissionDenied
	}

	s.Last = &Stream{Video: video, Audio: audio}

	return s.Last, nil
}

// Consent grants access based on the answer the user gave to the permission
// dialog. Every answer is used for a single request, so a denied request needs
// a fresh answer before it is retried.
type Consent struct {
	answered bool
	allowed  bool
}

// Answer records the user's choice for the next request.
func (c *Consent) Answer(allowed bool) {
	c.answered = true
	c.allowed = allowed
}

// RequestAccess implements session.MediaAccess.
func (c *Consent) RequestAccess(
	ctx context.Context,
	video, audio bool,
) (session.Stream, error) {
	answered, allowed := c.answered, c.allowed
	c.answered, c.allowed = false, false

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// nothing to ask for in practice mode
	if !video && !audio {
		return &Stream{}, nil
	}

	if !answered || !allowed {
		return nil, session.ErrPermissionDenied
	}

	return &Stream{Video: video, Audio: audio}, nil
}
