// Package session defines mock interview sessions and the controller that
// drives them
package session

import (
	"maps"
	"slices"
	"time"
)

// Status is the recording status of a session.
type Status int

const (
	Idle Status = iota
	Recording
	Paused
	Ended
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	}

	return "unknown"
}

// Session is one practice interview attempt. Only the Controller mutates it;
// everyone else works with copies returned by Controller.Snapshot.
type Session struct {
	StartedAt time.Time        `json:"started_at"`
	EndedAt   time.Time        `json:"ended_at"`
	Flagged   map[int]struct{} `json:"-"`
	ID        string           `json:"id"`
	Notes     string           `json:"notes"`
	// Elapsed is the number of recorded seconds in the session
	Elapsed int `json:"elapsed"`
	// QuestionElapsed is the number of recorded seconds spent on the current
	// question. It goes back to zero whenever QuestionIndex changes.
	QuestionElapsed int    `json:"question_elapsed"`
	QuestionIndex   int    `json:"question_index"`
	Status          Status `json:"status"`
	Muted           bool   `json:"muted"`
	CameraOff       bool   `json:"camera_off"`
}

// IsFlagged reports whether the question at index i is marked for review.
func (s Session) IsFlagged(i int) bool {
	_, ok := s.Flagged[i]
	return ok
}

// FlaggedIndices returns the flagged question indices in ascending order.
func (s Session) FlaggedIndices() []int {
	return slices.Sorted(maps.Keys(s.Flagged))
}

func (s *Session) clone() Session {
	c := *s
	c.Flagged = maps.Clone(s.Flagged)

	if c.Flagged == nil {
		c.Flagged = make(map[int]struct{})
	}

	return c
}
