// Package status shares the state of a running interview with other
// processes through a small JSON file.
package status

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/ayoisaiah/rehearse/internal/osutil"
	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/timeutil"
)

// StaleAfter is how long a status file stays valid without being rewritten.
const StaleAfter = 5 * time.Second

// Status is a snapshot of the interview room.
type Status struct {
	UpdatedAt       time.Time `json:"updated_at"`
	SessionID       string    `json:"session_id"`
	Title           string    `json:"title"`
	State           string    `json:"state"`
	Question        int       `json:"question"`
	Total           int       `json:"total"`
	Elapsed         int       `json:"elapsed"`
	QuestionElapsed int       `json:"question_elapsed"`
	Flagged         int       `json:"flagged"`
	Muted           bool      `json:"muted"`
}

// FromSession builds a Status for a session snapshot.
func FromSession(s session.Session, title string, total int, now time.Time) Status {
	return Status{
		UpdatedAt:       now,
		SessionID:       s.ID,
		Title:           title,
		State:           s.Status.String(),
		Question:        s.QuestionIndex + 1,
		Total:           total,
		Elapsed:         s.Elapsed,
		QuestionElapsed: s.QuestionElapsed,
		Flagged:         len(s.Flagged),
		Muted:           s.Muted,
	}
}

// Write replaces the status file at path.
func Write(path string, s Status) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := f.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(f)

	if _, err = writer.Write(b); err != nil {
		return err
	}

	return writer.Flush()
}

// Read loads the status file at path. A missing file yields nil without an
// error.
func Read(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errCorruptStatus.Wrap(err)
	}

	return &s, nil
}

// Remove deletes the status file. A missing file is not an error.
func Remove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

// Stale reports whether the file has not been refreshed recently.
func (s *Status) Stale(now time.Time) bool {
	return now.Sub(s.UpdatedAt) > StaleAfter
}

// String renders the status as a one-line summary.
func (s *Status) String() string {
	return fmt.Sprintf(
		"[%s %d/%d] %s: %s (question %s)",
		s.State,
		s.Question,
		s.Total,
		s.Title,
		timeutil.Clock(s.Elapsed),
		timeutil.Clock(s.QuestionElapsed),
	)
}
