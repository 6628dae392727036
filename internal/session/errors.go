package session

import "github.com/ayoisaiah/rehearse/internal/apperr"

var (
	// ErrPermissionDenied is returned by Start when camera or microphone access
	// is refused. The session stays idle and Start may be retried.
	ErrPermissionDenied = &apperr.Error{
		Message: "camera or microphone access was denied",
	}

	// ErrInvalidState is returned when an action is not valid in the current
	// status of the session.
	ErrInvalidState = &apperr.Error{
		Message: "cannot %s while the session is %s",
	}

	ErrNoQuestions = &apperr.Error{
		Message: "an interview needs at least one question",
	}

	ErrQuestionOutOfRange = &apperr.Error{
		Message: "question %d does not exist (the interview has %d questions)",
	}
)
