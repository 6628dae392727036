package catalog

import "github.com/ayoisaiah/rehearse/internal/apperr"

var (
	// ErrUnknownTemplate is returned for a template id that does not exist.
	ErrUnknownTemplate = &apperr.Error{
		Message: "unknown interview template: %s",
	}

	// ErrInterviewNotFound is returned for an interview id that does not exist.
	ErrInterviewNotFound = &apperr.Error{
		Message: "interview %s not found",
	}

	errDecodeCatalog = &apperr.Error{
		Message: "decoding interview catalog failed",
	}

	errDuplicateID = &apperr.Error{
		Message: "duplicate %s id: %s",
	}

	errEmptyTemplate = &apperr.Error{
		Message: "template %s has no questions",
	}

	errBadLineTime = &apperr.Error{
		Message: "interview %s has a transcript line with an invalid time: %q",
	}
)
