package app

import "github.com/ayoisaiah/rehearse/internal/apperr"

var (
	errMissingID = &apperr.Error{
		Message: "an interview id is required (see 'rehearse list')",
	}

	errCompareArgs = &apperr.Error{
		Message: "compare needs exactly two interview ids, got %d",
	}

	errRunRoom = &apperr.Error{
		Message: "the interview room exited unexpectedly",
	}

	errRunProcessing = &apperr.Error{
		Message: "processing the interview failed",
	}

	errEditConfig = &apperr.Error{
		Message: "unable to open %s in %s",
	}
)
