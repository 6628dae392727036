package review

import "github.com/ayoisaiah/rehearse/internal/apperr"

var (
	errRouteNotFound = &apperr.Error{
		Message: "route not found",
	}

	errBadSince = &apperr.Error{
		Message: "invalid since value %q",
	}

	errListen = &apperr.Error{
		Message: "unable to listen on %s",
	}
)
