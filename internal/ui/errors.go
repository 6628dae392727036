package ui

import "github.com/ayoisaiah/rehearse/internal/apperr"

var errRenderTable = &apperr.Error{
	Message: "unable to render table",
}
