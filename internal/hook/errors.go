package hook

import "github.com/ayoisaiah/rehearse/internal/apperr"

var errParseCmd = &apperr.Error{
	Message: "unable to parse settings.cmd option",
}
