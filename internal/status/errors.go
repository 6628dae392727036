package status

import "github.com/ayoisaiah/rehearse/internal/apperr"

var errCorruptStatus = &apperr.Error{
	Message: "status file is corrupt",
}
