package cue

import "github.com/ayoisaiah/rehearse/internal/apperr"

var errSpeaker = &apperr.Error{
	Message: "unable to open the audio device",
}
