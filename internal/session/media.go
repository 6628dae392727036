package session

import "context"

// Stream is a held camera and/or microphone capture. Closing it releases the
// devices.
type Stream interface {
	Close() error
}

// MediaAccess grants capture streams. A refused request returns an error
// matching ErrPermissionDenied.
type MediaAccess interface {
	RequestAccess(ctx context.Context, video, audio bool) (Stream, error)
}
