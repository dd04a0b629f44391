package artifact

import "errors"

var (
	// ErrHandleReleased is returned when a payload is requested from a
	// handle that has already been revoked.
	ErrHandleReleased = errors.New("artifact handle has been released")
)
