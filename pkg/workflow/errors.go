package workflow

import "errors"

var (
	// ErrBusy rejects a submit while an earlier run is still in flight.
	ErrBusy = errors.New("a workflow run is already in progress")

	// ErrNoFile rejects a submit without a selected image.
	ErrNoFile = errors.New("no image file selected")

	errMissingTargets = errors.New("analysis reported infections but returned no target coordinates")
)
