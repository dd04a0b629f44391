package finance

import "errors"

var (
	// ErrInvalidConfig rejects non-positive market parameters before any
	// network call is made.
	ErrInvalidConfig = errors.New("all market parameters must be positive")

	// ErrSaveInProgress rejects a save while an earlier one awaits
	// acknowledgement.
	ErrSaveInProgress = errors.New("a save is already in progress")
)
