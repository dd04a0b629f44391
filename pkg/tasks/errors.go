package tasks

import "errors"

var (
	ErrUnknownTask   = errors.New("unknown task id")
	ErrInvalidStatus = errors.New("status is not in the allowed set")
)
