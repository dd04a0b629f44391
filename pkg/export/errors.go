package export

import "errors"

var (
	ErrEmptyName   = errors.New("artifact name is required")
	ErrUnknownKind = errors.New("unknown artifact kind")
	ErrNoArtifact  = errors.New("backend produced no artifact")
)
