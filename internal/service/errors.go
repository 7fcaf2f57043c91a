package service

import "errors"

var (
	// ErrCorridorNotFound means no corridor serves the requested
	// country pair.
	ErrCorridorNotFound = errors.New("corridor not found")
	// ErrRailNotFound means the corridor exists but does not offer the
	// requested rail.
	ErrRailNotFound = errors.New("rail not found")
)
