package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrInvalidPattern is returned for malformed glob patterns.
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrHomeDir is returned when the home directory cannot be determined.
	ErrHomeDir = errors.New("failed to determine home directory")
)
