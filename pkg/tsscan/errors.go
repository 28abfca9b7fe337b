package tsscan

import "errors"

// Error definitions for tsscan package.
var (
	// ErrUnterminatedClass is returned when a class body has no closing brace.
	ErrUnterminatedClass = errors.New("unterminated class declaration")
)
