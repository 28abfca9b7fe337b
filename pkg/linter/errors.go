package linter

import "errors"

// Error definitions for linter package.
var (
	ErrProgramMissing = errors.New("program is required")
	ErrRulePanicked   = errors.New("rule panicked")
)
