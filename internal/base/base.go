// Package base provides functionality shared by the loader and the linter.
package base

import (
	"fmt"

	"github.com/kevinphelps/nglint/pkg/fs"
	"github.com/kevinphelps/nglint/pkg/logger"
)

// Base carries the file system and the diagnostics logger.
type Base struct {
	FS      fs.FS
	Logger  logger.Logger
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	FS      fs.FS
	Logger  logger.Logger
	Verbose bool
}

// NewBase creates a new Base instance. A nil logger is replaced by the noop logger.
func NewBase(params NewBaseParams) *Base {
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &Base{
		FS:      params.FS,
		Logger:  params.Logger,
		verbose: params.Verbose,
	}
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (b *Base) IsVerbose() bool {
	return b.verbose
}
