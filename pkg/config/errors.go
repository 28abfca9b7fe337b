package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigExists    = errors.New("configuration file already exists, use --force to overwrite")

	// Configuration validation errors.
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrProjectEmpty       = errors.New("project cannot be empty")
	ErrInvalidConcurrency = errors.New("concurrency cannot be negative")
	ErrEmptyPattern       = errors.New("exclude patterns cannot be empty")
)
