package loader

import "errors"

// Error definitions for loader package.
var (
	// Project file errors.
	ErrProjectFileNotFound = errors.New("project file not found")
	ErrProjectFileParse    = errors.New("failed to parse project file")

	// Source errors.
	ErrSourceRead  = errors.New("failed to read source file")
	ErrSourceParse = errors.New("failed to parse source file")

	// Template errors.
	ErrTemplateNotFound = errors.New("template file not found")
	ErrTemplateRead     = errors.New("failed to read template file")

	// Pattern errors.
	ErrInvalidPattern = errors.New("invalid pattern")
)
