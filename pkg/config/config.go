// Package config loads and stores the nglint configuration file.
package config

import (
	"fmt"
	"runtime"
)

// Config represents the application configuration.
type Config struct {
	// Project is the tsconfig-style file listing the sources to lint.
	Project string `yaml:"project"`
	// Exclude lists glob patterns, relative to the project directory, of
	// sources that are never loaded.
	Exclude []string `yaml:"exclude"`
	// Concurrency bounds parallel source parsing. Zero means one worker per CPU.
	Concurrency int `yaml:"concurrency"`
	// Color enables styled output.
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Project:     "./tsconfig.json",
		Exclude:     []string{"**/node_modules/**", "**/*.spec.ts"},
		Concurrency: 0,
		Color:       true,
	}
}

// Workers returns the effective number of parsing workers.
func (c Config) Workers() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.NumCPU()
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.Project == "" {
		return ErrProjectEmpty
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidConcurrency, c.Concurrency)
	}

	for i, pattern := range c.Exclude {
		if pattern == "" {
			return fmt.Errorf("%w: exclude[%d]", ErrEmptyPattern, i)
		}
	}

	return nil
}
