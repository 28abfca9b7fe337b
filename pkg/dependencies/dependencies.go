// Package dependencies groups the collaborators shared by the loader, the
// linter and the command line, with a fluent API to override them.
package dependencies

import (
	"errors"

	"github.com/kevinphelps/nglint/pkg/config"
	"github.com/kevinphelps/nglint/pkg/fs"
	"github.com/kevinphelps/nglint/pkg/loader"
	"github.com/kevinphelps/nglint/pkg/logger"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrOutputMissing = errors.New("output dependency is required but not set")

	ErrLoaderProviderMissing = errors.New("loader provider dependency is required but not set")
)

// LoaderProvider builds the loader of a run once the configuration is known.
type LoaderProvider func(params loader.NewLoaderParams) loader.Loader

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS     fs.FS
	Config config.Manager
	// Logger receives verbose diagnostics.
	Logger logger.Logger
	// Output receives the failure report.
	Output logger.Logger

	LoaderProvider LoaderProvider
}

// New creates a new Dependencies instance with sensible defaults.
// Config is left nil as it depends on the --config flag.
func New() *Dependencies {
	return &Dependencies{
		FS:             fs.NewFS(),
		Logger:         logger.NewNoopLogger(),
		Output:         logger.NewDefaultLogger(),
		LoaderProvider: loader.New,
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the diagnostics logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithOutput sets the report logger and returns the instance for chaining.
func (d *Dependencies) WithOutput(output logger.Logger) *Dependencies {
	d.Output = output
	return d
}

// WithLoaderProvider sets the loader provider and returns the instance for chaining.
func (d *Dependencies) WithLoaderProvider(lp LoaderProvider) *Dependencies {
	d.LoaderProvider = lp
	return d
}

type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns the
// error of the first missing one.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Output, ErrOutputMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}

	// a nil func stored in an interface is not a nil interface
	if d.LoaderProvider == nil {
		return ErrLoaderProviderMissing
	}
	return nil
}
