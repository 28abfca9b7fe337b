// Package cli provides the shared flags and constructors of the nglint commands.
package cli

import (
	"io"
	"os"

	"github.com/kevinphelps/nglint/pkg/config"
	"github.com/kevinphelps/nglint/pkg/dependencies"
	"github.com/kevinphelps/nglint/pkg/fs"
	"github.com/kevinphelps/nglint/pkg/linter"
	"github.com/kevinphelps/nglint/pkg/logger"
)

var (
	// Quiet suppresses everything but the failure listing and errors.
	Quiet bool
	// Verbose enables diagnostics on stderr.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// ProjectPath overrides the configured project file.
	ProjectPath string
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(fs.NewFS(), ConfigPath)
}

// LoadConfig loads the configuration, falling back to the defaults when no file exists.
func LoadConfig() (config.Config, error) {
	cfg, err := NewConfigManager().GetConfigWithFallback()
	if err != nil {
		return config.Config{}, err
	}
	if ProjectPath != "" {
		cfg.Project = ProjectPath
	}
	return cfg, nil
}

// NewLinter creates a Linter writing its failure listing to out.
func NewLinter(out io.Writer) (linter.Linter, error) {
	deps := dependencies.New().
		WithConfig(NewConfigManager()).
		WithOutput(logger.NewWriterLogger(out))

	verbose := Verbose && !Quiet
	if verbose {
		deps = deps.WithLogger(logger.NewWriterLogger(os.Stderr))
	}

	return linter.New(linter.NewLinterParams{
		Dependencies: deps,
		Verbose:      verbose,
	})
}
