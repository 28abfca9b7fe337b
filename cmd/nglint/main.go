// Package main provides the command-line interface of nglint.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/kevinphelps/nglint/cmd/nglint/internal/cli"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nglint",
		Short: "nglint - Angular component linter",
		Long: `Static analysis for Angular projects.

nglint loads the components of a TypeScript project and reports problems
such as inputs and outputs that no template ever binds to.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLint(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except failures and errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVarP(&cli.ProjectPath, "project", "p", "",
		"Project file listing the sources to lint (default from config: ./tsconfig.json)")

	rootCmd.AddCommand(createInitCmd(), createComponentsCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errFailuresFound) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
