package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/kevinphelps/nglint/cmd/nglint/internal/cli"
	"github.com/spf13/cobra"
)

// errFailuresFound ends a run that reported failures with a non-zero exit code.
var errFailuresFound = errors.New("failures found")

var (
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func runLint(cmd *cobra.Command) error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}

	l, err := cli.NewLinter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	rep, err := l.Run(cmd.Context(), cfg.Project)
	if err != nil {
		return err
	}

	failed := rep.Report()
	if !cli.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), summary(failed, cfg.Color))
	}
	if failed {
		return errFailuresFound
	}
	return nil
}

// summary returns the closing line of a run.
func summary(failed, color bool) string {
	if failed {
		return render(failureStyle, color, "Please fix the above 'nglint' failures.")
	}
	return render(successStyle, color, "No failures found by 'nglint'.")
}

func render(style lipgloss.Style, color bool, s string) string {
	if !color {
		return s
	}
	return style.Render(s)
}
