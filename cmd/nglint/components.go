package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/kevinphelps/nglint/cmd/nglint/internal/cli"
	"github.com/kevinphelps/nglint/pkg/program"
	"github.com/kevinphelps/nglint/pkg/rules/unusedbinding"
	"github.com/spf13/cobra"
)

var selectorStyle = lipgloss.NewStyle().Bold(true)

func createComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the components found in the project",
		Long: `List every component of the project with its selector, location, template
and bindings, as seen by the rules.

Examples:
  nglint components
  nglint components -p ./src/tsconfig.app.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}

			l, err := cli.NewLinter(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			prog, err := l.Load(cmd.Context(), cfg.Project)
			if err != nil {
				return fmt.Errorf("failed to load project: %w", err)
			}

			if len(prog.Components) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No components found.")
				return nil
			}

			displayComponents(cmd.OutOrStdout(), prog, cfg.Color)
			return nil
		},
	}
}

// displayComponents prints one block per component.
func displayComponents(w io.Writer, prog *program.Program, color bool) {
	for _, c := range prog.Components {
		selector := c.Selector
		if selector == "" {
			selector = "(no selector)"
		}
		fmt.Fprintf(w, "%s %s (%s)\n", render(selectorStyle, color, selector), c.Class.Name, c.Class.Pos())

		if c.Template != nil {
			fmt.Fprintf(w, "  template: %s\n", c.Template.Source)
		}

		for m := range c.Class.PropertyMembers() {
			if b, ok := unusedbinding.BindingOf(m); ok {
				fmt.Fprintf(w, "  %s %s (%s)\n", b.Type, b.Name, m.Pos())
			}
		}
	}
}
