package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/examples"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
)

var (
	examplesList  bool
	examplesForce bool
)

// NewExamplesCommand creates the examples command
func NewExamplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples [category]",
		Short: "Add example layout sessions to your project",
		Long: `Add ready-made layout sessions to .designer/sessions.

Example sessions are ordinary session scripts named with an 'example-'
prefix. Show, preview or export them like any other session.

Categories:
  forms    - login and contact forms (default)
  panels   - settings and progress panels
  all      - every category`,
		Example: `  # Add the form examples
  designer examples

  # List everything without installing
  designer examples all --list

  # Overwrite previously installed examples
  designer examples panels --force`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    runExamples,
	}

	cmd.Flags().BoolVarP(&examplesList, "list", "l", false, "List available examples without installing")
	cmd.Flags().BoolVarP(&examplesForce, "force", "f", false, "Overwrite existing example sessions")

	return cmd
}

func runExamples(cmd *cobra.Command, args []string) error {
	category := "forms"
	if len(args) > 0 {
		category = args[0]
	}

	valid := append(append([]string{}, examples.Categories...), "all")
	if !cli.Contains(valid, category) {
		return fmt.Errorf("invalid category '%s'. Valid categories: %v", category, valid)
	}

	sets := examples.GetExamples(category)
	if examplesList {
		return listExamples(cmd, sets)
	}
	return installExamples(sets, examplesForce)
}

func listExamples(cmd *cobra.Command, sets []examples.ExampleSet) error {
	out := cmd.OutOrStdout()
	for _, set := range sets {
		fmt.Fprintf(out, "[%s] %s\n", set.Category, set.Name)
		fmt.Fprintf(out, "   %s\n", set.Description)
		for _, example := range set.Sessions {
			fmt.Fprintf(out, "   • %s (%d events): %s\n", example.Name, len(example.Events), example.Description)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func installExamples(sets []examples.ExampleSet, force bool) error {
	installed, skipped := 0, 0

	for _, set := range sets {
		for _, example := range set.Sessions {
			ok, err := examples.InstallSession(example, force)
			if err != nil {
				if errors.Is(err, files.ErrSessionExists) {
					skipped++
					cli.PrintWarning("Skipped %s (already exists, use --force to overwrite)", example.Name)
					continue
				}
				return fmt.Errorf("failed to install example %s: %w", example.Name, err)
			}
			if ok {
				installed++
				cli.PrintSuccess("Installed %s", example.Name)
			}
		}
	}

	if skipped > 0 {
		cli.PrintInfo("Installed %d example session(s), skipped %d", installed, skipped)
	} else {
		cli.PrintInfo("Installed %d example session(s)", installed)
	}
	return nil
}
