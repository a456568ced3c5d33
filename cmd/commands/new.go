package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/layout"
)

var (
	newGridSize int
)

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <session>",
		Short: "Create an empty layout session",
		Long: `Create an empty session script under .designer/sessions.

A session records widget drops and property edits in order. Replaying it
rebuilds the layout document that every export is generated from.

Examples:
  # Create a session using the project grid size
  designer new login

  # Pin the session to a 5px grid
  designer new login --grid 5`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runNew,
	}

	cmd.Flags().IntVar(&newGridSize, "grid", 0, "Grid size for this session (default: settings)")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := cli.ValidateSessionName(name); err != nil {
		return err
	}

	if cmd.Flags().Changed("grid") {
		if _, err := layout.NewGrid(newGridSize); err != nil {
			return err
		}
	}

	session, err := files.CreateSession(name, newGridSize)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	cli.PrintSuccess("Created session '%s' at %s", session.Name, session.Path)
	return nil
}
