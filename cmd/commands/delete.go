package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
)

var (
	deleteForce bool
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <session>",
		Short: "Delete a layout session",
		Long: `Permanently delete a session script. Exported programs are kept.

Examples:
  # Delete with confirmation
  designer delete login

  # Delete without confirmation
  designer delete login --force`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"rm"},
		PreRunE: requireProject,
		RunE:    runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Force deletion without confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	session, err := files.ReadSession(name)
	if err != nil {
		return err
	}

	if !deleteForce {
		confirmed, err := cli.Confirm(fmt.Sprintf("Delete session '%s' (%d events)?", session.Name, len(session.Events)), false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	if err := files.DeleteSession(name); err != nil {
		return err
	}

	cli.PrintSuccess("Deleted session '%s'", session.Name)
	return nil
}
