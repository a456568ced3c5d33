package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
)

// NewRenameCommand creates the rename command
func NewRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <session> <new-name>",
		Short: "Rename a layout session",
		Long: `Rename a session and move it to the matching file.

Examples:
  designer rename draft "Login Form"`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"mv"},
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateSessionName(args[1]); err != nil {
				return err
			}
			if err := files.RenameSession(args[0], args[1]); err != nil {
				return err
			}
			cli.PrintSuccess("Renamed session '%s' to '%s'", args[0], args[1])
			return nil
		},
	}

	return cmd
}
