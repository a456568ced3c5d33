package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <session>",
		Short: "Open a session script in $EDITOR",
		Long: `Open a session script in $EDITOR (vi when unset), then check that it
still replays.

Examples:
  designer edit login
  EDITOR="code --wait" designer edit login`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runEdit,
	}

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	session, err := files.ReadSession(args[0])
	if err != nil {
		return err
	}

	if err := cli.NewEditorLauncher().OpenFile(session.Path); err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	if _, doc, err := ctx.LoadDocument(session.Path); err != nil {
		cli.PrintWarning("session no longer replays: %v", err)
	} else {
		cli.PrintSuccess("Session '%s' has %d widget(s)", session.Name, doc.Len())
	}

	return nil
}
