package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// ShowResult is the structured form of a replayed session
type ShowResult struct {
	Name     string                   `json:"name" yaml:"name"`
	GridSize int                      `json:"grid_size" yaml:"grid_size"`
	Widgets  []models.WidgetPlacement `json:"widgets" yaml:"widgets"`
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <session>",
		Short: "Replay a session and print its layout",
		Long: `Replay a session and print the resulting placements in document order,
which is also the order every generator emits them in.

Examples:
  # Show as a table
  designer show login

  # Dump the snapshot the generators receive
  designer show login -o yaml`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	session, doc, err := ctx.LoadDocument(args[0])
	if err != nil {
		return err
	}

	result := ShowResult{
		Name:     session.Name,
		GridSize: doc.GridSize(),
		Widgets:  doc.Export(),
	}

	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s (grid %d)\n\n", result.Name, result.GridSize)

	if len(result.Widgets) == 0 {
		fmt.Fprintln(out, "No widgets placed.")
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("#", "TYPE", "X", "Y", "W", "H", "VALUE", "EVENTS", "ID")
	for i, w := range result.Widgets {
		table.Row(
			strconv.Itoa(i+1),
			string(w.Type),
			strconv.Itoa(w.X),
			strconv.Itoa(w.Y),
			strconv.Itoa(w.W),
			strconv.Itoa(w.H),
			cli.TruncateString(strconv.Quote(w.Value), 24),
			cli.FormatEvents(w.Events),
			shortID(w.ID),
		)
	}
	table.Flush()

	return nil
}

func shortID(id models.PlacementID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}
