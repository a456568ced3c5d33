package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
	"github.com/pluqqy/pluqqy-designer/pkg/tui"
)

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <session>",
		Short: "Preview a session's canvas and generated code",
		Long: `Open an interactive preview with the canvas on the left and the program
generated for the selected target on the right.

Keys:
  tab     switch pane
  ] / [   next / previous target
  r       replay the session again
  y       copy the shown program
  q       quit

Examples:
  designer preview login`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runPreview,
	}

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	settings := ctx.LoadSettingsWithDefault()

	// Fail fast when the session does not exist or no longer replays
	session, _, err := ctx.LoadDocument(args[0])
	if err != nil {
		return err
	}

	load := func() ([]models.WidgetPlacement, error) {
		_, doc, err := ctx.LoadDocument(session.Path)
		if err != nil {
			return nil, err
		}
		return doc.Export(), nil
	}

	model := tui.NewPreviewModel(session.Name, load,
		tui.WithCanvasSize(settings.Codegen.WindowWidth, settings.Codegen.WindowHeight),
		tui.WithGeneratorOptions(ctx.GeneratorOptions),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the preview: %w", err)
	}
	return nil
}
