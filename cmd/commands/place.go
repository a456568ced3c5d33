package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

var (
	placeRef string
)

// NewPlaceCommand creates the place command
func NewPlaceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place <session> <type> <x> <y>",
		Short: "Drop a widget onto the canvas",
		Long: `Record a widget drop at an unsnapped canvas position.

The position snaps to the session grid and the widget gets the default size
and caption of its type. Unknown types are ignored by the layout, and edits
made through their ref are ignored with them.

Widget types:
  Button, Label, TextInput, Checkbox, Dropdown, Slider, ProgressBar, MultilineText

Examples:
  # Drop a button near (13, 27); it lands on (10, 30) with a 10px grid
  designer place login Button 13 27 --ref ok

  # Let the ref be derived from the type (label1, label2, ...)
  designer place login Label 10 60`,
		Args:    cobra.ExactArgs(4),
		PreRunE: requireProject,
		RunE:    runPlace,
	}

	cmd.Flags().StringVar(&placeRef, "ref", "", "Name used by later 'set' edits (default: derived from type)")

	return cmd
}

func runPlace(cmd *cobra.Command, args []string) error {
	name, widgetType := args[0], args[1]

	x, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid x coordinate %q", args[2])
	}
	y, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid y coordinate %q", args[3])
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	known := cli.ValidateWidgetType(widgetType)

	ref := placeRef
	if ref == "" {
		session, err := files.ReadSession(name)
		if err != nil {
			return err
		}
		ref = nextRef(session, widgetType)
	}

	event := models.SessionEvent{
		Ref:   ref,
		Place: &models.PlaceAction{Type: widgetType, X: x, Y: y},
	}
	_, doc, err := appendChecked(ctx, name, event)
	if err != nil {
		return err
	}

	if !known {
		cli.PrintInfo("Recorded ignored drop of '%s' as '%s'", widgetType, ref)
		return nil
	}

	layout := doc.Export()
	placed := layout[len(layout)-1]
	cli.PrintSuccess("Placed %s '%s' at (%d, %d) size %dx%d", placed.Type, ref, placed.X, placed.Y, placed.W, placed.H)
	return nil
}
