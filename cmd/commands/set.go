package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

var (
	setGeometry string
	setValue    string
	setBindings []string
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <session> <ref>",
		Short: "Edit a placed widget's geometry, value, or events",
		Long: `Record property panel edits for the widget placed under <ref>.

Geometry is taken literally and is not snapped. Values are stored as text;
Dropdown values are item indexes and Slider/ProgressBar values are 0-100.
A binding without an event name binds 'clicked'; 'event=' removes one.

Examples:
  # Move and resize
  designer set login ok --geometry 10,20,120,30

  # Change the caption and wire a click handler
  designer set login ok --value OK --bind clicked=on_ok

  # Remove the handler again
  designer set login ok --bind clicked=`,
		Args:    cobra.ExactArgs(2),
		PreRunE: requireProject,
		RunE:    runSet,
	}

	cmd.Flags().StringVarP(&setGeometry, "geometry", "g", "", "New geometry as x,y,w,h")
	cmd.Flags().StringVarP(&setValue, "value", "v", "", "New widget value")
	cmd.Flags().StringArrayVarP(&setBindings, "bind", "b", nil, "Event binding as event=handler (repeatable)")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	name, ref := args[0], args[1]

	var events []models.SessionEvent

	if setGeometry != "" {
		x, y, w, h, err := cli.ParseGeometry(setGeometry)
		if err != nil {
			return err
		}
		events = append(events, models.SessionEvent{
			Geometry: &models.GeometryAction{Ref: ref, X: x, Y: y, W: w, H: h},
		})
	}

	if cmd.Flags().Changed("value") {
		events = append(events, models.SessionEvent{
			Value: &models.ValueAction{Ref: ref, Value: setValue},
		})
	}

	for _, binding := range setBindings {
		event, handler, err := cli.ParseBinding(binding)
		if err != nil {
			return err
		}
		events = append(events, models.SessionEvent{
			Bind: &models.BindAction{Ref: ref, Event: event, Handler: handler},
		})
	}

	if len(events) == 0 {
		return fmt.Errorf("nothing to set: use --geometry, --value, or --bind")
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	if _, _, err := appendChecked(ctx, name, events...); err != nil {
		return err
	}

	cli.PrintSuccess("Recorded %d edit(s) for '%s'", len(events), ref)
	return nil
}
