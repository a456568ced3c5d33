package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/layout"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// requireProject is the PreRunE shared by commands that work inside a project
func requireProject(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	return ctx.ValidateProject()
}

// appendChecked appends events to a session and saves it only if the result
// still replays cleanly
func appendChecked(ctx *cli.CommandContext, name string, events ...models.SessionEvent) (*models.Session, *layout.Document, error) {
	session, err := files.ReadSession(name)
	if err != nil {
		return nil, nil, err
	}

	session.Events = append(session.Events, events...)

	doc, err := ctx.ReplaySession(session)
	if err != nil {
		return nil, nil, err
	}

	if err := files.WriteSession(session); err != nil {
		return nil, nil, err
	}

	return session, doc, nil
}

// nextRef derives a ref such as "button3" for a placement added without one
func nextRef(session *models.Session, widgetType string) string {
	base := strings.ToLower(strings.TrimSpace(widgetType))
	if wt, ok := models.ParseWidgetType(widgetType); ok {
		base = strings.ToLower(string(wt))
	}

	used := make(map[string]bool)
	for _, ev := range session.Events {
		if ev.Ref != "" {
			used[ev.Ref] = true
		}
	}

	for n := 1; ; n++ {
		ref := fmt.Sprintf("%s%d", base, n)
		if !used[ref] {
			return ref
		}
	}
}

// outputFormat reads the persistent -o flag, defaulting to text
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		return "text", nil
	}
	if err := cli.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
