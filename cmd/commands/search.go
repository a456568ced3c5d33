package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
	"github.com/pluqqy/pluqqy-designer/pkg/search"
)

// SearchResult is the structured output of the search command
type SearchResult struct {
	Query   string      `json:"query" yaml:"query"`
	Matches []SearchHit `json:"matches" yaml:"matches"`
	Count   int         `json:"count" yaml:"count"`
	Skipped []string    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// SearchHit is a matching widget and the session it lives in
type SearchHit struct {
	Session  string                 `json:"session" yaml:"session"`
	Position int                    `json:"position" yaml:"position"`
	Widget   models.WidgetPlacement `json:"widget" yaml:"widget"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find widgets across sessions",
		Long: `Replay every session and list the widgets matching a query.

Fields:
  type:<widget>      widget type, toolbox aliases accepted (type:QLineEdit)
  value:<text>       value contains text
  handler:<name>     bound handler
  event:<name>       has a binding for the event
  session:<text>     session name contains text

Bare words match the value, type or handler. Conditions are ANDed unless
joined with OR, and NOT negates the next condition. Matching ignores case.

Examples:
  designer search "type:button NOT event:clicked"
  designer search 'value:"Sign in" OR handler:on_submit'
  designer search progressbar -o json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runSearch,
	}

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	names, err := files.ListSessions()
	if err != nil {
		return err
	}

	result := SearchResult{Query: args[0], Matches: []SearchHit{}}
	engine := search.NewEngine()
	for _, filename := range names {
		session, doc, err := ctx.LoadDocument(filename)
		if err != nil {
			result.Skipped = append(result.Skipped, filename)
			continue
		}
		engine.Add(session.Name, doc.Export())
	}

	items, err := engine.Search(args[0])
	if err != nil {
		return err
	}
	for _, item := range items {
		result.Matches = append(result.Matches, SearchHit{
			Session:  item.Session,
			Position: item.Position,
			Widget:   item.Placement,
		})
	}
	result.Count = len(result.Matches)

	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if len(result.Skipped) > 0 {
		cli.PrintWarning("Skipped sessions that do not replay: %s", strings.Join(result.Skipped, ", "))
	}

	if result.Count == 0 {
		cli.PrintInfo("No widgets match %q", result.Query)
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("SESSION", "#", "TYPE", "VALUE", "EVENTS")
	for _, hit := range result.Matches {
		table.Row(
			hit.Session,
			strconv.Itoa(hit.Position),
			string(hit.Widget.Type),
			cli.TruncateString(strconv.Quote(hit.Widget.Value), 24),
			cli.FormatEvents(hit.Widget.Events),
		)
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d match(es)\n", result.Count)
	return nil
}
