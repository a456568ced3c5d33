package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single session in the list
type ListItem struct {
	Name     string `json:"name" yaml:"name"`
	Filename string `json:"filename" yaml:"filename"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Events   int    `json:"events" yaml:"events"`
	Widgets  int    `json:"widgets" yaml:"widgets"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

var (
	listShowPaths bool
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List layout sessions",
		Long: `List the sessions in the current project with their event and widget
counts. Sessions that no longer replay are listed with the error.

Examples:
  # List sessions
  designer list

  # List as JSON
  designer list -o json

  # Show file paths
  designer list --paths`,
		Args:    cobra.NoArgs,
		Aliases: []string{"ls"},
		PreRunE: requireProject,
		RunE:    runList,
	}

	cmd.Flags().BoolVar(&listShowPaths, "paths", false, "Show file paths")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	result := ListResult{Items: []ListItem{}}
	for _, filename := range names {
		item := ListItem{
			Name:     files.ExtractDisplayName(filename),
			Filename: filename,
		}
		if listShowPaths {
			item.Path = filepath.Join(files.DesignerDir, files.SessionsDir, filename)
		}

		session, doc, err := ctx.LoadDocument(filename)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Name = session.Name
			item.Events = len(session.Events)
			item.Widgets = doc.Len()
		}
		result.Items = append(result.Items, item)
	}
	result.Count = len(result.Items)

	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if result.Count == 0 {
		cli.PrintInfo("No sessions found. Create one with 'designer new <session>'.")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	columns := []string{"NAME", "FILE", "EVENTS", "WIDGETS"}
	if listShowPaths {
		columns = append(columns, "PATH")
	}
	table.Header(columns...)

	for _, item := range result.Items {
		widgets := strconv.Itoa(item.Widgets)
		if item.Error != "" {
			widgets = "error"
		}
		row := []string{item.Name, item.Filename, strconv.Itoa(item.Events), widgets}
		if listShowPaths {
			row = append(row, item.Path)
		}
		table.Row(row...)
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d session(s)\n", result.Count)
	return nil
}
