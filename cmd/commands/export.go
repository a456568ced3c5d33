package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/codegen"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/layout"
)

var (
	exportTarget      string
	exportDir         string
	exportToStdout    bool
	exportToClipboard bool
	exportStrict      bool
	exportWatch       bool
)

// clipboardWriter is swapped out in tests
var clipboardWriter = clipboard.WriteAll

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <session>",
		Short: "Generate runnable UI code from a session",
		Long: `Replay a session and generate a complete program for one or more targets.

Targets:
  A, pyside    - PySide6 (layout_pyside.py)
  B, tkinter   - Tkinter (layout_tkinter.py)
  C, winforms  - WinForms (layout_winforms.cs)
  all          - every target (default)

Files are written to the export directory from settings (.designer/exports
by default) and overwrite earlier exports. All targets are generated from
the same snapshot of the layout.

Examples:
  # Export every target
  designer export login

  # Export WinForms only, into ./out
  designer export login --target C --dir out

  # Print the Tkinter program
  designer export login -t B --stdout

  # Copy the PySide program to the clipboard
  designer export login -t A --clipboard

  # Refuse to export malformed values
  designer export login --strict

  # Re-export whenever the session changes
  designer export login --watch`,
		Args:    cobra.ExactArgs(1),
		PreRunE: preRunExport,
		RunE:    runExport,
	}

	cmd.Flags().StringVarP(&exportTarget, "target", "t", "all", "Target(s): "+cli.TargetNames()+", or all")
	cmd.Flags().StringVarP(&exportDir, "dir", "d", "", "Export directory (default: settings export_path)")
	cmd.Flags().BoolVar(&exportToStdout, "stdout", false, "Print the program instead of writing a file")
	cmd.Flags().BoolVar(&exportToClipboard, "clipboard", false, "Copy the program to the clipboard")
	cmd.Flags().BoolVar(&exportStrict, "strict", false, "Validate the layout before generating (default: settings strict)")
	cmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "Re-export when the session file changes")

	return cmd
}

// exportRequest is one resolved export invocation
type exportRequest struct {
	session   string
	targets   []codegen.Target
	dir       string
	stdout    bool
	clipboard bool
	strict    bool
}

// preRunExport rejects a bad --target before the project is touched
func preRunExport(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateTarget(exportTarget); err != nil {
		return err
	}
	return requireProject(cmd, args)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	settings := ctx.LoadSettingsWithDefault()

	targets, err := cli.ResolveTargets(exportTarget)
	if err != nil {
		return err
	}

	req := exportRequest{
		session:   args[0],
		targets:   targets,
		dir:       exportDir,
		stdout:    exportToStdout,
		clipboard: exportToClipboard,
		strict:    settings.Output.Strict,
	}
	if req.dir == "" {
		req.dir = settings.Output.ExportPath
	}
	if cmd.Flags().Changed("strict") {
		req.strict = exportStrict
	}

	if (req.stdout || req.clipboard) && len(req.targets) != 1 {
		return fmt.Errorf("--stdout and --clipboard need a single --target (got %d)", len(req.targets))
	}
	if req.stdout && exportWatch {
		return fmt.Errorf("--watch cannot be combined with --stdout")
	}

	if err := exportOnce(cmd, ctx, req); err != nil {
		return err
	}

	if !exportWatch {
		return nil
	}

	session, err := files.ReadSession(req.session)
	if err != nil {
		return err
	}

	watchCtx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := ctx.Logger("export.watch")
	cli.PrintInfo("Watching %s for changes (Ctrl+C to stop)", session.Path)

	return files.Watch(watchCtx, session.Path, files.DefaultDebounce, func() {
		logger.Debug("session changed", "path", session.Path)
		if err := exportOnce(cmd, ctx, req); err != nil {
			cli.PrintError("%v", err)
		}
	})
}

// exportOnce replays the session and runs every requested generator over a
// single snapshot
func exportOnce(cmd *cobra.Command, ctx *cli.CommandContext, req exportRequest) error {
	logger := ctx.Logger("export")

	_, doc, err := ctx.LoadDocument(req.session)
	if err != nil {
		return err
	}
	snapshot := doc.Export()

	if req.strict {
		if err := layout.ValidateForExport(snapshot, ctx.GeneratorOptions, req.targets...); err != nil {
			return fmt.Errorf("layout is not exportable: %w", err)
		}
	}

	for _, target := range req.targets {
		gen, err := codegen.New(target, ctx.GeneratorOptions(target))
		if err != nil {
			return err
		}
		content := gen.Generate(snapshot)
		logger.Debug("generated", "target", target, "widgets", len(snapshot), "bytes", len(content))

		switch {
		case req.stdout:
			fmt.Fprint(cmd.OutOrStdout(), content)

		case req.clipboard:
			if err := clipboardWriter(content); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			cli.PrintSuccess("Copied %s program (%s) to clipboard", target, target.Letter())

		default:
			path, err := files.WriteExport(req.dir, target, content)
			if err != nil {
				logger.Error("export write failed", "target", target, "error", err)
				return err
			}
			cli.PrintSuccess("Exported %s (%s) to %s", target, target.Letter(), path)
		}
	}

	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
