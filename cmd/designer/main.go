package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-designer/cmd/commands"
	"github.com/pluqqy/pluqqy-designer/internal/cli"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quietFlag     bool
	noColorFlag   bool
	yesFlag       bool
	outputFlag    string
	logLevelFlag  string
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "designer",
	Short: "Grid-snapped UI layouts exported as PySide, Tkinter, and WinForms code",
	Long: `Designer records widget layouts as replayable session scripts and exports
them as complete, runnable programs for PySide6 (A), Tkinter (B), and
WinForms (C). Everything is stored as plain YAML under .designer/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quietFlag, noColorFlag, yesFlag)
		cli.SetLoggingFlags(logLevelFlag, logFormatFlag)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Designer project",
	Long:  `Creates the .designer folder structure and a default settings.yaml in the current directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintInfo("Initializing Designer project in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		if _, err := os.Stat(filepath.Join(files.DesignerDir, files.SettingsFile)); os.IsNotExist(err) {
			if err := files.WriteSettings(models.DefaultSettings()); err != nil {
				return err
			}
		}

		cli.PrintSuccess("Created .designer folder structure")
		cli.PrintInfo("Run 'designer new <session>' to start a layout.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Designer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Designer version %s\n", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&noColorFlag, "no-color", false, "Disable symbols and color in output")
	flags.BoolVarP(&yesFlag, "yes", "y", false, "Answer yes to confirmations")
	flags.StringVarP(&outputFlag, "output", "o", "text", "Output format (text, json, yaml)")
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error (default: settings)")
	flags.StringVar(&logFormatFlag, "log-format", "", "Log format: console or json (default: settings)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(
		commands.NewNewCommand(),
		commands.NewPlaceCommand(),
		commands.NewSetCommand(),
		commands.NewListCommand(),
		commands.NewShowCommand(),
		commands.NewExportCommand(),
		commands.NewPreviewCommand(),
		commands.NewEditCommand(),
		commands.NewRenameCommand(),
		commands.NewDeleteCommand(),
		commands.NewExamplesCommand(),
		commands.NewSearchCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
