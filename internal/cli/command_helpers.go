package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pluqqy/pluqqy-designer/internal/logging"
	"github.com/pluqqy/pluqqy-designer/pkg/codegen"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/layout"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
	logs        *logging.Provider
}

// NewCommandContext creates a new command context
func NewCommandContext() (*CommandContext, error) {
	return &CommandContext{
		ProjectPath: files.DesignerDir,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .designer directory found. Run 'designer init' first")
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		PrintWarning("could not read settings, using defaults: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// Logger returns a named logger configured from settings, with the
// --log-level and --log-format flags taking precedence
func (c *CommandContext) Logger(name string) logging.Logger {
	if c.logs == nil {
		settings := c.LoadSettingsWithDefault()
		cfg := logging.Config{
			Level:  firstSet(logLevel, settings.Logging.Level),
			Format: firstSet(logFormat, settings.Logging.Format),
		}
		provider, err := logging.NewProvider(cfg)
		if err != nil {
			PrintWarning("logging disabled: %v", err)
			return logging.NoOp()
		}
		c.logs = provider
	}
	return c.logs.GetLogger(name)
}

// LoadDocument reads a session and replays it into a layout document. The
// session's own grid size wins over settings.
func (c *CommandContext) LoadDocument(name string) (*models.Session, *layout.Document, error) {
	session, err := files.ReadSession(name)
	if err != nil {
		return nil, nil, err
	}

	doc, err := c.ReplaySession(session)
	if err != nil {
		return nil, nil, err
	}

	return session, doc, nil
}

// ReplaySession replays an in-memory session with the project's grid size
// and logger
func (c *CommandContext) ReplaySession(session *models.Session) (*layout.Document, error) {
	settings := c.LoadSettingsWithDefault()
	doc, err := layout.Replay(session,
		layout.WithGridSize(settings.Designer.GridSize),
		layout.WithLogger(c.Logger("layout")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to replay session %s: %w", session.Name, err)
	}
	return doc, nil
}

// GeneratorOptions builds the generator header for target from settings
func (c *CommandContext) GeneratorOptions(target codegen.Target) codegen.Options {
	settings := c.LoadSettingsWithDefault()
	opts := codegen.Options{
		Width:  settings.Codegen.WindowWidth,
		Height: settings.Codegen.WindowHeight,
	}
	if override, ok := settings.Codegen.Targets[string(target)]; ok {
		opts.WindowTitle = override.WindowTitle
		opts.ClassName = override.ClassName
	}
	return opts
}

// ResolveTargets expands a --target value into targets; "all" or empty
// selects every target
func ResolveTargets(value string) ([]codegen.Target, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return codegen.Targets, nil
	}

	var targets []codegen.Target
	seen := make(map[codegen.Target]bool)
	for _, part := range strings.Split(value, ",") {
		target, err := codegen.ParseTarget(part)
		if err != nil {
			return nil, err
		}
		if !seen[target] {
			seen[target] = true
			targets = append(targets, target)
		}
	}
	return targets, nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) == 0 {
		return fmt.Errorf("no editor configured")
	}

	editorCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}
