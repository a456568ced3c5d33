package models

// Settings represents the application configuration
type Settings struct {
	Designer DesignerSettings `yaml:"designer"`
	Codegen  CodegenSettings  `yaml:"codegen"`
	Output   OutputSettings   `yaml:"output"`
	Logging  LoggingSettings  `yaml:"logging"`
}

// DesignerSettings controls the canvas model
type DesignerSettings struct {
	GridSize int `yaml:"grid_size"`
}

// CodegenSettings controls the header of generated programs
type CodegenSettings struct {
	WindowWidth  int                       `yaml:"window_width"`
	WindowHeight int                       `yaml:"window_height"`
	Targets      map[string]TargetSettings `yaml:"targets,omitempty"`
}

// TargetSettings overrides the generated header for a single target
type TargetSettings struct {
	WindowTitle string `yaml:"window_title,omitempty"`
	ClassName   string `yaml:"class_name,omitempty"`
}

// OutputSettings controls where exports land
type OutputSettings struct {
	ExportPath string `yaml:"export_path"`
	Strict     bool   `yaml:"strict"`
}

// LoggingSettings configures the diagnostic logger
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Designer: DesignerSettings{
			GridSize: 10,
		},
		Codegen: CodegenSettings{
			WindowWidth:  800,
			WindowHeight: 600,
		},
		Output: OutputSettings{
			ExportPath: ".designer/exports",
			Strict:     false,
		},
		Logging: LoggingSettings{
			Level:  "warn",
			Format: "console",
		},
	}
}

// ApplyDefaults fills zero values left by a partial settings file
func (s *Settings) ApplyDefaults() {
	defaults := DefaultSettings()
	if s.Designer.GridSize == 0 {
		s.Designer.GridSize = defaults.Designer.GridSize
	}
	if s.Codegen.WindowWidth == 0 {
		s.Codegen.WindowWidth = defaults.Codegen.WindowWidth
	}
	if s.Codegen.WindowHeight == 0 {
		s.Codegen.WindowHeight = defaults.Codegen.WindowHeight
	}
	if s.Output.ExportPath == "" {
		s.Output.ExportPath = defaults.Output.ExportPath
	}
	if s.Logging.Level == "" {
		s.Logging.Level = defaults.Logging.Level
	}
	if s.Logging.Format == "" {
		s.Logging.Format = defaults.Logging.Format
	}
}
