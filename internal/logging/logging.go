// Package logging defines the logger contract shared by the designer
// packages and a go-logger backed provider for the CLI.
package logging

// Logger is the minimal structured logger used across packages.
// Arguments after msg are alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithFields(fields map[string]any) Logger
}

// NoOp returns a logger that discards everything. Library packages default
// to it so callers that do not care about diagnostics pass nothing.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ Logger = noopLogger{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) Logger {
	return n
}

// OrNoOp guards against nil loggers passed through options
func OrNoOp(logger Logger) Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}
