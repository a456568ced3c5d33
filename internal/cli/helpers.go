package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Global flags (set from the cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
	logLevel    string
	logFormat   string
)

// Message streams; tests swap them for buffers
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// SetLoggingFlags records --log-level and --log-format; empty values defer
// to settings.yaml
func SetLoggingFlags(level, format string) {
	logLevel = level
	logFormat = format
}

// messageKind decides the prefix and stream of a user-facing line.
// Diagnostics go through internal/logging instead.
type messageKind struct {
	symbol  string
	label   string
	toErr   bool
	silence bool // dropped under --quiet
}

var (
	successMsg = messageKind{symbol: "✓", label: "OK", silence: true}
	infoMsg    = messageKind{symbol: "·", label: "INFO", silence: true}
	warningMsg = messageKind{symbol: "!", label: "WARN", toErr: true}
	errorMsg   = messageKind{symbol: "✗", label: "ERROR", toErr: true}
)

func printMessage(kind messageKind, format string, args ...any) {
	if kind.silence && quiet {
		return
	}
	w := stdout
	if kind.toErr {
		w = stderr
	}
	prefix := kind.symbol
	if noColor {
		prefix = kind.label + ":"
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// PrintSuccess reports a completed step, e.g. a written export
func PrintSuccess(format string, args ...any) { printMessage(successMsg, format, args...) }

// PrintInfo reports progress or hints
func PrintInfo(format string, args ...any) { printMessage(infoMsg, format, args...) }

// PrintWarning reports something skipped or ignored; never silenced
func PrintWarning(format string, args ...any) { printMessage(warningMsg, format, args...) }

// PrintError reports a failed command; never silenced
func PrintError(format string, args ...any) { printMessage(errorMsg, format, args...) }

// Confirm asks a yes/no question before a destructive step such as deleting
// a session. --yes answers it; an empty reply takes defaultYes.
func Confirm(question string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	choices := "y/N"
	if defaultYes {
		choices = "Y/n"
	}
	fmt.Fprintf(stdout, "%s (%s) ", question, choices)

	reply, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && (err != io.EOF || reply == "") {
		return false, fmt.Errorf("no answer to %q: %w", question, err)
	}

	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
