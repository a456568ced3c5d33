package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pluqqy/pluqqy-designer/pkg/codegen"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// ValidateTarget validates a --target value (a letter, a name, a
// comma-separated list, or "all")
func ValidateTarget(value string) error {
	_, err := ResolveTargets(value)
	return err
}

// ValidateWidgetType checks a toolbox name. Unknown names are not an error
// for the layout model, which ignores them, so this only warns.
func ValidateWidgetType(name string) bool {
	if _, ok := models.ParseWidgetType(name); ok {
		return true
	}
	PrintWarning("unknown widget type %q will be ignored (known: %s)", name, strings.Join(widgetTypeNames(), ", "))
	return false
}

func widgetTypeNames() []string {
	names := make([]string, len(models.WidgetTypes))
	for i, wt := range models.WidgetTypes {
		names[i] = string(wt)
	}
	return names
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSessionName validates a session name
func ValidateSessionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name cannot be empty")
	}

	invalidChars := []string{"/", "\\", "..", "~", "$", "`"}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("session name contains invalid character: %s", char)
		}
	}

	return nil
}

// ParseGeometry parses an "x,y,w,h" flag value
func ParseGeometry(value string) (x, y, w, h int, err error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("invalid geometry %q (expected x,y,w,h)", value)
	}

	nums := make([]int, 4)
	for i, part := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil {
			return 0, 0, 0, 0, fmt.Errorf("invalid geometry %q: %q is not an integer", value, part)
		}
		nums[i] = n
	}

	return nums[0], nums[1], nums[2], nums[3], nil
}

// ParseBinding parses an "event=handler" flag value. A bare handler binds
// the clicked event; "event=" unbinds.
func ParseBinding(value string) (event, handler string, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", "", fmt.Errorf("binding cannot be empty")
	}

	if !strings.Contains(value, "=") {
		return models.EventClicked, value, nil
	}

	event, handler, _ = strings.Cut(value, "=")
	event = strings.TrimSpace(event)
	if event == "" {
		return "", "", fmt.Errorf("invalid binding %q: event name required", value)
	}
	return event, strings.TrimSpace(handler), nil
}

// TargetNames lists the accepted --target values for help text
func TargetNames() string {
	names := make([]string, len(codegen.Targets))
	for i, t := range codegen.Targets {
		names[i] = fmt.Sprintf("%s/%s", t.Letter(), t)
	}
	return strings.Join(names, ", ")
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
