package models

import "strings"

// WidgetType identifies a control that can be placed on the canvas
type WidgetType string

const (
	WidgetButton        WidgetType = "Button"
	WidgetLabel         WidgetType = "Label"
	WidgetTextInput     WidgetType = "TextInput"
	WidgetCheckbox      WidgetType = "Checkbox"
	WidgetDropdown      WidgetType = "Dropdown"
	WidgetSlider        WidgetType = "Slider"
	WidgetProgressBar   WidgetType = "ProgressBar"
	WidgetMultilineText WidgetType = "MultilineText"
)

// EventClicked is the only event the property panel can bind
const EventClicked = "clicked"

// DropdownPlaceholders are the choices every generated dropdown is seeded
// with. A dropdown value is an index into this list.
var DropdownPlaceholders = []string{"Option 1", "Option 2", "Option 3"}

const (
	DefaultWidgetWidth     = 120
	DefaultWidgetHeight    = 30
	DefaultMultilineHeight = 80
)

// WidgetTypes lists every placeable type in toolbox order
var WidgetTypes = []WidgetType{
	WidgetButton,
	WidgetLabel,
	WidgetTextInput,
	WidgetCheckbox,
	WidgetDropdown,
	WidgetSlider,
	WidgetProgressBar,
	WidgetMultilineText,
}

// toolboxAliases maps the Qt class names the toolbox uses as drag payloads
// onto the canonical types.
var toolboxAliases = map[string]WidgetType{
	"qpushbutton":  WidgetButton,
	"qlabel":       WidgetLabel,
	"qlineedit":    WidgetTextInput,
	"qcheckbox":    WidgetCheckbox,
	"qcombobox":    WidgetDropdown,
	"qslider":      WidgetSlider,
	"qprogressbar": WidgetProgressBar,
	"qtextedit":    WidgetMultilineText,
}

// ParseWidgetType resolves a toolbox entry to a known type.
// Unrecognized names report ok=false; callers treat that as "skip".
func ParseWidgetType(s string) (WidgetType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return "", false
	}
	for _, wt := range WidgetTypes {
		if strings.ToLower(string(wt)) == normalized {
			return wt, true
		}
	}
	if wt, ok := toolboxAliases[normalized]; ok {
		return wt, true
	}
	return "", false
}

// Known reports whether t is one of the enumerated widget types
func (t WidgetType) Known() bool {
	for _, wt := range WidgetTypes {
		if wt == t {
			return true
		}
	}
	return false
}

// DefaultSize returns the size a freshly dropped widget gets
func (t WidgetType) DefaultSize() (w, h int) {
	if t == WidgetMultilineText {
		return DefaultWidgetWidth, DefaultMultilineHeight
	}
	return DefaultWidgetWidth, DefaultWidgetHeight
}

// DefaultValue returns the caption a freshly dropped widget starts with
func (t WidgetType) DefaultValue() string {
	switch t {
	case WidgetButton:
		return "Button"
	case WidgetLabel:
		return "Label"
	case WidgetCheckbox:
		return "Checkbox"
	default:
		return ""
	}
}

// PlacementID is the opaque, stable identity of a placed widget
type PlacementID string

// Point is a canvas coordinate
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// WidgetPlacement is one control placed on the canvas
type WidgetPlacement struct {
	ID     PlacementID       `yaml:"id" json:"id"`
	Type   WidgetType        `yaml:"type" json:"type"`
	X      int               `yaml:"x" json:"x"`
	Y      int               `yaml:"y" json:"y"`
	W      int               `yaml:"w" json:"w"`
	H      int               `yaml:"h" json:"h"`
	Value  string            `yaml:"value,omitempty" json:"value,omitempty"`
	Events map[string]string `yaml:"events,omitempty" json:"events,omitempty"`
}

// Handler returns the handler bound to event, or "" when unbound
func (p WidgetPlacement) Handler(event string) string {
	if p.Events == nil {
		return ""
	}
	return p.Events[event]
}

// Clone returns a copy that shares no mutable state with p
func (p WidgetPlacement) Clone() WidgetPlacement {
	out := p
	if p.Events != nil {
		out.Events = make(map[string]string, len(p.Events))
		for k, v := range p.Events {
			out.Events[k] = v
		}
	}
	return out
}
