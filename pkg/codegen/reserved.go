package codegen

import (
	"sort"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

var pythonKeywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
}

var csharpKeywords = []string{
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch",
	"char", "checked", "class", "const", "continue", "decimal", "default",
	"delegate", "do", "double", "else", "enum", "event", "explicit",
	"extern", "false", "finally", "fixed", "float", "for", "foreach",
	"goto", "if", "implicit", "in", "int", "interface", "internal", "is",
	"lock", "long", "namespace", "new", "null", "object", "operator",
	"out", "override", "params", "private", "protected", "public",
	"readonly", "ref", "return", "sbyte", "sealed", "short", "sizeof",
	"stackalloc", "static", "string", "struct", "switch", "this", "throw",
	"true", "try", "typeof", "uint", "ulong", "unchecked", "unsafe",
	"ushort", "using", "virtual", "void", "volatile", "while",
}

// Members of the window class that the generated program itself uses. A
// handler with one of these names would replace or shadow them.
var windowMembers = map[Target][]string{
	TargetPySide:   {"__init__", "setWindowTitle", "setGeometry", "show"},
	TargetTkinter:  {"__init__", "title", "geometry", "mainloop"},
	TargetWinForms: {"Text", "ClientSize", "Controls"},
}

// ReservedNames lists the identifiers a clicked handler cannot take in the
// program generated for layout: language keywords, the window class name,
// members the program calls on the window, and the widget variable names.
// The result is sorted.
func ReservedNames(t Target, opts Options, layout []models.WidgetPlacement) []string {
	opts = opts.withDefaults(t)

	set := map[string]bool{opts.ClassName: true}
	keywords := pythonKeywords
	if t == TargetWinForms {
		keywords = csharpKeywords
	}
	for _, k := range keywords {
		set[k] = true
	}
	for _, m := range windowMembers[t] {
		set[m] = true
	}

	names := newSnakeNamer()
	if t == TargetWinForms {
		names = newCamelNamer()
	}
	for _, widget := range layout {
		if _, known := lookupRule(widget.Type, t); !known && t == TargetTkinter {
			continue
		}
		set[names.next(widget.Type)] = true
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
