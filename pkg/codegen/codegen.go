// Package codegen turns a layout snapshot into a complete, runnable program
// for one of three UI ecosystems.
//
// Every generator makes a single pass over the placements in document order
// and emits a program skeleton even for an empty layout. Widget values are
// interpolated literally; run layout.ValidateForExport first when the values
// come from an untrusted source.
package codegen

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// Target names an output ecosystem
type Target string

const (
	TargetPySide   Target = "pyside"
	TargetTkinter  Target = "tkinter"
	TargetWinForms Target = "winforms"
)

// Targets lists every target in A, B, C order
var Targets = []Target{TargetPySide, TargetTkinter, TargetWinForms}

// ParseTarget accepts a target name or its letter (A, B, C)
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "pyside", "pyside6", "qt":
		return TargetPySide, nil
	case "b", "tkinter", "tk":
		return TargetTkinter, nil
	case "c", "winforms", "winform", "forms":
		return TargetWinForms, nil
	default:
		return "", fmt.Errorf("unknown target %q (must be: A/pyside, B/tkinter, or C/winforms)", s)
	}
}

// Letter returns the short A/B/C name
func (t Target) Letter() string {
	switch t {
	case TargetPySide:
		return "A"
	case TargetTkinter:
		return "B"
	case TargetWinForms:
		return "C"
	default:
		return "?"
	}
}

// FileExtension returns the source extension of the target language
func (t Target) FileExtension() string {
	if t == TargetWinForms {
		return "cs"
	}
	return "py"
}

// FileName returns the conventional export name, e.g. layout_pyside.py
func FileName(t Target) string {
	return fmt.Sprintf("layout_%s.%s", t, t.FileExtension())
}

// Generator renders a layout snapshot as program text
type Generator interface {
	Target() Target
	FileExtension() string
	Generate(layout []models.WidgetPlacement) string
}

// Options customizes the generated window. Zero fields take the target's
// defaults.
type Options struct {
	WindowTitle string
	ClassName   string
	Width       int
	Height      int
}

func (o Options) withDefaults(t Target) Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.WindowTitle == "" {
		switch t {
		case TargetPySide:
			o.WindowTitle = "PySide Layout"
		case TargetTkinter:
			o.WindowTitle = "Tkinter Layout"
		case TargetWinForms:
			o.WindowTitle = "WinForms Layout"
		}
	}
	if o.ClassName == "" {
		if t == TargetWinForms {
			o.ClassName = "MainForm"
		} else {
			o.ClassName = "MainWindow"
		}
	}
	return o
}

// New returns the generator for target
func New(target Target, opts Options) (Generator, error) {
	opts = opts.withDefaults(target)
	switch target {
	case TargetPySide:
		return &PySideGenerator{opts: opts}, nil
	case TargetTkinter:
		return &TkinterGenerator{opts: opts}, nil
	case TargetWinForms:
		return &WinFormsGenerator{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown target %q", target)
	}
}

// All returns one generator per target, in A, B, C order. optsFor may be
// nil.
func All(optsFor func(Target) Options) []Generator {
	gens := make([]Generator, 0, len(Targets))
	for _, t := range Targets {
		var opts Options
		if optsFor != nil {
			opts = optsFor(t)
		}
		g, _ := New(t, opts)
		gens = append(gens, g)
	}
	return gens
}
