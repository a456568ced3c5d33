package codegen

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// TkinterGenerator emits a tk.Tk subclass with absolutely placed widgets
// (target B)
type TkinterGenerator struct {
	opts Options
}

func (g *TkinterGenerator) Target() Target        { return TargetTkinter }
func (g *TkinterGenerator) FileExtension() string { return TargetTkinter.FileExtension() }

func (g *TkinterGenerator) Generate(layout []models.WidgetPlacement) string {
	var output strings.Builder

	output.WriteString("import tkinter as tk\n\n\n")
	output.WriteString(fmt.Sprintf("class %s(tk.Tk):\n", g.opts.ClassName))
	output.WriteString("    def __init__(self):\n")
	output.WriteString("        super().__init__()\n")
	output.WriteString(fmt.Sprintf("        self.title('%s')\n", g.opts.WindowTitle))
	output.WriteString(fmt.Sprintf("        self.geometry('%dx%d')\n", g.opts.Width, g.opts.Height))

	names := newSnakeNamer()
	var handlers handlerSet

	for _, widget := range layout {
		rule, known := lookupRule(widget.Type, TargetTkinter)
		if !known {
			// Tk has no generic constructor to fall back on
			continue
		}
		field := "self." + names.next(widget.Type)

		args := []string{"self"}
		if rule.ctorArgs != "" {
			args = append(args, rule.ctorArgs)
		}
		switch rule.value {
		case valueText:
			args = append(args, fmt.Sprintf("text='%s'", widget.Value))
		case valueOptionVar:
			args = append(args, fmt.Sprintf("tk.StringVar(value='%s')", widget.Value), quotedChoices("'"))
		case valueProgressCaption:
			value := widget.Value
			if value == "" {
				value = "0"
			}
			args = append(args, fmt.Sprintf("text='progress: %s%%'", value))
		}
		if handler := clickHandler(widget, rule); handler != "" {
			args = append(args, "command=self."+handler)
			handlers.add(handler)
		}

		output.WriteString("\n")
		output.WriteString(fmt.Sprintf("        %s = %s(%s)\n", field, rule.class, strings.Join(args, ", ")))

		if widget.Value != "" {
			switch rule.value {
			case valueInsert:
				output.WriteString(fmt.Sprintf("        %s.insert(%s, '%s')\n", field, rule.insertAt, widget.Value))
			case valueNumber:
				output.WriteString(fmt.Sprintf("        %s.set(%s)\n", field, widget.Value))
			}
		}

		output.WriteString(fmt.Sprintf("        %s.place(x=%d, y=%d, width=%d, height=%d)\n", field, widget.X, widget.Y, widget.W, widget.H))
	}

	for _, handler := range handlers.names {
		output.WriteString("\n")
		output.WriteString(fmt.Sprintf("    def %s(self):\n", handler))
		output.WriteString("        pass\n")
	}

	output.WriteString("\n\nif __name__ == '__main__':\n")
	output.WriteString(fmt.Sprintf("    win = %s()\n", g.opts.ClassName))
	output.WriteString("    win.mainloop()\n")

	return output.String()
}
