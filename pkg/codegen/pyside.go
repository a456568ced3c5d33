package codegen

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// PySideGenerator emits a PySide6 QWidget subclass (target A)
type PySideGenerator struct {
	opts Options
}

func (g *PySideGenerator) Target() Target        { return TargetPySide }
func (g *PySideGenerator) FileExtension() string { return TargetPySide.FileExtension() }

func (g *PySideGenerator) Generate(layout []models.WidgetPlacement) string {
	var output strings.Builder

	output.WriteString("from PySide6.QtWidgets import QApplication, QWidget, QPushButton, QLabel, QLineEdit, QCheckBox, QComboBox, QSlider, QProgressBar, QTextEdit\n")
	output.WriteString("from PySide6.QtCore import QRect, Qt\n\n\n")
	output.WriteString(fmt.Sprintf("class %s(QWidget):\n", g.opts.ClassName))
	output.WriteString("    def __init__(self):\n")
	output.WriteString("        super().__init__()\n")
	output.WriteString(fmt.Sprintf("        self.setWindowTitle('%s')\n", g.opts.WindowTitle))
	output.WriteString(fmt.Sprintf("        self.setGeometry(100, 100, %d, %d)\n", g.opts.Width, g.opts.Height))

	names := newSnakeNamer()
	var handlers handlerSet

	for _, widget := range layout {
		field := "self." + names.next(widget.Type)
		rule, known := lookupRule(widget.Type, TargetPySide)

		class := string(widget.Type)
		args := "self"
		if known {
			class = rule.class
			if rule.ctorArgs != "" {
				args = rule.ctorArgs
			}
		}

		output.WriteString("\n")
		output.WriteString(fmt.Sprintf("        %s = %s(%s)\n", field, class, args))
		output.WriteString(fmt.Sprintf("        %s.setGeometry(QRect(%d, %d, %d, %d))\n", field, widget.X, widget.Y, widget.W, widget.H))

		if !known {
			continue
		}

		if rule.choices {
			output.WriteString(fmt.Sprintf("        %s.addItems([%s])\n", field, quotedChoices("'")))
		}

		if widget.Value != "" {
			switch rule.value {
			case valueText:
				output.WriteString(fmt.Sprintf("        %s.setText('%s')\n", field, widget.Value))
			case valueIndex:
				output.WriteString(fmt.Sprintf("        %s.setCurrentIndex(%s)\n", field, widget.Value))
			case valueNumber:
				output.WriteString(fmt.Sprintf("        %s.setValue(%s)\n", field, widget.Value))
			}
		}

		if handler := clickHandler(widget, rule); handler != "" {
			output.WriteString(fmt.Sprintf("        %s.clicked.connect(self.%s)\n", field, handler))
			handlers.add(handler)
		}
	}

	for _, handler := range handlers.names {
		output.WriteString("\n")
		output.WriteString(fmt.Sprintf("    def %s(self):\n", handler))
		output.WriteString("        pass\n")
	}

	output.WriteString("\n\nif __name__ == '__main__':\n")
	output.WriteString("    app = QApplication([])\n")
	output.WriteString(fmt.Sprintf("    win = %s()\n", g.opts.ClassName))
	output.WriteString("    win.show()\n")
	output.WriteString("    app.exec()\n")

	return output.String()
}

func quotedChoices(quote string) string {
	quoted := make([]string, len(placeholderChoices))
	for i, c := range placeholderChoices {
		quoted[i] = quote + c + quote
	}
	return strings.Join(quoted, ", ")
}
