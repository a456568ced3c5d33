package codegen

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// WinFormsGenerator emits a C# Form plus Program entry point (target C)
type WinFormsGenerator struct {
	opts Options
}

func (g *WinFormsGenerator) Target() Target        { return TargetWinForms }
func (g *WinFormsGenerator) FileExtension() string { return TargetWinForms.FileExtension() }

func (g *WinFormsGenerator) Generate(layout []models.WidgetPlacement) string {
	var output strings.Builder

	output.WriteString("using System;\nusing System.Windows.Forms;\n\n")
	output.WriteString(fmt.Sprintf("public class %s : Form\n", g.opts.ClassName))
	output.WriteString("{\n")
	output.WriteString(fmt.Sprintf("    public %s()\n", g.opts.ClassName))
	output.WriteString("    {\n")
	output.WriteString(fmt.Sprintf("        this.Text = \"%s\";\n", g.opts.WindowTitle))
	output.WriteString(fmt.Sprintf("        this.ClientSize = new System.Drawing.Size(%d, %d);\n", g.opts.Width, g.opts.Height))

	names := newCamelNamer()
	var handlers handlerSet

	for _, widget := range layout {
		name := names.next(widget.Type)
		rule, known := lookupRule(widget.Type, TargetWinForms)

		class := string(widget.Type)
		if known {
			class = rule.class
		}

		output.WriteString("\n")
		output.WriteString(fmt.Sprintf("        var %s = new %s();\n", name, class))
		output.WriteString(fmt.Sprintf("        %s.SetBounds(%d, %d, %d, %d);\n", name, widget.X, widget.Y, widget.W, widget.H))

		if known {
			for _, prop := range rule.props {
				output.WriteString(fmt.Sprintf("        %s.%s;\n", name, prop))
			}
			if rule.choices {
				output.WriteString(fmt.Sprintf("        %s.Items.AddRange(new object[] { %s });\n", name, quotedChoices("\"")))
			}
			if widget.Value != "" {
				switch rule.value {
				case valueText:
					output.WriteString(fmt.Sprintf("        %s.Text = \"%s\";\n", name, widget.Value))
				case valueIndex:
					output.WriteString(fmt.Sprintf("        %s.SelectedIndex = %s;\n", name, widget.Value))
				case valueNumber:
					output.WriteString(fmt.Sprintf("        %s.Value = %s;\n", name, widget.Value))
				}
			}
			if handler := clickHandler(widget, rule); handler != "" {
				output.WriteString(fmt.Sprintf("        %s.Click += (sender, e) => %s();\n", name, handler))
				handlers.add(handler)
			}
		}

		output.WriteString(fmt.Sprintf("        this.Controls.Add(%s);\n", name))
	}

	output.WriteString("    }\n")

	for _, handler := range handlers.names {
		output.WriteString("\n")
		output.WriteString(fmt.Sprintf("    private void %s()\n", handler))
		output.WriteString("    {\n")
		output.WriteString("    }\n")
	}

	output.WriteString("}\n\n")
	output.WriteString("public static class Program\n")
	output.WriteString("{\n")
	output.WriteString("    [STAThread]\n")
	output.WriteString("    public static void Main()\n")
	output.WriteString("    {\n")
	output.WriteString("        Application.EnableVisualStyles();\n")
	output.WriteString("        Application.SetCompatibleTextRenderingDefault(false);\n")
	output.WriteString(fmt.Sprintf("        Application.Run(new %s());\n", g.opts.ClassName))
	output.WriteString("    }\n")
	output.WriteString("}\n")

	return output.String()
}
