package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

func okButton() models.WidgetPlacement {
	return models.WidgetPlacement{
		ID: "w1", Type: models.WidgetButton,
		X: 10, Y: 20, W: 120, H: 30, Value: "OK",
	}
}

func fullLayout() []models.WidgetPlacement {
	return []models.WidgetPlacement{
		{Type: models.WidgetButton, X: 10, Y: 20, W: 120, H: 30, Value: "OK",
			Events: map[string]string{models.EventClicked: "on_ok"}},
		{Type: models.WidgetLabel, X: 10, Y: 60, W: 120, H: 30, Value: "Name"},
		{Type: models.WidgetTextInput, X: 140, Y: 60, W: 120, H: 30, Value: "guest"},
		{Type: models.WidgetCheckbox, X: 10, Y: 100, W: 120, H: 30, Value: "Remember",
			Events: map[string]string{models.EventClicked: "on_ok"}},
		{Type: models.WidgetDropdown, X: 10, Y: 140, W: 120, H: 30, Value: "1"},
		{Type: models.WidgetSlider, X: 10, Y: 180, W: 120, H: 30, Value: "25"},
		{Type: models.WidgetProgressBar, X: 10, Y: 220, W: 120, H: 30, Value: "42"},
		{Type: models.WidgetMultilineText, X: 10, Y: 260, W: 120, H: 80, Value: "notes"},
	}
}

func mustGenerator(t *testing.T, target Target) Generator {
	t.Helper()
	g, err := New(target, Options{})
	require.NoError(t, err)
	return g
}

func TestParseTarget(t *testing.T) {
	tests := map[string]Target{
		"A": TargetPySide, "pyside": TargetPySide,
		"b": TargetTkinter, "Tkinter": TargetTkinter,
		"C": TargetWinForms, "winforms": TargetWinForms,
	}
	for in, want := range tests {
		got, err := ParseTarget(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseTarget("D")
	assert.Error(t, err)
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "layout_pyside.py", FileName(TargetPySide))
	assert.Equal(t, "layout_tkinter.py", FileName(TargetTkinter))
	assert.Equal(t, "layout_winforms.cs", FileName(TargetWinForms))
	assert.Equal(t, "A", TargetPySide.Letter())
	assert.Equal(t, "C", TargetWinForms.Letter())
}

func TestNewUnknownTarget(t *testing.T) {
	_, err := New("qml", Options{})
	assert.Error(t, err)
}

func TestAllGenerators(t *testing.T) {
	gens := All(func(t Target) Options { return Options{WindowTitle: "Demo " + t.Letter()} })
	require.Len(t, gens, 3)
	for i, g := range gens {
		assert.Equal(t, Targets[i], g.Target())
		assert.Equal(t, Targets[i].FileExtension(), g.FileExtension())
		assert.Contains(t, g.Generate(nil), "Demo "+Targets[i].Letter())
	}
	assert.Len(t, All(nil), 3)
}

func TestPySideButton(t *testing.T) {
	out := mustGenerator(t, TargetPySide).Generate([]models.WidgetPlacement{okButton()})

	assert.Contains(t, out, "self.button_1 = QPushButton(self)")
	assert.Contains(t, out, "self.button_1.setGeometry(QRect(10, 20, 120, 30))")
	assert.Contains(t, out, "self.button_1.setText('OK')")
}

func TestPySideTypeDispatch(t *testing.T) {
	out := mustGenerator(t, TargetPySide).Generate(fullLayout())

	expected := []string{
		"self.text_input_1.setText('guest')",
		"self.checkbox_1.setText('Remember')",
		"self.dropdown_1.addItems(['Option 1', 'Option 2', 'Option 3'])",
		"self.dropdown_1.setCurrentIndex(1)",
		"self.slider_1 = QSlider(Qt.Horizontal, self)",
		"self.slider_1.setValue(25)",
		"self.progress_bar_1.setValue(42)",
		"self.multiline_text_1.setText('notes')",
		"self.button_1.clicked.connect(self.on_ok)",
		"self.checkbox_1.clicked.connect(self.on_ok)",
		"    def on_ok(self):\n        pass\n",
	}
	for _, e := range expected {
		assert.Contains(t, out, e)
	}
	assert.Equal(t, 1, strings.Count(out, "def on_ok"))
}

func TestPySideSkipsEmptyValue(t *testing.T) {
	layout := []models.WidgetPlacement{{Type: models.WidgetSlider, W: 120, H: 30}}
	out := mustGenerator(t, TargetPySide).Generate(layout)
	assert.NotContains(t, out, "setValue")
}

func TestTkinterTypeDispatch(t *testing.T) {
	out := mustGenerator(t, TargetTkinter).Generate(fullLayout())

	expected := []string{
		"self.button_1 = tk.Button(self, text='OK', command=self.on_ok)",
		"self.button_1.place(x=10, y=20, width=120, height=30)",
		"self.label_1 = tk.Label(self, text='Name')",
		"self.text_input_1 = tk.Entry(self)",
		"self.text_input_1.insert(0, 'guest')",
		"self.checkbox_1 = tk.Checkbutton(self, text='Remember', command=self.on_ok)",
		"self.dropdown_1 = tk.OptionMenu(self, tk.StringVar(value='1'), 'Option 1', 'Option 2', 'Option 3')",
		"self.slider_1 = tk.Scale(self, from_=0, to=100, orient='horizontal')",
		"self.slider_1.set(25)",
		"self.progress_bar_1 = tk.Label(self, text='progress: 42%')",
		"self.multiline_text_1 = tk.Text(self, height=4, width=30)",
		"self.multiline_text_1.insert('1.0', 'notes')",
		"self.multiline_text_1.place(x=10, y=260, width=120, height=80)",
	}
	for _, e := range expected {
		assert.Contains(t, out, e)
	}
	assert.Equal(t, len(fullLayout()), strings.Count(out, ".place("))
}

func TestTkinterProgressCaption(t *testing.T) {
	layout := []models.WidgetPlacement{{Type: models.WidgetProgressBar, W: 120, H: 30, Value: "42"}}
	out := mustGenerator(t, TargetTkinter).Generate(layout)
	assert.Contains(t, out, "progress: 42%")
}

func TestWinFormsTypeDispatch(t *testing.T) {
	out := mustGenerator(t, TargetWinForms).Generate(fullLayout())

	expected := []string{
		"var button1 = new Button();",
		"button1.SetBounds(10, 20, 120, 30);",
		"button1.Text = \"OK\";",
		"button1.Click += (sender, e) => on_ok();",
		"this.Controls.Add(button1);",
		"var textInput1 = new TextBox();",
		"var checkbox1 = new CheckBox();",
		"dropdown1.Items.AddRange(new object[] { \"Option 1\", \"Option 2\", \"Option 3\" });",
		"dropdown1.SelectedIndex = 1;",
		"var slider1 = new TrackBar();",
		"slider1.Maximum = 100;",
		"slider1.Value = 25;",
		"progressBar1.Value = 42;",
		"multilineText1.Multiline = true;",
		"multilineText1.Text = \"notes\";",
		"    private void on_ok()\n    {\n    }\n",
	}
	for _, e := range expected {
		assert.Contains(t, out, e)
	}
	assert.Equal(t, len(fullLayout()), strings.Count(out, "this.Controls.Add("))
}

func TestDuplicateTypesGetDistinctNames(t *testing.T) {
	layout := []models.WidgetPlacement{okButton(), okButton()}

	assert.Contains(t, mustGenerator(t, TargetPySide).Generate(layout), "self.button_2 = QPushButton(self)")
	assert.Contains(t, mustGenerator(t, TargetTkinter).Generate(layout), "self.button_2 = tk.Button(")
	assert.Contains(t, mustGenerator(t, TargetWinForms).Generate(layout), "var button2 = new Button();")
}

func TestEmptyLayoutSkeletons(t *testing.T) {
	skeletons := map[Target][]string{
		TargetPySide: {
			"class MainWindow(QWidget):",
			"self.setWindowTitle('PySide Layout')",
			"self.setGeometry(100, 100, 800, 600)",
			"app = QApplication([])",
			"app.exec()",
		},
		TargetTkinter: {
			"class MainWindow(tk.Tk):",
			"self.geometry('800x600')",
			"win.mainloop()",
		},
		TargetWinForms: {
			"public class MainForm : Form",
			"this.ClientSize = new System.Drawing.Size(800, 600);",
			"[STAThread]",
			"Application.Run(new MainForm());",
		},
	}

	for target, want := range skeletons {
		out := mustGenerator(t, target).Generate(nil)
		for _, line := range want {
			assert.Contains(t, out, line, target)
		}
		assert.NotContains(t, out, ".place(", target)
		assert.NotContains(t, out, "SetBounds", target)
		assert.NotContains(t, out, "QRect(0", target)
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	layout := fullLayout()
	for _, g := range All(nil) {
		assert.Equal(t, g.Generate(layout), g.Generate(layout), g.Target())
	}
}

func TestUnknownTypesAreTolerated(t *testing.T) {
	layout := []models.WidgetPlacement{
		{Type: "Spinner", X: 10, Y: 10, W: 50, H: 20, Value: "3",
			Events: map[string]string{models.EventClicked: "on_spin"}},
		okButton(),
	}

	pyside := mustGenerator(t, TargetPySide).Generate(layout)
	assert.Contains(t, pyside, "self.spinner_1 = Spinner(self)")
	assert.Contains(t, pyside, "self.spinner_1.setGeometry(QRect(10, 10, 50, 20))")
	assert.NotContains(t, pyside, "self.spinner_1.setText")
	assert.NotContains(t, pyside, "on_spin")

	tk := mustGenerator(t, TargetTkinter).Generate(layout)
	assert.NotContains(t, tk, "spinner")
	assert.Contains(t, tk, "self.button_1 = tk.Button(self, text='OK')")

	forms := mustGenerator(t, TargetWinForms).Generate(layout)
	assert.Contains(t, forms, "var spinner1 = new Spinner();")
	assert.Contains(t, forms, "this.Controls.Add(spinner1);")
	assert.NotContains(t, forms, "spinner1.Text")
}

func TestValuesAreInterpolatedLiterally(t *testing.T) {
	layout := []models.WidgetPlacement{{Type: models.WidgetDropdown, W: 120, H: 30, Value: "first"}}
	out := mustGenerator(t, TargetPySide).Generate(layout)
	assert.Contains(t, out, "setCurrentIndex(first)")
}

func TestOptionsOverrideHeader(t *testing.T) {
	g, err := New(TargetWinForms, Options{WindowTitle: "Login", ClassName: "LoginForm", Width: 400, Height: 300})
	require.NoError(t, err)

	out := g.Generate(nil)
	assert.Contains(t, out, "public class LoginForm : Form")
	assert.Contains(t, out, "this.Text = \"Login\";")
	assert.Contains(t, out, "new System.Drawing.Size(400, 300)")
	assert.Contains(t, out, "Application.Run(new LoginForm());")
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "progress_bar", snakeCase("ProgressBar"))
	assert.Equal(t, "q_push_button", snakeCase("QPushButton"))
	assert.Equal(t, "my_widget", snakeCase("my-widget"))
	assert.Equal(t, "widget", snakeCase("***"))
	assert.Equal(t, "w_3_d", snakeCase("3D"))
	assert.Equal(t, "multilineText", lowerCamel("MultilineText"))
	assert.Equal(t, "w3D", lowerCamel("3D"))
}

func TestReservedNames(t *testing.T) {
	layout := []models.WidgetPlacement{
		{Type: models.WidgetButton},
		{Type: models.WidgetButton},
		{Type: "Spinner"},
	}

	pyside := ReservedNames(TargetPySide, Options{}, layout)
	assert.Subset(t, pyside, []string{"class", "__init__", "show", "MainWindow", "button_1", "button_2", "spinner_1"})
	assert.NotContains(t, pyside, "void")

	// Tk skips unknown types, so no spinner variable exists there
	tk := ReservedNames(TargetTkinter, Options{}, layout)
	assert.Subset(t, tk, []string{"mainloop", "button_2"})
	assert.NotContains(t, tk, "spinner_1")

	forms := ReservedNames(TargetWinForms, Options{ClassName: "LoginForm"}, layout)
	assert.Subset(t, forms, []string{"void", "Text", "LoginForm", "button1", "spinner1"})
	assert.NotContains(t, forms, "MainForm")
	assert.IsIncreasing(t, forms)
}
