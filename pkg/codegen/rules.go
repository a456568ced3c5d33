package codegen

import "github.com/pluqqy/pluqqy-designer/pkg/models"

// valueStyle says how a widget's value reaches the generated program
type valueStyle int

const (
	valueNone valueStyle = iota
	valueText            // text property or setter
	valueIndex           // selected item index
	valueNumber          // numeric position
	valueInsert          // explicit insert call after construction (Tk entry and text)
	valueOptionVar       // Tk OptionMenu variable
	valueProgressCaption // Tk has no progress widget; render "progress: N%"
)

// emitRule is how one widget type is emitted for one target
type emitRule struct {
	class     string
	ctorArgs  string
	value     valueStyle
	clickable bool
	choices   bool
	insertAt  string
	props     []string
}

// widgetRule holds the per-target rules of a widget type
type widgetRule struct {
	pyside   emitRule
	tkinter  emitRule
	winforms emitRule
}

func (r widgetRule) forTarget(t Target) emitRule {
	switch t {
	case TargetPySide:
		return r.pyside
	case TargetTkinter:
		return r.tkinter
	default:
		return r.winforms
	}
}

// placeholderChoices seed every dropdown so an index value selects something
var placeholderChoices = models.DropdownPlaceholders

// widgetRules is the single dispatch table shared by all generators. Adding
// a widget type means adding one entry here.
var widgetRules = map[models.WidgetType]widgetRule{
	models.WidgetButton: {
		pyside:   emitRule{class: "QPushButton", value: valueText, clickable: true},
		tkinter:  emitRule{class: "tk.Button", value: valueText, clickable: true},
		winforms: emitRule{class: "Button", value: valueText, clickable: true},
	},
	models.WidgetLabel: {
		pyside:   emitRule{class: "QLabel", value: valueText},
		tkinter:  emitRule{class: "tk.Label", value: valueText},
		winforms: emitRule{class: "Label", value: valueText, clickable: true},
	},
	models.WidgetTextInput: {
		pyside:   emitRule{class: "QLineEdit", value: valueText},
		tkinter:  emitRule{class: "tk.Entry", value: valueInsert, insertAt: "0"},
		winforms: emitRule{class: "TextBox", value: valueText, clickable: true},
	},
	models.WidgetCheckbox: {
		pyside:   emitRule{class: "QCheckBox", value: valueText, clickable: true},
		tkinter:  emitRule{class: "tk.Checkbutton", value: valueText, clickable: true},
		winforms: emitRule{class: "CheckBox", value: valueText, clickable: true},
	},
	models.WidgetDropdown: {
		pyside:   emitRule{class: "QComboBox", value: valueIndex, choices: true},
		tkinter:  emitRule{class: "tk.OptionMenu", value: valueOptionVar, choices: true},
		winforms: emitRule{class: "ComboBox", value: valueIndex, choices: true, clickable: true},
	},
	models.WidgetSlider: {
		pyside:   emitRule{class: "QSlider", ctorArgs: "Qt.Horizontal, self", value: valueNumber},
		tkinter:  emitRule{class: "tk.Scale", ctorArgs: "from_=0, to=100, orient='horizontal'", value: valueNumber},
		winforms: emitRule{class: "TrackBar", value: valueNumber, clickable: true, props: []string{"Minimum = 0", "Maximum = 100"}},
	},
	models.WidgetProgressBar: {
		pyside:   emitRule{class: "QProgressBar", value: valueNumber},
		tkinter:  emitRule{class: "tk.Label", value: valueProgressCaption},
		winforms: emitRule{class: "ProgressBar", value: valueNumber, clickable: true},
	},
	models.WidgetMultilineText: {
		pyside:   emitRule{class: "QTextEdit", value: valueText},
		tkinter:  emitRule{class: "tk.Text", ctorArgs: "height=4, width=30", value: valueInsert, insertAt: "'1.0'"},
		winforms: emitRule{class: "TextBox", value: valueText, clickable: true, props: []string{"Multiline = true"}},
	},
}

// lookupRule returns the rule for wt on target; ok is false for types the
// table does not know.
func lookupRule(wt models.WidgetType, t Target) (emitRule, bool) {
	r, ok := widgetRules[wt]
	if !ok {
		return emitRule{}, false
	}
	return r.forTarget(t), true
}
