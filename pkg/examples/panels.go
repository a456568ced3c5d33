package examples

import "github.com/pluqqy/pluqqy-designer/pkg/models"

func getPanelExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Panels",
			Description: "Settings and status panels built from sliders and progress bars",
			Sessions: []ExampleSession{
				settingsPanel(),
				downloadPanel(),
			},
		},
	}
}

func settingsPanel() ExampleSession {
	s := &script{}
	s.place("volumeLabel", models.WidgetLabel, 20, 20).
		value("volumeLabel", "Volume").
		place("volume", models.WidgetSlider, 150, 20).
		geometry("volume", 150, 20, 240, 30).
		value("volume", "70").
		place("brightnessLabel", models.WidgetLabel, 20, 60).
		value("brightnessLabel", "Brightness").
		place("brightness", models.WidgetSlider, 150, 60).
		geometry("brightness", 150, 60, 240, 30).
		value("brightness", "40").
		place("darkMode", models.WidgetCheckbox, 150, 100).
		value("darkMode", "Dark mode").
		place("apply", models.WidgetButton, 270, 150).
		value("apply", "Apply").
		bind("apply", "on_apply")

	return ExampleSession{
		Name:        "example-settings",
		Description: "Two sliders, a checkbox and an apply button",
		GridSize:    10,
		Events:      s.events,
	}
}

func downloadPanel() ExampleSession {
	s := &script{}
	s.place("status", models.WidgetLabel, 20, 20).
		geometry("status", 20, 20, 360, 30).
		value("status", "Downloading update...").
		place("progress", models.WidgetProgressBar, 20, 60).
		geometry("progress", 20, 60, 360, 30).
		value("progress", "35").
		place("cancel", models.WidgetButton, 260, 110).
		value("cancel", "Cancel").
		bind("cancel", "on_cancel")

	return ExampleSession{
		Name:        "example-download",
		Description: "Status label over a progress bar with a cancel button",
		GridSize:    10,
		Events:      s.events,
	}
}
