package examples

import "github.com/pluqqy/pluqqy-designer/pkg/models"

func getFormExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Forms",
			Description: "Input forms with labels, text fields and a submit button",
			Sessions: []ExampleSession{
				loginForm(),
				contactForm(),
			},
		},
	}
}

func loginForm() ExampleSession {
	s := &script{}
	s.place("title", models.WidgetLabel, 20, 20).
		value("title", "Sign in").
		place("userLabel", models.WidgetLabel, 20, 70).
		value("userLabel", "Username").
		place("user", models.WidgetTextInput, 150, 70).
		geometry("user", 150, 70, 200, 30).
		place("passLabel", models.WidgetLabel, 20, 110).
		value("passLabel", "Password").
		place("pass", models.WidgetTextInput, 150, 110).
		geometry("pass", 150, 110, 200, 30).
		place("remember", models.WidgetCheckbox, 150, 150).
		value("remember", "Remember me").
		place("submit", models.WidgetButton, 230, 200).
		value("submit", "Sign in").
		bind("submit", "on_sign_in")

	return ExampleSession{
		Name:        "example-login",
		Description: "Username and password fields with a bound sign-in button",
		GridSize:    10,
		Events:      s.events,
	}
}

func contactForm() ExampleSession {
	s := &script{}
	s.place("nameLabel", models.WidgetLabel, 20, 20).
		value("nameLabel", "Name").
		place("name", models.WidgetTextInput, 140, 20).
		geometry("name", 140, 20, 260, 30).
		place("topicLabel", models.WidgetLabel, 20, 60).
		value("topicLabel", "Topic").
		place("topic", models.WidgetDropdown, 140, 60).
		place("message", models.WidgetMultilineText, 20, 100).
		geometry("message", 20, 100, 380, 160).
		place("send", models.WidgetButton, 280, 280).
		value("send", "Send").
		bind("send", "on_send")

	return ExampleSession{
		Name:        "example-contact",
		Description: "Contact form with a topic dropdown and a message box",
		GridSize:    20,
		Events:      s.events,
	}
}
