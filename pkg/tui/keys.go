package tui

import "github.com/charmbracelet/bubbles/key"

type previewKeyMap struct {
	quit       key.Binding
	switchPane key.Binding
	nextTarget key.Binding
	prevTarget key.Binding
	reload     key.Binding
	copyCode   key.Binding
	scrollUp   key.Binding
	scrollDown key.Binding
	toggleHelp key.Binding
}

func newPreviewKeyMap() previewKeyMap {
	return previewKeyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		switchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		nextTarget: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "next target"),
		),
		prevTarget: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "prev target"),
		),
		reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload session"),
		),
		copyCode: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy code"),
		),
		scrollUp: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll up"),
		),
		scrollDown: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/j", "scroll down"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
	}
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.switchPane, k.nextTarget, k.reload, k.copyCode, k.toggleHelp, k.quit}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.switchPane, k.nextTarget, k.prevTarget},
		{k.scrollUp, k.scrollDown},
		{k.reload, k.copyCode, k.toggleHelp, k.quit},
	}
}
