package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-designer/pkg/codegen"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

func loginLayout() []models.WidgetPlacement {
	return []models.WidgetPlacement{
		{ID: "w1", Type: models.WidgetButton, X: 10, Y: 20, W: 120, H: 30, Value: "OK"},
	}
}

func loadedPreview(t *testing.T, opts ...PreviewOption) *PreviewModel {
	t.Helper()
	m := NewPreviewModel("login", func() ([]models.WidgetPlacement, error) {
		return loginLayout(), nil
	}, opts...)

	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	msg := m.Init()()
	m.Update(msg)
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPreviewLoadsAndGenerates(t *testing.T) {
	m := loadedPreview(t)

	assert.Equal(t, codegen.TargetPySide, m.Target())
	assert.Contains(t, m.Code(), "setGeometry(QRect(10, 20, 120, 30))")

	view := m.View()
	assert.Contains(t, view, "PREVIEW · login")
	assert.Contains(t, view, "CANVAS (1)")
	assert.Contains(t, view, "layout_pyside.py")
}

func TestPreviewCyclesTargets(t *testing.T) {
	m := loadedPreview(t)

	m.Update(keyPress("]"))
	assert.Equal(t, codegen.TargetTkinter, m.Target())
	assert.Contains(t, m.Code(), ".place(x=10, y=20, width=120, height=30)")

	m.Update(keyPress("]"))
	assert.Equal(t, codegen.TargetWinForms, m.Target())

	m.Update(keyPress("]"))
	assert.Equal(t, codegen.TargetPySide, m.Target())

	m.Update(keyPress("["))
	assert.Equal(t, codegen.TargetWinForms, m.Target())
}

func TestPreviewSwitchesPane(t *testing.T) {
	m := loadedPreview(t)
	require.Equal(t, codePane, m.activePane)

	m.Update(keyPress("tab"))
	assert.Equal(t, canvasPane, m.activePane)
}

func TestPreviewGeneratorOptions(t *testing.T) {
	m := loadedPreview(t, WithGeneratorOptions(func(codegen.Target) codegen.Options {
		return codegen.Options{WindowTitle: "Login"}
	}))

	assert.Contains(t, m.Code(), "self.setWindowTitle('Login')")
}

func TestPreviewCopy(t *testing.T) {
	var copied string
	m := loadedPreview(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	_, cmd := m.Update(keyPress("y"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, m.Code(), copied)
	assert.Contains(t, m.status, "Copied pyside program")
}

func TestPreviewReloadError(t *testing.T) {
	calls := 0
	m := NewPreviewModel("broken", func() ([]models.WidgetPlacement, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("replay failed")
		}
		return loginLayout(), nil
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m.Update(m.Init()())

	_, cmd := m.Update(keyPress("r"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "Reload failed: replay failed")
	// The last good layout stays on screen
	assert.Len(t, m.layout, 1)
}

func TestPreviewQuit(t *testing.T) {
	m := loadedPreview(t)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPreviewBeforeSize(t *testing.T) {
	m := NewPreviewModel("login", nil)
	assert.Equal(t, "Loading preview...", m.View())
}
