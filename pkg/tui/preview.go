package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/pluqqy-designer/pkg/codegen"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// LoadFunc returns a fresh layout snapshot, typically by replaying a session
type LoadFunc func() ([]models.WidgetPlacement, error)

// PreviewOption customizes a PreviewModel
type PreviewOption func(*PreviewModel)

// WithCanvasSize sets the window size, in pixels, drawn on the canvas pane
func WithCanvasSize(w, h int) PreviewOption {
	return func(m *PreviewModel) {
		if w > 0 && h > 0 {
			m.canvas = NewCanvas(w, h)
		}
	}
}

// WithGeneratorOptions sets the per-target generator options
func WithGeneratorOptions(optsFor func(codegen.Target) codegen.Options) PreviewOption {
	return func(m *PreviewModel) {
		m.generators = codegen.All(optsFor)
	}
}

// WithClipboard replaces the clipboard writer used by the copy key
func WithClipboard(write func(string) error) PreviewOption {
	return func(m *PreviewModel) {
		if write != nil {
			m.copy = write
		}
	}
}

type layoutLoadedMsg struct {
	layout []models.WidgetPlacement
	err    error
}

type previewStatusMsg string

const (
	canvasPane = 0
	codePane   = 1
)

// PreviewModel shows a session's canvas next to the program generated for
// the selected target
type PreviewModel struct {
	width  int
	height int
	title  string

	load       LoadFunc
	canvas     Canvas
	generators []codegen.Generator
	copy       func(string) error

	layout []models.WidgetPlacement
	target int
	code   string
	err    error
	status string

	canvasViewport viewport.Model
	codeViewport   viewport.Model
	activePane     int

	keys previewKeyMap
	help help.Model
}

func NewPreviewModel(title string, load LoadFunc, opts ...PreviewOption) *PreviewModel {
	m := &PreviewModel{
		title:          title,
		load:           load,
		canvas:         NewCanvas(800, 600),
		generators:     codegen.All(nil),
		copy:           clipboard.WriteAll,
		canvasViewport: viewport.New(40, 20),
		codeViewport:   viewport.New(80, 20),
		activePane:     codePane,
		keys:           newPreviewKeyMap(),
		help:           help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *PreviewModel) Init() tea.Cmd {
	return m.reload()
}

func (m *PreviewModel) reload() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		if load == nil {
			return layoutLoadedMsg{}
		}
		layout, err := load()
		return layoutLoadedMsg{layout: layout, err: err}
	}
}

func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case layoutLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Reload failed: %v", msg.err)
			return m, nil
		}
		m.err = nil
		m.layout = msg.layout
		m.status = fmt.Sprintf("Loaded %d widget(s)", len(m.layout))
		m.regenerate()
		return m, nil

	case previewStatusMsg:
		m.status = string(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.switchPane):
			m.activePane = 1 - m.activePane
			return m, nil

		case key.Matches(msg, m.keys.nextTarget):
			m.target = (m.target + 1) % len(m.generators)
			m.regenerate()
			return m, nil

		case key.Matches(msg, m.keys.prevTarget):
			m.target = (m.target + len(m.generators) - 1) % len(m.generators)
			m.regenerate()
			return m, nil

		case key.Matches(msg, m.keys.reload):
			m.status = "Reloading..."
			return m, m.reload()

		case key.Matches(msg, m.keys.copyCode):
			return m, m.copyCode()

		case key.Matches(msg, m.keys.toggleHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.activePane == canvasPane {
			m.canvasViewport, cmd = m.canvasViewport.Update(msg)
		} else {
			m.codeViewport, cmd = m.codeViewport.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

func (m *PreviewModel) copyCode() tea.Cmd {
	code, target, write := m.code, m.Target(), m.copy
	return func() tea.Msg {
		if err := write(code); err != nil {
			return previewStatusMsg(fmt.Sprintf("Copy failed: %v", err))
		}
		return previewStatusMsg(fmt.Sprintf("Copied %s program to clipboard", target))
	}
}

// Target returns the target whose program is shown
func (m *PreviewModel) Target() codegen.Target {
	return m.generators[m.target].Target()
}

// Code returns the program currently shown
func (m *PreviewModel) Code() string {
	return m.code
}

func (m *PreviewModel) regenerate() {
	m.code = m.generators[m.target].Generate(m.layout)
	m.updateViewportContent()
}

func (m *PreviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateViewportSizes()
	m.updateViewportContent()
}

func (m *PreviewModel) canvasWidth() int {
	cols, _ := m.canvas.size()
	// Content plus border and padding, never more than half the screen
	return min(cols+4, max(m.width/2, 20))
}

func (m *PreviewModel) updateViewportSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	contentHeight := m.height - 8
	if contentHeight < 5 {
		contentHeight = 5
	}

	leftWidth := m.canvasWidth()
	rightWidth := m.width - leftWidth - 3

	m.canvasViewport.Width = max(leftWidth-4, 1)
	m.canvasViewport.Height = contentHeight - 3
	m.codeViewport.Width = max(rightWidth-4, 1)
	m.codeViewport.Height = contentHeight - 3
}

func (m *PreviewModel) updateViewportContent() {
	m.canvasViewport.SetContent(m.canvas.Render(m.layout))
	m.codeViewport.SetContent(wordwrap.String(m.code, m.codeViewport.Width))
}

func (m *PreviewModel) View() string {
	if m.width == 0 {
		return "Loading preview..."
	}

	activeStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170"))

	inactiveStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	padding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	leftWidth := m.canvasWidth()
	rightWidth := m.width - leftWidth - 3
	contentHeight := max(m.height-8, 5)

	var left strings.Builder
	left.WriteString(padding.Render(headerStyle.Render(fmt.Sprintf("CANVAS (%d)", len(m.layout)))))
	left.WriteString("\n\n")
	left.WriteString(padding.Render(m.canvasViewport.View()))

	var right strings.Builder
	right.WriteString(padding.Render(headerStyle.Render("CODE") + " " + m.renderTargetTabs()))
	right.WriteString("\n\n")
	right.WriteString(padding.Render(m.codeViewport.View()))

	leftStyle, rightStyle := inactiveStyle, inactiveStyle
	if m.activePane == canvasPane {
		leftStyle = activeStyle
	} else {
		rightStyle = activeStyle
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Width(leftWidth).Height(contentHeight).Render(left.String()),
		" ",
		rightStyle.Width(rightWidth).Height(contentHeight).Render(right.String()),
	)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))

	var s strings.Builder
	s.WriteString(padding.Render(titleStyle.Render("PREVIEW · " + m.title)))
	s.WriteString("\n")
	s.WriteString(padding.Render(columns))
	s.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		if m.err != nil {
			statusStyle = statusStyle.Foreground(lipgloss.Color("196"))
		}
		s.WriteString(padding.Render(statusStyle.Render(wordwrap.String(m.status, max(m.width-4, 10)))))
		s.WriteString("\n")
	}

	s.WriteString(padding.Render(m.help.View(m.keys)))

	return s.String()
}

func (m *PreviewModel) renderTargetTabs() string {
	active := lipgloss.NewStyle().
		Background(lipgloss.Color("170")).
		Foreground(lipgloss.Color("255")).
		Padding(0, 1).
		Bold(true)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Padding(0, 1)

	tabs := make([]string, len(m.generators))
	for i, g := range m.generators {
		label := fmt.Sprintf("%s %s", g.Target().Letter(), codegen.FileName(g.Target()))
		if i == m.target {
			tabs[i] = active.Render(label)
		} else {
			tabs[i] = inactive.Render(label)
		}
	}
	return strings.Join(tabs, " ")
}
