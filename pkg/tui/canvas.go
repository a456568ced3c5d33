package tui

import (
	"strings"
	"unicode"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// Canvas maps window pixels onto terminal cells
type Canvas struct {
	Width  int // window width in pixels
	Height int // window height in pixels
	CellW  int // pixels per column
	CellH  int // pixels per row
}

const (
	defaultCellW = 10
	defaultCellH = 20
	maxCanvasCol = 240
	maxCanvasRow = 120
)

// NewCanvas returns a canvas for a window of w×h pixels
func NewCanvas(w, h int) Canvas {
	return Canvas{Width: w, Height: h, CellW: defaultCellW, CellH: defaultCellH}
}

func (c Canvas) cell() (w, h int) {
	w, h = c.CellW, c.CellH
	if w <= 0 {
		w = defaultCellW
	}
	if h <= 0 {
		h = defaultCellH
	}
	return w, h
}

func (c Canvas) size() (cols, rows int) {
	cellW, cellH := c.cell()
	cols = (c.Width + cellW - 1) / cellW
	rows = (c.Height + cellH - 1) / cellH
	return min(max(cols, 1), maxCanvasCol), min(max(rows, 1), maxCanvasRow)
}

// Render draws placements in document order, so later widgets cover
// earlier ones. Widgets outside the window are clipped.
func (c Canvas) Render(layout []models.WidgetPlacement) string {
	cols, rows := c.size()
	cellW, cellH := c.cell()

	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(" ", cols))
	}

	for _, w := range layout {
		c0, r0 := w.X/cellW, w.Y/cellH
		c1, r1 := (w.X+max(w.W, 1)-1)/cellW, (w.Y+max(w.H, 1)-1)/cellH
		if c0 >= cols || r0 >= rows {
			continue
		}
		c1 = min(max(c1, c0+1), cols-1)
		r1 = min(r1, rows-1)
		if c1 <= c0 {
			// Pinned against the right edge
			continue
		}
		drawWidget(cells, c0, r0, c1, r1, widgetLabel(w))
	}

	lines := make([]string, rows)
	for r, row := range cells {
		lines[r] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

func drawWidget(cells [][]rune, c0, r0, c1, r1 int, label string) {
	if r1 == r0 {
		writeLabel(cells[r0], c0, c1, "["+label+"]")
		return
	}

	for c := c0 + 1; c < c1; c++ {
		cells[r0][c] = '─'
		cells[r1][c] = '─'
	}
	for r := r0 + 1; r < r1; r++ {
		cells[r][c0] = '│'
		cells[r][c1] = '│'
		for c := c0 + 1; c < c1; c++ {
			cells[r][c] = ' '
		}
	}
	cells[r0][c0], cells[r0][c1] = '┌', '┐'
	cells[r1][c0], cells[r1][c1] = '└', '┘'

	labelRow := r0
	if r1-r0 >= 2 {
		labelRow = r0 + 1
	}
	writeLabel(cells[labelRow], c0+1, c1-1, label)
}

// writeLabel writes text into row between from and to (inclusive), cut to
// fit. Control characters become spaces so a label never adds a line.
func writeLabel(row []rune, from, to int, text string) {
	for i, r := range []rune(text) {
		if from+i > to {
			return
		}
		if unicode.IsControl(r) {
			r = ' '
		}
		row[from+i] = r
	}
}

func widgetLabel(w models.WidgetPlacement) string {
	switch w.Type {
	case models.WidgetCheckbox:
		return "☐ " + w.Value
	case models.WidgetDropdown:
		return "▾ " + orDefault(w.Value, "0")
	case models.WidgetProgressBar:
		return orDefault(w.Value, "0") + "%"
	case models.WidgetSlider:
		return "○ " + orDefault(w.Value, "0")
	case models.WidgetTextInput, models.WidgetMultilineText:
		return orDefault(w.Value, "…")
	}
	return orDefault(w.Value, string(w.Type))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
