package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/rusuku/internal/grid"
)

// Render paints the full UI.
func Render(f Frame) string {
	var lines []string
	lines = append(lines, renderHeader(f)...)
	lines = append(lines, renderBody(f)...)
	if f.Help != "" {
		lines = append(lines, f.Help)
	}
	return strings.Join(lines, "\n")
}

// renderHeader renders the three header boxes side by side.
func renderHeader(f Frame) []string {
	left := renderSideBox(f.Header[0])
	center := renderTimerBox(f.Header[1], f.Title, f.HeaderText, f.Paused)
	right := renderSideBox(f.Header[2])
	return strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, left, center, right), "\n")
}

// renderSideBox renders a plain decorative box filling r.
func renderSideBox(r Rect) string {
	return HeaderBoxStyle.
		Width(max(0, r.Width-2)).
		Height(max(0, r.Height-2)).
		Render("")
}

// renderTimerBox renders the center header box: a top rule carrying the
// title, the timer text on the first inner line, and a bottom rule that
// shows the paused status.
func renderTimerBox(r Rect, title, text string, paused bool) string {
	lines := make([]string, 0, r.Height)
	lines = append(lines, titledRule(TitleStyle.Render(title), r.Width))

	blank := strings.Repeat(" ", r.Width)
	for i := 0; i < r.Height-2; i++ {
		if i == 0 {
			lines = append(lines, centerText(TimerStyle.Render(text), r.Width))
			continue
		}
		lines = append(lines, blank)
	}

	status := ""
	if paused {
		status = StatusStyle.Render(" paused ")
	}
	lines = append(lines, titledRule(status, r.Width))
	return strings.Join(lines, "\n")
}

// titledRule renders a horizontal rule of the given width with label
// centered on it. A label wider than the rule is dropped.
func titledRule(label string, width int) string {
	lw := lipgloss.Width(label)
	if lw > width {
		label, lw = "", 0
	}
	left := (width - lw) / 2
	right := width - lw - left
	return RuleStyle.Render(strings.Repeat(grid.GlyphHorizontal, left)) +
		label +
		RuleStyle.Render(strings.Repeat(grid.GlyphHorizontal, right))
}

// centerText pads s with spaces to width, centered.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// renderBody renders the body band with the grid at its frame position.
func renderBody(f Frame) []string {
	lines := make([]string, f.Body.Height)

	if len(f.Cells) > 0 {
		gridLines := strings.Split(RenderGrid(f), "\n")
		indent := strings.Repeat(" ", f.Grid.X-f.Body.X)
		top := f.Grid.Y - f.Body.Y
		for i, gl := range gridLines {
			if top+i >= len(lines) {
				break
			}
			lines[top+i] = indent + gl
		}
	}
	return lines
}

// RenderGrid renders the frame's cells as one ruled grid. Each cell is a Lip
// Gloss box drawing only the edges its spec owns, with the spec's junctions
// as corners, so the joined boxes share every line.
func RenderGrid(f Frame) string {
	var rows []string
	var row []string
	current := -1

	for _, c := range f.Cells {
		if c.Spec.Row != current && row != nil {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
		current = c.Spec.Row
		row = append(row, renderCell(c, f.PitchWidth, f.PitchHeight))
	}
	if row != nil {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCell renders one cell box. The content area is one less than the
// pitch in each direction; the missing line belongs to the cell's border.
func renderCell(c Cell, pitchW, pitchH int) string {
	e := c.Spec.Edges
	return CellStyle.
		Border(cellBorder(c.Spec), e.Top, e.Right, e.Bottom, e.Left).
		Width(pitchW - 1).
		Height(pitchH - 1).
		Render("")
}

// cellBorder builds the Lip Gloss border for a cell from its junctions.
func cellBorder(spec grid.CellSpec) lipgloss.Border {
	b := lipgloss.ThickBorder()
	b.TopLeft = spec.Corners.TopLeft.Glyph()
	b.TopRight = spec.Corners.TopRight.Glyph()
	b.BottomLeft = spec.Corners.BottomLeft.Glyph()
	b.BottomRight = spec.Corners.BottomRight.Glyph()
	return b
}
