package ui

import (
	"math"
	"time"

	"github.com/henri123lemoine/rusuku/internal/grid"
	"github.com/henri123lemoine/rusuku/internal/timer"
)

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 10

// MinHeaderHeight leaves room for a rule, one line of text and a rule.
const MinHeaderHeight = 3

// headerPercent is the share of the screen given to the header band.
const headerPercent = 15

// minPitch is the smallest distance between grid lines.
const minPitch = 2

// Rect is a region of the screen in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Cell is one grid cell's outer bounds, including the lines it shares with
// its neighbours, paired with its border spec.
type Cell struct {
	Rect Rect
	Spec grid.CellSpec
}

// Params contains everything Build needs for one frame.
type Params struct {
	Width, Height int
	Elapsed       time.Duration
	Paused        bool
	Title         string
	Plan          *grid.Plan
	MaxCellWidth  int
	MaxCellHeight int
	Help          string
}

// Frame describes what to draw for one frame, without styling.
type Frame struct {
	Width, Height int

	Title      string
	HeaderText string
	Paused     bool

	// Header holds the left, center and right header boxes.
	Header [3]Rect
	Body   Rect
	Footer Rect
	Help   string

	// Grid is the bounding box of the grid inside Body.
	Grid        Rect
	PitchWidth  int
	PitchHeight int
	Cells       []Cell
}

// Build lays out a frame. It has no side effects and never fails.
func Build(p Params) Frame {
	// Graceful degradation for small terminals: clamp to the minimum.
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	f := Frame{
		Width:      p.Width,
		Height:     p.Height,
		Title:      p.Title,
		HeaderText: timer.Format(p.Elapsed),
		Paused:     p.Paused,
		Help:       p.Help,
	}

	headerH := int(math.Round(float64(p.Height) * headerPercent / 100))
	if headerH < MinHeaderHeight {
		headerH = MinHeaderHeight
	}
	f.Header = splitThirds(Rect{X: 0, Y: 0, Width: p.Width, Height: headerH})

	bodyH := p.Height - headerH
	if p.Help != "" {
		bodyH--
		f.Footer = Rect{X: 0, Y: p.Height - 1, Width: p.Width, Height: 1}
	}
	f.Body = Rect{X: 0, Y: headerH, Width: p.Width, Height: bodyH}

	if p.Plan != nil {
		layoutGrid(&f, p.Plan, p.MaxCellWidth, p.MaxCellHeight)
	}
	return f
}

// splitThirds splits r horizontally into three boxes. A single spare column
// goes to the center box; two go to the side boxes.
func splitThirds(r Rect) [3]Rect {
	base := r.Width / 3
	widths := [3]int{base, base, base}
	switch r.Width % 3 {
	case 1:
		widths[1]++
	case 2:
		widths[0]++
		widths[2]++
	}

	var out [3]Rect
	x := r.X
	for i, w := range widths {
		out[i] = Rect{X: x, Y: r.Y, Width: w, Height: r.Height}
		x += w
	}
	return out
}

// layoutGrid centers the plan's grid in the body with the largest pitch that
// fits, capped at the configured maximum cell size.
func layoutGrid(f *Frame, plan *grid.Plan, maxW, maxH int) {
	cols, rows := plan.Cols(), plan.Rows()

	pitchW := fitPitch(f.Body.Width, cols, maxW)
	pitchH := fitPitch(f.Body.Height, rows, maxH)

	gridW := cols*pitchW + 1
	gridH := rows*pitchH + 1

	f.PitchWidth = pitchW
	f.PitchHeight = pitchH
	f.Grid = Rect{
		X:      f.Body.X + max(0, (f.Body.Width-gridW)/2),
		Y:      f.Body.Y + max(0, (f.Body.Height-gridH)/2),
		Width:  gridW,
		Height: gridH,
	}

	f.Cells = make([]Cell, 0, cols*rows)
	for _, spec := range plan.Cells() {
		f.Cells = append(f.Cells, Cell{
			Rect: Rect{
				X:      f.Grid.X + spec.Col*pitchW,
				Y:      f.Grid.Y + spec.Row*pitchH,
				Width:  pitchW + 1,
				Height: pitchH + 1,
			},
			Spec: spec,
		})
	}
}

// fitPitch returns the largest pitch such that n cells and their closing
// line fit in space, capped at limit and never below minPitch.
func fitPitch(space, n, limit int) int {
	pitch := (space - 1) / n
	if limit > 0 && pitch > limit {
		pitch = limit
	}
	if pitch < minPitch {
		pitch = minPitch
	}
	return pitch
}
