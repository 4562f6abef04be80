package grid

import "fmt"

// Position classifies an index along one axis of the grid.
// A single-cell axis is both first and last.
type Position uint8

const (
	PositionFirst Position = 1 << iota
	PositionLast

	PositionMiddle Position = 0
)

// Classify returns the position of index i on an axis of length n.
func Classify(i, n int) Position {
	var p Position
	if i == 0 {
		p |= PositionFirst
	}
	if i == n-1 {
		p |= PositionLast
	}
	return p
}

// IsFirst reports whether the position is on the leading perimeter.
func (p Position) IsFirst() bool { return p&PositionFirst != 0 }

// IsLast reports whether the position is on the trailing perimeter.
func (p Position) IsLast() bool { return p&PositionLast != 0 }

// Edges lists the sides of a cell that the cell itself draws.
type Edges struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// Corners holds the junction at each corner of a cell.
type Corners struct {
	TopLeft     Junction
	TopRight    Junction
	BottomLeft  Junction
	BottomRight Junction
}

// CellSpec is the border plan for one cell.
type CellSpec struct {
	Col, Row int
	Edges    Edges
	Corners  Corners
}

// Plan is the border plan of a whole grid, indexed by column and row.
type Plan struct {
	cols, rows int
	cells      []CellSpec
}

// NewPlan builds the border plan for a grid of cols × rows cells.
//
// Every cell draws its left and bottom edges; cells in the first row also
// draw their top edge and cells in the last column also draw their right
// edge. Junctions are chosen from the lines meeting at each lattice point.
func NewPlan(cols, rows int) (*Plan, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("grid must have at least one row and column, got %dx%d", cols, rows)
	}

	p := &Plan{cols: cols, rows: rows, cells: make([]CellSpec, 0, cols*rows)}
	for row := 0; row < rows; row++ {
		rowPos := Classify(row, rows)
		for col := 0; col < cols; col++ {
			colPos := Classify(col, cols)
			p.cells = append(p.cells, CellSpec{
				Col: col,
				Row: row,
				Edges: Edges{
					Top:    rowPos.IsFirst(),
					Right:  colPos.IsLast(),
					Bottom: true,
					Left:   true,
				},
				Corners: Corners{
					TopLeft:     p.JunctionAt(col, row),
					TopRight:    p.JunctionAt(col+1, row),
					BottomLeft:  p.JunctionAt(col, row+1),
					BottomRight: p.JunctionAt(col+1, row+1),
				},
			})
		}
	}
	return p, nil
}

// MustPlan is like NewPlan but panics on an invalid shape.
func MustPlan(cols, rows int) *Plan {
	p, err := NewPlan(cols, rows)
	if err != nil {
		panic(err)
	}
	return p
}

// Cols returns the number of columns.
func (p *Plan) Cols() int { return p.cols }

// Rows returns the number of rows.
func (p *Plan) Rows() int { return p.rows }

// Cell returns the spec of the cell at (col, row). It panics when the
// coordinates are outside the grid.
func (p *Plan) Cell(col, row int) CellSpec {
	if col < 0 || col >= p.cols || row < 0 || row >= p.rows {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %dx%d plan", col, row, p.cols, p.rows))
	}
	return p.cells[row*p.cols+col]
}

// Cells returns every cell spec in row-major order.
func (p *Plan) Cells() []CellSpec {
	out := make([]CellSpec, len(p.cells))
	copy(out, p.cells)
	return out
}

// JunctionAt returns the junction at lattice point (x, y), where
// 0 <= x <= cols and 0 <= y <= rows. Points outside the lattice have no
// junction.
func (p *Plan) JunctionAt(x, y int) Junction {
	if x < 0 || x > p.cols || y < 0 || y > p.rows {
		return JunctionNone
	}
	var a arms
	if y > 0 {
		a |= armUp
	}
	if y < p.rows {
		a |= armDown
	}
	if x > 0 {
		a |= armLeft
	}
	if x < p.cols {
		a |= armRight
	}
	return junctionFor(a)
}
