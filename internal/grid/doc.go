// Package grid computes border plans for ruled grids of boxed cells.
//
// Each cell of a cols × rows grid is drawn as its own box, but neighbouring
// boxes must read as a single ruled surface. A Plan records, per cell, which
// edges that cell draws and which junction glyph sits at each of its corners,
// so that every shared edge is drawn exactly once and every lattice point
// shows the right corner, T or cross glyph.
package grid
