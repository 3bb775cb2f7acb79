package ui

import (
	"math"

	"github.com/abertram/Invisiboga/internal/world"
)

// Viewport maps terminal cells to the board plane. Screen positions are in
// pseudo pixels, one cell being CellWidth by CellHeight, so tap thresholds
// keep their meaning. The board starts Top rows below the top of the screen.
type Viewport struct {
	CellWidth  float64
	CellHeight float64
	Top        int
}

// Screen returns the screen position of the centre of a cell.
func (v Viewport) Screen(col, row int) world.Vec2 {
	return world.Vec2{
		X: (float64(col) + 0.5) * v.CellWidth,
		Y: (float64(row) + 0.5) * v.CellHeight,
	}
}

// Project maps a screen position onto the board plane.
func (v Viewport) Project(screen world.Vec2) world.Vec2 {
	return world.Vec2{X: screen.X, Y: screen.Y - float64(v.Top)*v.CellHeight}
}

// Cell returns the cell a board position is drawn in.
func (v Viewport) Cell(p world.Vec2) (col, row int) {
	col = int(math.Floor(p.X / v.CellWidth))
	row = int(math.Floor(p.Y/v.CellHeight)) + v.Top
	return col, row
}
