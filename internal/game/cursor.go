package game

import "github.com/samdwyer/minesweeper/internal/minefield"

// Cursor is the keyboard selection on the board.
type Cursor struct {
	X, Y          int
	width, height int
}

// NewCursor creates a cursor centred on a width x height board.
func NewCursor(width, height int) *Cursor {
	return &Cursor{
		X:      width / 2,
		Y:      height / 2,
		width:  width,
		height: height,
	}
}

// Move shifts the cursor by the given delta, stopping at the board edges.
func (c *Cursor) Move(dx, dy int) {
	c.X = min(max(c.X+dx, 0), c.width-1)
	c.Y = min(max(c.Y+dy, 0), c.height-1)
}

// Set places the cursor on (x, y) if it lies on the board.
func (c *Cursor) Set(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.X, c.Y = x, y
}

// Position returns the current grid coordinates.
func (c *Cursor) Position() minefield.Position {
	return minefield.Position{X: c.X, Y: c.Y}
}
