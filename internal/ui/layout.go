package ui

import "github.com/samdwyer/minesweeper/internal/minefield"

const (
	// Board origin on screen. Row 0 holds the counters.
	originX = 1
	originY = 2

	// Each cell is drawn as cursor-left, glyph, cursor-right.
	cellWidth = 3
)

// CellToScreen returns the screen column and row of the glyph for grid cell (x, y).
func CellToScreen(x, y int) (int, int) {
	return originX + x*cellWidth + 1, originY + y
}

// ScreenToCell maps a screen position, typically a mouse click, to grid
// coordinates. Positions left of or above the board map to (-1, -1), which
// the engine ignores like any other out-of-bounds coordinate.
func ScreenToCell(sx, sy int) minefield.Position {
	if sx < originX || sy < originY {
		return minefield.Position{X: -1, Y: -1}
	}
	return minefield.Position{
		X: (sx - originX) / cellWidth,
		Y: sy - originY,
	}
}

// RequiredSize is the terminal size needed to draw a width x height board
// with its counters, status and help lines.
func RequiredSize(width, height int) (int, int) {
	return originX + width*cellWidth + 1, originY + height + 3
}
