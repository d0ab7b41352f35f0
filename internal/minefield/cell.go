// Package minefield implements the Minesweeper board engine.
package minefield

// Position is a grid coordinate.
type Position struct {
	X, Y int
}

// orthogonal returns the four edge-sharing neighbours of p. Results may lie
// outside the grid.
func (p Position) orthogonal() [4]Position {
	return [4]Position{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
}

// Kind classifies a cell.
type Kind int

const (
	// Invalid is returned for out-of-bounds lookups. It is never stored in a board.
	Invalid Kind = iota
	// Empty is a safe cell with no neighbouring mines.
	Empty
	// Number is a safe cell with at least one neighbouring mine.
	Number
	// Mine ends the game when revealed.
	Mine
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Empty:
		return "empty"
	case Number:
		return "number"
	case Mine:
		return "mine"
	default:
		return "unknown"
	}
}

// Cell is the state of a single grid position.
type Cell struct {
	Position Position
	Kind     Kind
	Adjacent int  // Mines among the 8 neighbours; only meaningful for Number cells
	Revealed bool // Never reset during a game
	Flagged  bool // Player marker, ignored once Revealed
	Exploded bool // The mine the player stepped on
}

// IsValid reports whether the cell came from inside the grid.
func (c Cell) IsValid() bool {
	return c.Kind != Invalid
}
