package minefield

import (
	"errors"
	"fmt"
)

const (
	// Default board dimensions
	DefaultWidth  = 16
	DefaultHeight = 16
	DefaultMines  = 32
)

// ErrInvalidDimensions is returned when a board would have no cells.
var ErrInvalidDimensions = errors.New("width and height must be positive")

// Config describes the board to generate.
type Config struct {
	Width  int // Grid columns
	Height int // Grid rows
	Mines  int // Mine count; clamped to [0, Width*Height]
}

// DefaultConfig returns a 16x16 board with 32 mines.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Mines:  DefaultMines,
	}
}

// Validate reports dimension errors. The mine count is never an error; see Clamped.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	return nil
}

// Clamped returns a copy of c with Mines limited to [0, Width*Height].
func (c Config) Clamped() Config {
	c.Mines = min(max(c.Mines, 0), c.Width*c.Height)
	return c
}
