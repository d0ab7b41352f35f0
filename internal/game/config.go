package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/minesweeper/internal/minefield"
)

// Config holds game configuration options.
type Config struct {
	Board minefield.Config

	// Seed for random number generation. Used for reproducible mine layouts.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Layout, when non-nil, fixes the mine positions and overrides Board.Mines.
	Layout []minefield.Position

	// Theme is the ID of the embedded theme to draw with.
	Theme string
}

// DefaultConfig returns the standard 16x16 board with 32 mines.
func DefaultConfig() Config {
	return Config{Board: minefield.DefaultConfig()}
}

// rng returns a source seeded from Seed, or from the clock when Seed is 0.
func (c Config) rng() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
