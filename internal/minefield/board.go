package minefield

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// Board is the minefield and the rules that act on it. A Board is not safe for
// concurrent use; callers that share one must serialise whole operations.
type Board struct {
	// ID identifies the current game. It changes on every Reset.
	ID string

	width  int
	height int
	mines  int
	cells  [][]Cell // indexed [y][x]
	layout []Position
	status Status
	// gameOver latches on Lost or Won and blocks every action except Reset.
	gameOver bool
	rng      *rand.Rand
}

// New creates a board with randomly placed mines. The mine count is clamped to
// the number of cells. A nil rng is replaced by a time-seeded source.
func New(ctx context.Context, cfg Config, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cfg = cfg.Clamped()
	b := &Board{
		width:  cfg.Width,
		height: cfg.Height,
		mines:  cfg.Mines,
		rng:    rng,
	}
	b.generate(ctx)
	return b, nil
}

// NewWithMines creates a board whose mines sit exactly at the given positions.
// Out-of-bounds and duplicate positions are ignored.
func NewWithMines(ctx context.Context, width, height int, mines []Position) (*Board, error) {
	cfg := Config{Width: width, Height: height}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		width:  width,
		height: height,
		layout: append([]Position(nil), mines...),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	b.generate(ctx)
	return b, nil
}

// Reset starts a new game with the same dimensions and mine count. Boards made
// with NewWithMines keep their layout.
func (b *Board) Reset(ctx context.Context) {
	b.generate(ctx)
}

// generate rebuilds every cell and clears the game-over latch.
func (b *Board) generate(ctx context.Context) {
	tracer := telemetry.Tracer("minefield")
	_, span := tracer.Start(ctx, "minefield.generate")
	defer span.End()

	startTime := time.Now()

	b.ID = uuid.NewString()
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{
				Position: Position{X: x, Y: y},
				Kind:     Empty,
			}
		}
	}
	b.status = InProgress
	b.gameOver = false

	if b.layout != nil {
		b.mines = b.placeLayout(b.layout)
	} else {
		b.placeMines(b.mines)
	}
	b.generateNumbers()

	span.SetAttributes(
		attribute.String("game.id", b.ID),
		attribute.Int("minefield.width", b.width),
		attribute.Int("minefield.height", b.height),
		attribute.Int("minefield.mines", b.mines),
		attribute.Bool("minefield.fixed_layout", b.layout != nil),
		attribute.Int64("minefield.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// GetCell returns the cell at (x, y), or a zero Cell of kind Invalid when the
// coordinates fall outside the grid.
func (b *Board) GetCell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y][x]
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return b.mines }

// Status returns the state of the current game.
func (b *Board) Status() Status { return b.status }

// GameOver reports whether the board rejects further actions until Reset.
func (b *Board) GameOver() bool { return b.gameOver }

// FlagCount returns the number of flagged hidden cells.
func (b *Board) FlagCount() int {
	count := 0
	b.each(func(c *Cell) {
		if c.Flagged && !c.Revealed {
			count++
		}
	})
	return count
}

// RevealedCount returns the number of revealed safe cells.
func (b *Board) RevealedCount() int {
	count := 0
	b.each(func(c *Cell) {
		if c.Revealed && c.Kind != Mine {
			count++
		}
	})
	return count
}

// each calls fn for every cell in row-major order.
func (b *Board) each(fn func(c *Cell)) {
	for y := range b.cells {
		for x := range b.cells[y] {
			fn(&b.cells[y][x])
		}
	}
}
