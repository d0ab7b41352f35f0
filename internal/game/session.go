package game

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweeper/internal/minefield"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// Session owns one board and applies player actions to it. Every method holds
// a single lock for the whole action, so a Session may be shared between
// goroutines even though the board itself is not synchronised.
type Session struct {
	mu     sync.Mutex
	board  *minefield.Board
	cursor *Cursor
	log    logrus.FieldLogger
	moves  int // successful reveals and flag toggles in the current game
}

// NewSession creates a board from cfg and starts the first game.
func NewSession(ctx context.Context, cfg Config, log logrus.FieldLogger) (*Session, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	var (
		board *minefield.Board
		err   error
	)
	if cfg.Layout != nil {
		board, err = minefield.NewWithMines(ctx, cfg.Board.Width, cfg.Board.Height, cfg.Layout)
	} else {
		board, err = minefield.New(ctx, cfg.Board, cfg.rng())
	}
	if err != nil {
		return nil, err
	}

	if cfg.Layout == nil && board.MineCount() != cfg.Board.Mines {
		log.WithFields(logrus.Fields{
			"requested": cfg.Board.Mines,
			"placed":    board.MineCount(),
		}).Warn("mine count clamped to board size")
	}

	s := &Session{
		board:  board,
		cursor: NewCursor(board.Width(), board.Height()),
		log:    log,
	}
	s.logNewGame()
	return s, nil
}

// Reveal uncovers (x, y) and returns the board afterwards.
func (s *Session) Reveal(ctx context.Context, x, y int) minefield.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reveal(ctx, x, y)
}

// ToggleFlag flips the flag on (x, y) and returns the board afterwards.
func (s *Session) ToggleFlag(ctx context.Context, x, y int) minefield.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggleFlag(ctx, x, y)
}

// RevealAtCursor reveals the cell under the cursor.
func (s *Session) RevealAtCursor(ctx context.Context) minefield.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.cursor.Position()
	return s.reveal(ctx, p.X, p.Y)
}

// FlagAtCursor toggles the flag under the cursor.
func (s *Session) FlagAtCursor(ctx context.Context) minefield.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.cursor.Position()
	return s.toggleFlag(ctx, p.X, p.Y)
}

// Reset starts a new game on a fresh board of the same size.
func (s *Session) Reset(ctx context.Context) minefield.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.reset")
	defer span.End()

	previous := s.board.ID
	s.board.Reset(ctx)
	s.moves = 0
	s.cursor = NewCursor(s.board.Width(), s.board.Height())

	span.SetAttributes(
		attribute.String("game.previous_id", previous),
		attribute.String("game.id", s.board.ID),
	)
	s.logNewGame()
	return s.board.Snapshot()
}

// MoveCursor shifts the keyboard cursor, clamped to the board.
func (s *Session) MoveCursor(dx, dy int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Move(dx, dy)
}

// SetCursor moves the keyboard cursor to (x, y) when it is on the board.
func (s *Session) SetCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Set(x, y)
}

// Cursor returns the cursor position.
func (s *Session) Cursor() minefield.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Position()
}

// Snapshot returns a copy of the current board.
func (s *Session) Snapshot() minefield.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Snapshot()
}

// Status returns the state of the current game.
func (s *Session) Status() minefield.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Status()
}

func (s *Session) reveal(ctx context.Context, x, y int) minefield.Snapshot {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.reveal")
	defer span.End()

	before := s.board.RevealedCount()
	wasOver := s.board.GameOver()
	target := s.board.GetCell(x, y)
	status := s.board.Reveal(x, y)
	after := s.board.RevealedCount()

	applied := !wasOver && target.IsValid() && !target.Revealed
	if applied {
		s.moves++
	}

	span.SetAttributes(
		attribute.String("game.id", s.board.ID),
		attribute.Int("cell.x", x),
		attribute.Int("cell.y", y),
		attribute.Bool("applied", applied),
		attribute.Int("cells_revealed", after-before),
		attribute.String("status", status.String()),
	)

	s.log.WithFields(logrus.Fields{
		"game":     s.board.ID,
		"x":        x,
		"y":        y,
		"applied":  applied,
		"revealed": after - before,
		"status":   status.String(),
	}).Debug("reveal")

	if applied && status.IsTerminal() {
		s.endGame(ctx, span, status)
	}
	return s.board.Snapshot()
}

func (s *Session) toggleFlag(ctx context.Context, x, y int) minefield.Snapshot {
	_, span := telemetry.Tracer("game").Start(ctx, "game.flag")
	defer span.End()

	changed := s.board.ToggleFlag(x, y)
	if changed {
		s.moves++
	}

	span.SetAttributes(
		attribute.String("game.id", s.board.ID),
		attribute.Int("cell.x", x),
		attribute.Int("cell.y", y),
		attribute.Bool("applied", changed),
		attribute.Bool("flagged", s.board.GetCell(x, y).Flagged),
	)

	s.log.WithFields(logrus.Fields{
		"game":    s.board.ID,
		"x":       x,
		"y":       y,
		"applied": changed,
	}).Debug("toggle flag")

	return s.board.Snapshot()
}

// endGame records the outcome of a finished game.
func (s *Session) endGame(ctx context.Context, parent trace.Span, status minefield.Status) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("game.id", s.board.ID),
		attribute.String("outcome", status.String()),
		attribute.Int("moves", s.moves),
		attribute.Int("cells_revealed", s.board.RevealedCount()),
		attribute.Int("flags", s.board.FlagCount()),
	)
	span.End()
	parent.AddEvent("game over")

	s.log.WithFields(logrus.Fields{
		"game":    s.board.ID,
		"outcome": status.String(),
		"moves":   s.moves,
	}).Info("game finished")
}

func (s *Session) logNewGame() {
	s.log.WithFields(logrus.Fields{
		"game":   s.board.ID,
		"width":  s.board.Width(),
		"height": s.board.Height(),
		"mines":  s.board.MineCount(),
	}).Info("new game")
}
