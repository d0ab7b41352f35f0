package game

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/samdwyer/minesweeper/internal/minefield"
)

func newTestSession(t *testing.T, cfg Config) (*Session, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s, err := NewSession(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	return s, hook
}

func fixedConfig(width, height int, mines ...minefield.Position) Config {
	return Config{
		Board:  minefield.Config{Width: width, Height: height},
		Layout: mines,
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s, _ := newTestSession(t, Config{Board: minefield.DefaultConfig(), Seed: 42})
	snap := s.Snapshot()

	if snap.Width != 16 || snap.Height != 16 || snap.Mines != 32 {
		t.Errorf("Snapshot() = %dx%d with %d mines, want 16x16 with 32", snap.Width, snap.Height, snap.Mines)
	}
	if got := s.Cursor(); got != (minefield.Position{X: 8, Y: 8}) {
		t.Errorf("Cursor() = %+v, want centre", got)
	}
	if s.Status() != minefield.InProgress {
		t.Errorf("Status() = %v, want in_progress", s.Status())
	}
}

func TestNewSessionInvalidDimensions(t *testing.T) {
	_, err := NewSession(context.Background(), Config{Board: minefield.Config{Width: 0, Height: 3}}, nil)
	if err == nil {
		t.Error("NewSession() with zero width should fail")
	}
}

func TestNewSessionWarnsOnClamp(t *testing.T) {
	_, hook := newTestSession(t, Config{Board: minefield.Config{Width: 2, Height: 2, Mines: 10}, Seed: 1})

	found := false
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "mine count clamped to board size" {
			found = true
			if e.Data["placed"] != 4 {
				t.Errorf("placed = %v, want 4", e.Data["placed"])
			}
		}
	}
	if !found {
		t.Error("expected a warning when the mine count is clamped")
	}
}

func TestSessionSeedReproducible(t *testing.T) {
	cfg := Config{Board: minefield.Config{Width: 9, Height: 9, Mines: 10}, Seed: 777}
	s1, _ := newTestSession(t, cfg)
	s2, _ := newTestSession(t, cfg)

	a, b := s1.Snapshot(), s2.Snapshot()
	for y := range a.Cells {
		for x := range a.Cells[y] {
			if a.Cells[y][x].Kind != b.Cells[y][x].Kind {
				t.Fatalf("seeded sessions differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestSessionLoseAndReset(t *testing.T) {
	s, hook := newTestSession(t, fixedConfig(3, 1, minefield.Position{X: 0, Y: 0}))

	snap := s.Reveal(context.Background(), 1, 0)
	if snap.Status != minefield.InProgress {
		t.Fatalf("Reveal(1, 0) status = %v, want in_progress", snap.Status)
	}
	if c := snap.At(1, 0); c.Kind != minefield.Number || c.Adjacent != 1 {
		t.Errorf("At(1, 0) = %v/%d, want number/1", c.Kind, c.Adjacent)
	}

	snap = s.Reveal(context.Background(), 0, 0)
	if snap.Status != minefield.Lost {
		t.Fatalf("Reveal(0, 0) status = %v, want lost", snap.Status)
	}

	last := hook.LastEntry()
	if last == nil || last.Message != "game finished" || last.Data["outcome"] != "lost" {
		t.Errorf("last log entry = %+v, want game finished/lost", last)
	}

	// Latched: flags and reveals are ignored
	snap = s.ToggleFlag(context.Background(), 1, 0)
	if snap.Flags != 0 {
		t.Error("ToggleFlag after loss should be ignored")
	}

	oldID := snap.ID
	snap = s.Reset(context.Background())
	if snap.Status != minefield.InProgress {
		t.Errorf("Reset() status = %v, want in_progress", snap.Status)
	}
	if snap.ID == oldID {
		t.Error("Reset() should start a game with a new ID")
	}
	if snap.At(0, 0).Revealed || snap.At(1, 0).Revealed || snap.At(2, 0).Revealed {
		t.Error("Reset() should hide every cell")
	}
}

func TestSessionWinInOneMove(t *testing.T) {
	s, _ := newTestSession(t, Config{Board: minefield.Config{Width: 3, Height: 3, Mines: 0}, Seed: 5})

	snap := s.RevealAtCursor(context.Background())
	if snap.Status != minefield.Won {
		t.Errorf("RevealAtCursor() status = %v, want won", snap.Status)
	}
	if s.moves != 1 {
		t.Errorf("moves = %d, want 1", s.moves)
	}
}

func TestSessionFlagAtCursor(t *testing.T) {
	s, _ := newTestSession(t, fixedConfig(3, 3, minefield.Position{X: 0, Y: 0}))

	s.MoveCursor(-5, -5)
	if got := s.Cursor(); got != (minefield.Position{X: 0, Y: 0}) {
		t.Fatalf("Cursor() = %+v, want origin", got)
	}

	snap := s.FlagAtCursor(context.Background())
	if !snap.At(0, 0).Flagged || snap.Flags != 1 {
		t.Error("FlagAtCursor() should flag (0,0)")
	}
	snap = s.FlagAtCursor(context.Background())
	if snap.At(0, 0).Flagged || snap.Flags != 0 {
		t.Error("second FlagAtCursor() should clear the flag")
	}
}

func TestSessionIgnoresOutOfBounds(t *testing.T) {
	s, _ := newTestSession(t, fixedConfig(2, 2, minefield.Position{X: 1, Y: 1}))

	before := s.Snapshot()
	s.Reveal(context.Background(), -1, 0)
	s.ToggleFlag(context.Background(), 5, 5)
	after := s.Snapshot()

	for y := range before.Cells {
		for x := range before.Cells[y] {
			if before.Cells[y][x] != after.Cells[y][x] {
				t.Errorf("cell (%d,%d) changed on an out-of-bounds action", x, y)
			}
		}
	}
	if s.moves != 0 {
		t.Errorf("moves = %d, want 0", s.moves)
	}
}

func TestSessionConcurrentActions(t *testing.T) {
	s, _ := newTestSession(t, Config{Board: minefield.Config{Width: 30, Height: 30, Mines: 0}, Seed: 9})

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			for x := 0; x < 30; x++ {
				s.ToggleFlag(context.Background(), x, row)
				s.Reveal(context.Background(), x, row)
			}
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	if snap.Status != minefield.Won {
		t.Errorf("Status = %v, want won", snap.Status)
	}
}
