package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/minefield"
	"github.com/samdwyer/minesweeper/internal/theme"
	"github.com/samdwyer/minesweeper/internal/ui"
)

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	s, _ := newTestSession(t, cfg)

	screen, err := ui.NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatalf("NewScreenFrom() error: %v", err)
	}
	t.Cleanup(screen.Close)

	th, err := theme.MustLoadRegistry().Get("")
	if err != nil {
		t.Fatalf("theme Get() error: %v", err)
	}
	return NewWithScreen(screen, s, th)
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'r', ActionReset},
		{tcell.KeyRune, ' ', ActionReveal},
		{tcell.KeyEnter, 0, ActionReveal},
		{tcell.KeyRune, 'f', ActionFlag},
		{tcell.KeyUp, 0, ActionUp},
		{tcell.KeyRune, 'k', ActionUp},
		{tcell.KeyDown, 0, ActionDown},
		{tcell.KeyRune, 'j', ActionDown},
		{tcell.KeyLeft, 0, ActionLeft},
		{tcell.KeyRune, 'h', ActionLeft},
		{tcell.KeyRight, 0, ActionRight},
		{tcell.KeyRune, 'l', ActionRight},
		{tcell.KeyRune, 'z', ActionNone},
		{tcell.KeyTab, 0, ActionNone},
	}

	for _, tt := range tests {
		if got := actionForKey(tt.key, tt.r); got != tt.want {
			t.Errorf("actionForKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestActionForClick(t *testing.T) {
	tests := []struct {
		pressed tcell.ButtonMask
		want    Action
	}{
		{tcell.Button1, ActionReveal},
		{tcell.Button2, ActionFlag},
		{tcell.ButtonNone, ActionNone},
		{tcell.Button3, ActionNone},
	}
	for _, tt := range tests {
		if got := actionForClick(tt.pressed); got != tt.want {
			t.Errorf("actionForClick(%v) = %v, want %v", tt.pressed, got, tt.want)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActionFlag.String(); got != "flag" {
		t.Errorf("ActionFlag.String() = %q, want %q", got, "flag")
	}
	if got := Action(99).String(); got != "unknown" {
		t.Errorf("Action(99).String() = %q, want %q", got, "unknown")
	}
}

func TestApplyMovesAndReveals(t *testing.T) {
	g := newTestGame(t, fixedConfig(3, 1, minefield.Position{X: 0, Y: 0}))
	ctx := context.Background()

	g.apply(ctx, ActionRight)
	if got := g.session.Cursor(); got.X != 2 {
		t.Fatalf("cursor X = %d, want 2", got.X)
	}

	g.apply(ctx, ActionFlag)
	if !g.session.Snapshot().At(2, 0).Flagged {
		t.Error("ActionFlag should flag the cursor cell")
	}
	g.apply(ctx, ActionFlag)

	g.apply(ctx, ActionLeft)
	g.apply(ctx, ActionReveal)
	if !g.session.Snapshot().At(1, 0).Revealed {
		t.Error("ActionReveal should reveal the cursor cell")
	}

	g.apply(ctx, ActionLeft)
	g.apply(ctx, ActionReveal)
	if g.session.Status() != minefield.Lost {
		t.Errorf("Status() = %v, want lost", g.session.Status())
	}

	g.apply(ctx, ActionReset)
	if g.session.Status() != minefield.InProgress {
		t.Errorf("after reset Status() = %v, want in_progress", g.session.Status())
	}

	g.apply(ctx, ActionQuit)
	if g.running {
		t.Error("ActionQuit should stop the loop")
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := newTestGame(t, Config{Board: minefield.Config{Width: 5, Height: 5, Mines: 3}, Seed: 3})
	g.render()
	g.apply(context.Background(), ActionReveal)
	g.render()
}
