// Package game connects a minefield to a terminal: it owns the session,
// decodes input and redraws after every action.
package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/theme"
	"github.com/samdwyer/minesweeper/internal/ui"
)

// Game runs the interactive terminal front-end.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	buttons  tcell.ButtonMask // mouse buttons held at the last event
	running  bool
}

// New creates a game drawing to the real terminal.
func New(session *Session, th *theme.Theme) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, session, th), nil
}

// NewWithScreen creates a game on an already initialized screen.
func NewWithScreen(screen *ui.Screen, session *Session, th *theme.Theme) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, th),
		session:  session,
		running:  true,
	}
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	for g.running {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) render() {
	g.renderer.Render(g.session.Snapshot(), g.session.Cursor())
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, actionForKey(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleMouseEvent acts on button presses, ignoring drags and releases.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ g.buttons
	g.buttons = buttons

	action := actionForClick(pressed)
	if action == ActionNone {
		return
	}

	sx, sy := ev.Position()
	p := ui.ScreenToCell(sx, sy)
	g.session.SetCursor(p.X, p.Y)

	switch action {
	case ActionReveal:
		g.session.Reveal(ctx, p.X, p.Y)
	case ActionFlag:
		g.session.ToggleFlag(ctx, p.X, p.Y)
	}
}

// apply performs a decoded action against the session.
func (g *Game) apply(ctx context.Context, action Action) {
	switch action {
	case ActionQuit:
		g.running = false
	case ActionReset:
		g.session.Reset(ctx)
	case ActionReveal:
		g.session.RevealAtCursor(ctx)
	case ActionFlag:
		g.session.FlagAtCursor(ctx)
	case ActionUp:
		g.session.MoveCursor(0, -1)
	case ActionDown:
		g.session.MoveCursor(0, 1)
	case ActionLeft:
		g.session.MoveCursor(-1, 0)
	case ActionRight:
		g.session.MoveCursor(1, 0)
	}
}
