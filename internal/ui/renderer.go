package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/minesweeper/internal/minefield"
	"github.com/samdwyer/minesweeper/internal/theme"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *theme.Theme
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, th *theme.Theme) *Renderer {
	return &Renderer{screen: screen, theme: th}
}

// Render draws the counters, the board and the status line.
func (r *Renderer) Render(snap minefield.Snapshot, cursor minefield.Position) {
	r.screen.Clear()

	needW, needH := RequiredSize(snap.Width, snap.Height)
	if w, h := r.screen.Size(); w < needW || h < needH {
		r.screen.DrawText(0, 0, gotext.Get("Terminal too small: need %dx%d", needW, needH),
			tcell.StyleDefault.Foreground(tcell.ColorRed))
		r.screen.Show()
		return
	}

	header := gotext.Get("Mines left: %d  Flags: %d", snap.MinesRemaining(), snap.Flags)
	r.screen.DrawText(originX, 0, header, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			look := r.theme.Appearance(snap.Cells[y][x])
			sx, sy := CellToScreen(x, y)
			r.screen.SetContent(sx, sy, look.Rune(), look.Style())
		}
	}

	if snap.At(cursor.X, cursor.Y).IsValid() && !snap.Status.IsTerminal() {
		left, right := r.theme.CursorRunes()
		sx, sy := CellToScreen(cursor.X, cursor.Y)
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.SetContent(sx-1, sy, left, style)
		r.screen.SetContent(sx+1, sy, right, style)
	}

	statusY := originY + snap.Height + 1
	if msg := StatusText(snap.Status); msg != "" {
		r.screen.DrawText(originX, statusY, msg, r.theme.StatusStyle())
	}
	r.screen.DrawText(originX, statusY+1,
		gotext.Get("click/space: reveal  right-click/f: flag  r: new game  q: quit"),
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// StatusText returns the translated banner for a finished game, or "".
func StatusText(s minefield.Status) string {
	switch s {
	case minefield.Lost:
		return gotext.Get("GAME OVER")
	case minefield.Won:
		return gotext.Get("U R WINNER")
	default:
		return ""
	}
}
