package theme

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/minefield"
)

// Glyphs are the strings drawn for each cell appearance.
type Glyphs struct {
	Hidden   string `json:"hidden"`
	Empty    string `json:"empty"`
	Flag     string `json:"flag"`
	Mine     string `json:"mine"`
	Exploded string `json:"exploded"`
	Cursor   string `json:"cursor"` // Two runes drawn either side of the selected cell
}

// Colors are hex colour codes (e.g. "#FF0000") for each cell appearance.
type Colors struct {
	Hidden   string `json:"hidden"`
	Empty    string `json:"empty"`
	Flag     string `json:"flag"`
	Mine     string `json:"mine"`
	Exploded string `json:"exploded"`
	Status   string `json:"status"`
}

// Theme defines how a board is drawn, loaded from JSON.
type Theme struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Glyphs  Glyphs    `json:"glyphs"`
	Colors  Colors    `json:"colors"`
	Numbers [8]string `json:"numbers"` // Colour for adjacent counts 1..8
}

// Appearance is the glyph and colour to use for one cell.
type Appearance struct {
	Glyph string
	Hex   string
}

// Style returns the tcell style for the appearance.
func (a Appearance) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(color(a.Hex, tcell.ColorWhite))
}

// Rune returns the first rune of the glyph, or '?' when it is empty.
func (a Appearance) Rune() rune {
	for _, r := range a.Glyph {
		return r
	}
	return '?'
}

// Appearance picks the glyph and colour for a cell as the player should see it.
func (t *Theme) Appearance(c minefield.Cell) Appearance {
	switch {
	case !c.Revealed && c.Flagged:
		return Appearance{Glyph: t.Glyphs.Flag, Hex: t.Colors.Flag}
	case !c.Revealed:
		return Appearance{Glyph: t.Glyphs.Hidden, Hex: t.Colors.Hidden}
	case c.Exploded:
		return Appearance{Glyph: t.Glyphs.Exploded, Hex: t.Colors.Exploded}
	case c.Kind == minefield.Mine:
		return Appearance{Glyph: t.Glyphs.Mine, Hex: t.Colors.Mine}
	case c.Kind == minefield.Number && c.Adjacent >= 1 && c.Adjacent <= len(t.Numbers):
		return Appearance{Glyph: string(rune('0' + c.Adjacent)), Hex: t.Numbers[c.Adjacent-1]}
	default:
		return Appearance{Glyph: t.Glyphs.Empty, Hex: t.Colors.Empty}
	}
}

// StatusStyle returns the style for the status line.
func (t *Theme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(color(t.Colors.Status, tcell.ColorYellow)).Bold(true)
}

// CursorRunes returns the runes drawn left and right of the selected cell.
func (t *Theme) CursorRunes() (rune, rune) {
	runes := []rune(t.Glyphs.Cursor)
	if len(runes) < 2 {
		return '[', ']'
	}
	return runes[0], runes[1]
}
