package game

import "github.com/gdamore/tcell/v2"

// Action is a player command decoded from a terminal event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionReveal
	ActionFlag
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionReset:
		return "reset"
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return "unknown"
	}
}

// actionForKey maps a key press to an action. Runes are only consulted for
// tcell.KeyRune.
func actionForKey(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionReveal
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R':
			return ActionReset
		case ' ':
			return ActionReveal
		case 'f', 'F':
			return ActionFlag
		case 'k':
			return ActionUp
		case 'j':
			return ActionDown
		case 'h':
			return ActionLeft
		case 'l':
			return ActionRight
		}
	}
	return ActionNone
}

// actionForClick maps newly pressed mouse buttons to an action.
func actionForClick(pressed tcell.ButtonMask) Action {
	switch {
	case pressed&tcell.Button1 != 0:
		return ActionReveal
	case pressed&tcell.Button2 != 0:
		return ActionFlag
	default:
		return ActionNone
	}
}
