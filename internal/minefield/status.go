package minefield

// Status is the outcome of the current game, derived from the grid.
type Status int

const (
	// InProgress means no mine has been hit and safe cells remain hidden.
	InProgress Status = iota
	// Lost means the player revealed a mine.
	Lost
	// Won means every safe cell is revealed.
	Won
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Message returns the banner shown for terminal states, or "" while playing.
func (s Status) Message() string {
	switch s {
	case Lost:
		return "GAME OVER"
	case Won:
		return "U R WINNER"
	default:
		return ""
	}
}

// IsTerminal reports whether the game has ended.
func (s Status) IsTerminal() bool {
	return s == Lost || s == Won
}
