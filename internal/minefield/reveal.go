package minefield

import "github.com/zyedidia/generic/stack"

// Reveal uncovers the cell at (x, y) and returns the resulting status.
// Out-of-bounds coordinates, revealed cells and finished games are ignored.
// Flags do not protect a cell from being revealed.
func (b *Board) Reveal(x, y int) Status {
	if b.gameOver {
		return b.status
	}

	cell := b.GetCell(x, y)
	if !cell.IsValid() || cell.Revealed {
		return b.status
	}

	switch cell.Kind {
	case Mine:
		b.explode(cell.Position)
	case Empty:
		b.flood(cell.Position)
		b.CheckWinCondition()
	default:
		b.cells[y][x].Revealed = true
		b.CheckWinCondition()
	}

	return b.status
}

// flood reveals the 4-connected region of Empty cells around start together
// with the Number cells on its border. It uses an explicit stack so the depth
// does not grow with the board.
func (b *Board) flood(start Position) {
	work := stack.New[Position]()
	work.Push(start)

	for work.Size() > 0 {
		p := work.Pop()
		cell := b.GetCell(p.X, p.Y)
		if cell.Revealed || cell.Kind == Mine || cell.Kind == Invalid {
			continue
		}

		b.cells[p.Y][p.X].Revealed = true

		if cell.Kind == Empty {
			for _, n := range p.orthogonal() {
				work.Push(n)
			}
		}
	}
}

// explode ends the game on the mine at p and uncovers every mine.
func (b *Board) explode(p Position) {
	cell := &b.cells[p.Y][p.X]
	cell.Revealed = true
	cell.Exploded = true

	b.revealMines()
	b.status = Lost
	b.gameOver = true
}

// CheckWinCondition scans the board and, when every safe cell is revealed,
// uncovers the mines and ends the game as Won.
func (b *Board) CheckWinCondition() Status {
	if b.gameOver {
		return b.status
	}

	for y := range b.cells {
		for x := range b.cells[y] {
			cell := b.cells[y][x]
			if cell.Kind != Mine && !cell.Revealed {
				return b.status
			}
		}
	}

	b.revealMines()
	b.status = Won
	b.gameOver = true
	return b.status
}

func (b *Board) revealMines() {
	b.each(func(c *Cell) {
		if c.Kind == Mine {
			c.Revealed = true
		}
	})
}

// ToggleFlag flips the flag on a hidden cell and reports whether anything
// changed. Flags are markers only.
func (b *Board) ToggleFlag(x, y int) bool {
	if b.gameOver {
		return false
	}

	cell := b.GetCell(x, y)
	if !cell.IsValid() || cell.Revealed {
		return false
	}

	b.cells[y][x].Flagged = !cell.Flagged
	return true
}
