package minefield

// Snapshot is a read-only copy of a board for rendering.
type Snapshot struct {
	ID     string
	Width  int
	Height int
	Mines  int
	Flags  int
	Status Status
	Cells  [][]Cell // indexed [y][x]
}

// Snapshot copies the current grid. Changes to the copy do not reach the board.
func (b *Board) Snapshot() Snapshot {
	cells := make([][]Cell, b.height)
	for y := range cells {
		cells[y] = make([]Cell, b.width)
		copy(cells[y], b.cells[y])
	}

	return Snapshot{
		ID:     b.ID,
		Width:  b.width,
		Height: b.height,
		Mines:  b.mines,
		Flags:  b.FlagCount(),
		Status: b.status,
		Cells:  cells,
	}
}

// At returns the cell at (x, y), or an Invalid cell outside the grid.
func (s Snapshot) At(x, y int) Cell {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Cell{}
	}
	return s.Cells[y][x]
}

// MinesRemaining is the mine count minus placed flags. It may go negative.
func (s Snapshot) MinesRemaining() int {
	return s.Mines - s.Flags
}
