package minefield

// placeMines drops count mines at uniformly drawn coordinates. A draw that
// lands on an existing mine probes forward in row-major order, wrapping at the
// last column and the last row, and takes the first free cell. Probing keeps
// placement bounded but biases mines toward cells that follow clusters.
// count must not exceed the number of cells.
func (b *Board) placeMines(count int) {
	for i := 0; i < count; i++ {
		x := b.rng.Intn(b.width)
		y := b.rng.Intn(b.height)
		p := b.nextFree(Position{X: x, Y: y})
		b.cells[p.Y][p.X].Kind = Mine
	}
}

// nextFree returns the first non-mine cell at or after p in row-major order,
// wrapping from the end of the grid back to the origin.
func (b *Board) nextFree(p Position) Position {
	for b.cells[p.Y][p.X].Kind == Mine {
		p.X++
		if p.X >= b.width {
			p.X = 0
			p.Y++
			if p.Y >= b.height {
				p.Y = 0
			}
		}
	}
	return p
}

// placeLayout mines the given positions and returns how many distinct mines
// were placed.
func (b *Board) placeLayout(layout []Position) int {
	placed := 0
	for _, p := range layout {
		if !b.inBounds(p.X, p.Y) || b.cells[p.Y][p.X].Kind == Mine {
			continue
		}
		b.cells[p.Y][p.X].Kind = Mine
		placed++
	}
	return placed
}

// generateNumbers classifies every safe cell as Number or Empty.
func (b *Board) generateNumbers() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := &b.cells[y][x]
			if cell.Kind == Mine {
				continue
			}
			cell.Adjacent = b.countMines(x, y)
			if cell.Adjacent > 0 {
				cell.Kind = Number
			} else {
				cell.Kind = Empty
			}
		}
	}
}

// countMines counts mines among the in-bounds 8-neighbours of (x, y). The
// centre cell is never counted.
func (b *Board) countMines(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.GetCell(x+dx, y+dy).Kind == Mine {
				count++
			}
		}
	}
	return count
}
