package grid

import "math"

// Position returns the row and column of a card, or -1, -1 if the index is
// out of range.
func (g Grid) Position(index int) (row, col int) {
	if index < 0 || g.Columns <= 0 || index >= len(g.Cards) {
		return -1, -1
	}
	return index / g.Columns, index % g.Columns
}

// At returns the card index at a row and column.
func (g Grid) At(row, col int) (int, bool) {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Rows[row]) {
		return -1, false
	}
	return g.Rows[row][col], true
}

// LastCol returns the index of the last column that holds a card in any row.
func (g Grid) LastCol() int {
	lastCol := -1
	for _, row := range g.Rows {
		if len(row)-1 > lastCol {
			lastCol = len(row) - 1
		}
	}
	return lastCol
}

// LastRowInCol returns the index of the last row that has a card in col.
func (g Grid) LastRowInCol(col int) int {
	lastRow := -1
	if col < 0 {
		return lastRow
	}
	for r, row := range g.Rows {
		if col < len(row) {
			lastRow = r
		}
	}
	return lastRow
}

// Neighbor finds the nearest card from index in the given direction and
// returns index itself when there is none.
func (g Grid) Neighbor(index, rowDir, colDir int) int {
	curRow, curCol := g.Position(index)
	if curRow < 0 {
		return index
	}

	best := index
	minDist := math.MaxFloat64
	for r, row := range g.Rows {
		for c, i := range row {
			if i == index {
				continue
			}
			rowDiff := r - curRow
			colDiff := c - curCol
			isCorrectDirection := (rowDir > 0 && rowDiff > 0) ||
				(rowDir < 0 && rowDiff < 0) ||
				(colDir > 0 && colDiff > 0) ||
				(colDir < 0 && colDiff < 0)
			if !isCorrectDirection {
				continue
			}
			dist := math.Hypot(float64(rowDiff), float64(colDiff))
			if dist < minDist {
				minDist = dist
				best = i
			}
		}
	}
	return best
}
