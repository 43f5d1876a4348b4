// This file is part of Gopherlife.
//
// Gopherlife is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherlife is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherlife.  If not, see <https://www.gnu.org/licenses/>.

// Package life implements the standard B3/S23 rule of Conway's Game of Life
// for the Board type.
//
// The edges of the board are hard boundaries. Cells outside the board do not
// exist and so a corner cell has only three neighbours and an edge cell has
// only five.
package life

import (
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/specification"
)

// IsTerminal returns true if every cell on the board is dead.
func IsTerminal(b *board.Board) bool {
	for row := range b {
		for col := range b[row] {
			if b[row][col] {
				return false
			}
		}
	}
	return true
}

// Neighbours returns the number of live cells surrounding the cell at row and
// col. The cell itself is not counted.
func Neighbours(b *board.Board, row, col int) int {
	n := 0
	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= specification.GridSize {
			continue
		}
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= specification.GridSize {
				continue
			}
			if r == row && c == col {
				continue
			}
			if b[r][c] {
				n++
			}
		}
	}
	return n
}

// Step advances the board by one generation. Every cell of the next
// generation is calculated from a snapshot of the current generation.
func Step(b *board.Board) {
	// copying the array gives us the snapshot
	current := *b

	for row := range b {
		for col := range b[row] {
			n := Neighbours(&current, row, col)
			b[row][col] = n == 3 || (current[row][col] && n == 2)
		}
	}
}
