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

// Package board defines the state of the LED matrix. Each cell of the Board
// is either alive (LED lit) or dead (LED dark).
//
// The Board type is a fixed size array and so copying a Board value creates an
// independent snapshot. Displays are given snapshots and so can never alter
// the board owned by the frame controller.
package board

import (
	"strings"

	"github.com/jetsetilly/gopherlife/hardware/specification"
)

// RandomSource produces one 32-bit random value on every call.
type RandomSource interface {
	Uint32() uint32
}

// Board is the 5x5 matrix of cells, indexed by row and then column.
type Board [specification.GridSize][specification.GridSize]bool

// FromBits creates a Board from the low 25 bits of v. Bit i is mapped to the
// cell at row i/5 and column i%5.
func FromBits(v uint32) Board {
	var b Board
	for i := 0; i < specification.NumCells; i++ {
		b[i/specification.GridSize][i%specification.GridSize] = v&(1<<i) != 0
	}
	return b
}

// Bits is the inverse of FromBits().
func (b Board) Bits() uint32 {
	var v uint32
	for i := 0; i < specification.NumCells; i++ {
		if b[i/specification.GridSize][i%specification.GridSize] {
			v |= 1 << i
		}
	}
	return v
}

// Randomize fills the board from a single random draw. Only the low 25 bits
// of the value are used.
func (b *Board) Randomize(src RandomSource) {
	*b = FromBits(src.Uint32())
}

// Complement inverts every cell.
func (b *Board) Complement() {
	for row := range b {
		for col := range b[row] {
			b[row][col] = !b[row][col]
		}
	}
}

// Population returns the number of live cells.
func (b Board) Population() int {
	n := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col] {
				n++
			}
		}
	}
	return n
}

// the characters used by String()
const (
	aliveChar = '#'
	deadChar  = '.'
)

// String returns one line per row with live cells shown as '#' and dead
// cells shown as '.'. There is no trailing newline.
func (b Board) String() string {
	s := strings.Builder{}
	for row := range b {
		if row > 0 {
			s.WriteRune('\n')
		}
		for col := range b[row] {
			if b[row][col] {
				s.WriteRune(aliveChar)
			} else {
				s.WriteRune(deadChar)
			}
		}
	}
	return s.String()
}

// Parse is the inverse of String(). Whitespace around each row is ignored. Any
// character other than '#' is considered a dead cell. Missing rows or columns
// are dead.
func Parse(s string) Board {
	var b Board
	rows := strings.Split(strings.TrimSpace(s), "\n")
	for row := 0; row < len(rows) && row < specification.GridSize; row++ {
		r := strings.TrimSpace(rows[row])
		for col := 0; col < len(r) && col < specification.GridSize; col++ {
			b[row][col] = r[col] == aliveChar
		}
	}
	return b
}
