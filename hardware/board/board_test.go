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

package board_test

import (
	"testing"

	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/test"
)

// counts the number of times Uint32() is called
type countingSource struct {
	value uint32
	calls int
}

func (src *countingSource) Uint32() uint32 {
	src.calls++
	return src.value
}

func TestRandomizeSingleDraw(t *testing.T) {
	src := &countingSource{value: 0xffffffff}

	var b board.Board
	b.Randomize(src)
	test.ExpectEquality(t, src.calls, 1)

	// all 25 cells are alive and bits above bit 24 are ignored
	test.ExpectEquality(t, b.Population(), 25)
	test.ExpectEquality(t, b.Bits(), uint32(0x01ffffff))
}

func TestRandomizeBitMapping(t *testing.T) {
	// bit 0 is the top-left cell, bit 4 is the end of the first row, bit 5 is
	// the start of the second row and bit 24 is the bottom-right cell
	src := &countingSource{value: 1<<0 | 1<<4 | 1<<5 | 1<<12 | 1<<24}

	var b board.Board
	b.Randomize(src)
	test.ExpectEquality(t, b.String(), "#...#\n#....\n..#..\n.....\n....#")
}

func TestRandomizeReplacesBoard(t *testing.T) {
	b := board.Parse("#####\n#####\n#####\n#####\n#####")
	b.Randomize(&countingSource{value: 0})
	test.ExpectEquality(t, b.Population(), 0)
}

func TestComplement(t *testing.T) {
	b := board.Parse("#....\n.#...\n..#..\n...#.\n....#")
	b.Complement()
	test.ExpectEquality(t, b.String(), ".####\n#.###\n##.##\n###.#\n####.")
	test.ExpectEquality(t, b.Population(), 20)

	// complementing twice restores the original
	b.Complement()
	test.ExpectEquality(t, b.String(), "#....\n.#...\n..#..\n...#.\n....#")
}

func TestBits(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x00aaaaaa, 0x01555555, 0x01ffffff} {
		test.ExpectEquality(t, board.FromBits(v).Bits(), v)
	}
}

func TestParse(t *testing.T) {
	b := board.Parse("  .#.  \n.#.\n")
	test.ExpectEquality(t, b.Population(), 2)
	test.ExpectEquality(t, b[0][1], true)
	test.ExpectEquality(t, b[1][1], true)
}
