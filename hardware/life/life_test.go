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

package life_test

import (
	"testing"

	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/life"
	"github.com/jetsetilly/gopherlife/test"
)

func TestDeadBoardStaysDead(t *testing.T) {
	var b board.Board
	test.ExpectSuccess(t, life.IsTerminal(&b))
	life.Step(&b)
	test.ExpectSuccess(t, life.IsTerminal(&b))
}

func TestIsTerminal(t *testing.T) {
	var b board.Board
	test.ExpectSuccess(t, life.IsTerminal(&b))

	// any single live cell means the board is not terminal
	for row := range b {
		for col := range b[row] {
			var s board.Board
			s[row][col] = true
			test.ExpectFailure(t, life.IsTerminal(&s))
		}
	}

	b = board.Parse("#####\n#####\n#####\n#####\n#####")
	test.ExpectFailure(t, life.IsTerminal(&b))
}

func TestNeighboursAtEdges(t *testing.T) {
	b := board.Parse("#####\n#####\n#####\n#####\n#####")

	// no wraparound so corners have three neighbours and edges have five
	test.ExpectEquality(t, life.Neighbours(&b, 0, 0), 3)
	test.ExpectEquality(t, life.Neighbours(&b, 4, 4), 3)
	test.ExpectEquality(t, life.Neighbours(&b, 0, 2), 5)
	test.ExpectEquality(t, life.Neighbours(&b, 2, 4), 5)
	test.ExpectEquality(t, life.Neighbours(&b, 2, 2), 8)
}

func TestBlockGolden(t *testing.T) {
	// a 3x3 block in the centre of the board. the centre cell has eight
	// neighbours and dies. the edge cells of the block have five neighbours
	// and die. the corners of the block have three neighbours and survive.
	// the dead cells at the midpoints of the board edges have three
	// neighbours and are born.
	b := board.Parse(`
.....
.###.
.###.
.###.
.....`)

	life.Step(&b)

	test.ExpectEquality(t, b.String(), "..#..\n.#.#.\n#...#\n.#.#.\n..#..")
}

func TestFullBoard(t *testing.T) {
	// only the corners, with three neighbours each, survive
	b := board.Parse("#####\n#####\n#####\n#####\n#####")
	life.Step(&b)
	test.ExpectEquality(t, b.String(), "#...#\n.....\n.....\n.....\n#...#")
}

func TestBlinker(t *testing.T) {
	b := board.Parse(".....\n.....\n.###.\n.....\n.....")

	life.Step(&b)
	test.ExpectEquality(t, b.String(), ".....\n..#..\n..#..\n..#..\n.....")

	life.Step(&b)
	test.ExpectEquality(t, b.String(), ".....\n.....\n.###.\n.....\n.....")
}

func TestStillLife(t *testing.T) {
	// a block in the corner is stable even against the edge of the board
	b := board.Parse("##...\n##...\n.....\n.....\n.....")
	life.Step(&b)
	test.ExpectEquality(t, b.String(), "##...\n##...\n.....\n.....\n.....")
}

func TestGliderDiesAtEdge(t *testing.T) {
	b := board.Parse(".#...\n..#..\n###..\n.....\n.....")

	// with no wraparound the glider eventually runs into the corner and
	// becomes a still life block
	for range 20 {
		life.Step(&b)
	}
	test.ExpectEquality(t, b.String(), ".....\n.....\n.....\n...##\n...##")
}

func TestSnapshotConsistency(t *testing.T) {
	// a single row of two cells. if updates were made in place then the
	// second cell would see the first cell already dead. both must die
	b := board.Parse("##...\n.....\n.....\n.....\n.....")
	life.Step(&b)
	test.ExpectSuccess(t, life.IsTerminal(&b))
}
