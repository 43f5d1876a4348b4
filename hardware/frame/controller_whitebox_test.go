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

package frame

import (
	"testing"

	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/buttons"
	"github.com/jetsetilly/gopherlife/hardware/cooldown"
	"github.com/jetsetilly/gopherlife/test"
)

type fixedSource uint32

func (f fixedSource) Uint32() uint32 {
	return uint32(f)
}

type fixedPin bool

func (p fixedPin) Grounded() bool {
	return bool(p)
}

// newWhitebox creates a controller with timers in the specified states and
// with an empty board
func newWhitebox(dead *cooldown.Timer, complement *cooldown.Timer, a bool, b bool, rnd uint32) *Controller {
	return &Controller{
		deadReset:  dead,
		complement: complement,
		buttonA:    buttons.NewButtonA(fixedPin(a)),
		buttonB:    buttons.NewButtonB(fixedPin(b)),
		rnd:        fixedSource(rnd),
		lastAction: ActionLifeStep,
	}
}

func TestDeadTimerFiresOnFrame(t *testing.T) {
	// death timer is one tick from expiry and the complement timer has just
	// been reset
	ctl := newWhitebox(cooldown.NewTimer(5, 4), cooldown.NewTimer(5, 0), false, false, 0x00123456)

	test.ExpectEquality(t, ctl.Step(), ActionDeadRandomize)
	test.ExpectEquality(t, ctl.board, board.FromBits(0x00123456))

	// death timer reset itself as it fired
	test.ExpectEquality(t, ctl.deadReset.Current(), 0)

	// complement timer was ticked but not reset
	test.ExpectEquality(t, ctl.complement.Current(), 1)
	test.ExpectFailure(t, ctl.complement.Finished())
}

func TestButtonAOnlyAction(t *testing.T) {
	// terminal board, both buttons pressed, complement available and the
	// death timer one tick from expiry
	ctl := newWhitebox(cooldown.NewTimer(5, 4), cooldown.NewTimer(5, 5), true, true, 0x01000001)

	test.ExpectEquality(t, ctl.Step(), ActionRandomize)
	test.ExpectEquality(t, ctl.board, board.FromBits(0x01000001))

	// death timer was reset and not ticked
	test.ExpectEquality(t, ctl.deadReset.Current(), 0)

	// the complement timer was not reset by a complement action. it was only
	// ticked, which leaves it expired
	test.ExpectEquality(t, ctl.complement.Current(), 5)
	test.ExpectSuccess(t, ctl.complement.Finished())
}

func TestCooldownSuppressesOtherBranches(t *testing.T) {
	ctl := newWhitebox(cooldown.NewTimer(5, 3), cooldown.NewTimer(5, 2), false, true, 0x01ffffff)

	test.ExpectEquality(t, ctl.Step(), ActionCooldown)

	// board is still dead and was not randomised by the death timer
	test.ExpectEquality(t, ctl.board.Population(), 0)
	test.ExpectEquality(t, ctl.deadReset.Current(), 0)
	test.ExpectEquality(t, ctl.complement.Current(), 3)
}

func TestComplementResetsTimer(t *testing.T) {
	ctl := newWhitebox(cooldown.NewTimer(5, 2), cooldown.NewTimer(5, 5), false, true, 0)

	test.ExpectEquality(t, ctl.Step(), ActionComplement)
	test.ExpectEquality(t, ctl.board.Population(), 25)

	// reset by the complement action and then ticked once
	test.ExpectEquality(t, ctl.complement.Current(), 1)
	test.ExpectEquality(t, ctl.deadReset.Current(), 0)
}

func TestLifeStepResetsDeadTimer(t *testing.T) {
	ctl := newWhitebox(cooldown.NewTimer(5, 3), cooldown.NewTimer(5, 1), false, false, 0)
	ctl.board = board.Parse(".....\n.....\n.###.\n.....\n.....")

	test.ExpectEquality(t, ctl.Step(), ActionLifeStep)
	test.ExpectEquality(t, ctl.deadReset.Current(), 0)
	test.ExpectEquality(t, ctl.complement.Current(), 2)
}

func TestDeadWaitTicksDeadTimer(t *testing.T) {
	ctl := newWhitebox(cooldown.NewTimer(5, 1), cooldown.NewTimer(5, 5), false, false, 0x01ffffff)

	test.ExpectEquality(t, ctl.Step(), ActionDeadWait)
	test.ExpectEquality(t, ctl.deadReset.Current(), 2)
	test.ExpectEquality(t, ctl.board.Population(), 0)
	test.ExpectEquality(t, ctl.String(), "frame=1 dead=2/5 complement=5/5")
}
