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

// Package frame implements the frame controller. The controller owns the board
// and the two cooldown timers for the lifetime of the program and decides,
// once per frame, what should happen to the board.
//
// The decision is made in strict priority order. The first matching rule is
// the only rule applied for that frame:
//
//  1. Button A is pressed: the board is randomised. Holding the button
//     randomises the board every frame.
//
//  2. Button B is pressed: the board is complemented, but only if the
//     complement cooldown has expired. During the cooldown nothing happens
//     to the board at all.
//
//  3. Every cell is dead: the death-reset timer is advanced and the board is
//     randomised if the timer has expired.
//
//  4. Otherwise the board advances by one generation of the Life rules.
//
// Rules 1, 2 and 4 all reset the death-reset timer. The complement timer is
// advanced once every frame regardless of which rule was applied. Only then
// is the board rendered.
package frame

import (
	"fmt"

	"github.com/jetsetilly/gopherlife/hardware"
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/buttons"
	"github.com/jetsetilly/gopherlife/hardware/cooldown"
	"github.com/jetsetilly/gopherlife/hardware/life"
	"github.com/jetsetilly/gopherlife/hardware/specification"
	"github.com/jetsetilly/gopherlife/logger"
)

// Action describes the outcome of a single frame.
type Action int

// List of valid Action values.
const (
	// button A was pressed and the board randomised
	ActionRandomize Action = iota

	// button B was pressed and the board complemented
	ActionComplement

	// button B was pressed but the complement cooldown had not expired
	ActionCooldown

	// board is dead and the death-reset timer is still counting
	ActionDeadWait

	// board was dead for long enough and has been randomised
	ActionDeadRandomize

	// board advanced one generation
	ActionLifeStep
)

func (a Action) String() string {
	switch a {
	case ActionRandomize:
		return "randomize"
	case ActionComplement:
		return "complement"
	case ActionCooldown:
		return "cooldown"
	case ActionDeadWait:
		return "dead wait"
	case ActionDeadRandomize:
		return "dead randomize"
	case ActionLifeStep:
		return "life step"
	}
	panic("unknown frame action")
}

// Controller is the frame controller.
type Controller struct {
	board board.Board

	// the two cooldown timers. they are never merged and are ticked
	// independently
	deadReset  *cooldown.Timer
	complement *cooldown.Timer

	buttonA buttons.Button
	buttonB buttons.Button

	rnd     board.RandomSource
	display hardware.Display

	// number of frames since startup
	frameNum int

	// the action of the previous frame. used to decide whether to log
	lastAction Action
}

// NewController is the preferred method of initialisation for the Controller
// type. The board is randomised immediately.
//
// The death-reset timer starts at zero. The complement timer starts expired so
// that the first press of button B is honoured immediately.
func NewController(periph *hardware.Peripherals) *Controller {
	ctl := &Controller{
		deadReset:  cooldown.NewTimer(specification.DeadResetFrames, 0),
		complement: cooldown.NewTimer(specification.ComplementFrames, specification.ComplementFrames),
		buttonA:    buttons.NewButtonA(periph.PinA),
		buttonB:    buttons.NewButtonB(periph.PinB),
		rnd:        periph.Random,
		display:    periph.Display,
		lastAction: ActionLifeStep,
	}

	ctl.board.Randomize(ctl.rnd)
	logger.Logf(logger.Allow, "frame", "initial board %#07x", ctl.board.Bits())

	return ctl
}

func (ctl *Controller) String() string {
	return fmt.Sprintf("frame=%d dead=%s complement=%s", ctl.frameNum, ctl.deadReset, ctl.complement)
}

// Board returns a snapshot of the current board.
func (ctl *Controller) Board() board.Board {
	return ctl.board
}

// FrameNum returns the number of frames that have been decided since startup.
func (ctl *Controller) FrameNum() int {
	return ctl.frameNum
}

// Step decides what happens to the board this frame and ticks the complement
// timer. The board is not rendered.
func (ctl *Controller) Step() Action {
	var action Action

	if ctl.buttonA.Pressed() {
		ctl.deadReset.Reset()
		ctl.board.Randomize(ctl.rnd)
		action = ActionRandomize
	} else if ctl.buttonB.Pressed() {
		ctl.deadReset.Reset()
		if ctl.complement.Finished() {
			ctl.board.Complement()
			ctl.complement.Reset()
			action = ActionComplement
		} else {
			action = ActionCooldown
		}
	} else if life.IsTerminal(&ctl.board) {
		if ctl.deadReset.Tick(true) {
			ctl.board.Randomize(ctl.rnd)
			action = ActionDeadRandomize
		} else {
			action = ActionDeadWait
		}
	} else {
		ctl.deadReset.Reset()
		life.Step(&ctl.board)
		action = ActionLifeStep
	}

	ctl.complement.Tick(false)
	ctl.frameNum++

	ctl.log(action)

	return action
}

func (ctl *Controller) log(action Action) {
	defer func() {
		ctl.lastAction = action
	}()

	switch action {
	case ActionRandomize:
		if ctl.lastAction != ActionRandomize {
			logger.Logf(logger.Allow, "frame", "button A: randomising from frame %d", ctl.frameNum)
		}
	case ActionComplement:
		logger.Logf(logger.Allow, "frame", "button B: complemented on frame %d", ctl.frameNum)
	case ActionDeadRandomize:
		logger.Logf(logger.Allow, "frame", "dead board randomised on frame %d", ctl.frameNum)
	case ActionDeadWait:
		if ctl.lastAction == ActionLifeStep {
			logger.Logf(logger.Allow, "frame", "board died on frame %d", ctl.frameNum)
		}
	}
}

// Frame performs one complete frame: the decision, the timer tick and the
// rendering of the resulting board. Returns once the display has shown the
// board for the duration of one frame.
func (ctl *Controller) Frame() Action {
	action := ctl.Step()
	ctl.display.Render(ctl.board, specification.FrameDuration)
	return action
}

// Run the controller forever. The initial board is shown for one frame before
// the first decision is made. The function never returns.
func (ctl *Controller) Run() {
	ctl.RunUntil(func() bool { return true })
}

// RunUntil is the same as Run() except that the continueCheck function is
// called before every frame. The function returns as soon as continueCheck
// returns false.
func (ctl *Controller) RunUntil(continueCheck func() bool) {
	ctl.display.Render(ctl.board, specification.FrameDuration)
	for continueCheck() {
		_ = ctl.Frame()
	}
}
