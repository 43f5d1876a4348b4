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

package hardware

import (
	"time"

	"github.com/jetsetilly/gopherlife/curated"
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/buttons"
)

// Display renders a snapshot of the board. The Render() function should block
// for the specified duration while the board is being shown.
type Display interface {
	Render(b board.Board, d time.Duration)
}

// MissingPeripheral is the sentinal error pattern returned by
// NewPeripherals() when a peripheral has not been supplied.
const MissingPeripheral = "peripherals: missing %s"

// Peripherals are the external collaborators of the device.
type Peripherals struct {
	Display Display
	Random  board.RandomSource
	PinA    buttons.Pin
	PinB    buttons.Pin
}

// NewPeripherals is the preferred method of initialisation for the Peripherals
// type. An error is returned if any of the arguments are nil. The error
// should be considered fatal.
func NewPeripherals(display Display, rnd board.RandomSource, pinA buttons.Pin, pinB buttons.Pin) (*Peripherals, error) {
	if display == nil {
		return nil, curated.Errorf(MissingPeripheral, "display")
	}
	if rnd == nil {
		return nil, curated.Errorf(MissingPeripheral, "random source")
	}
	if pinA == nil {
		return nil, curated.Errorf(MissingPeripheral, "pin for button A")
	}
	if pinB == nil {
		return nil, curated.Errorf(MissingPeripheral, "pin for button B")
	}

	return &Peripherals{
		Display: display,
		Random:  rnd,
		PinA:    pinA,
		PinB:    pinB,
	}, nil
}
