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

// Package gui contains the host displays for the LED matrix. Each display
// implements the hardware.Display interface and is found in its own sub
// package.
//
// The Tee type in this package allows a single render to be seen by more than
// one display. For example, a window on screen and the WAV writer.
package gui

import (
	"time"

	"github.com/jetsetilly/gopherlife/hardware"
	"github.com/jetsetilly/gopherlife/hardware/board"
)

// Tee fans a render out to a primary display and any number of observers.
// Observers are rendered first, in the order they were given. The primary
// display is rendered last because it is the display that blocks for the
// duration of the frame.
type Tee struct {
	primary   hardware.Display
	observers []hardware.Display
}

// NewTee is the preferred method of initialisation for the Tee type. Nil
// observers are ignored.
func NewTee(primary hardware.Display, observers ...hardware.Display) *Tee {
	tee := &Tee{primary: primary}
	for _, o := range observers {
		if o != nil {
			tee.observers = append(tee.observers, o)
		}
	}
	return tee
}

// Render implements the hardware.Display interface.
func (tee *Tee) Render(b board.Board, d time.Duration) {
	for _, o := range tee.observers {
		o.Render(b, d)
	}
	if tee.primary != nil {
		tee.primary.Render(b, d)
	}
}
