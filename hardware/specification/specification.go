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

// Package specification contains the fixed characteristics of the LED matrix
// hardware and the timings of the frame controller. All values are
// compile-time constants and cannot be changed at runtime.
package specification

import "time"

// GridSize is the number of rows and columns in the LED matrix.
const GridSize = 5

// NumCells is the total number of LEDs in the matrix.
const NumCells = GridSize * GridSize

// FrameDuration is how long each frame is displayed for. It defines the frame
// rate of the whole system (10 frames per second).
const FrameDuration = 100 * time.Millisecond

// the durations of the two cooldown periods
const (
	// how long a board with no live cells is left alone before it is
	// randomised
	DeadResetDuration = 500 * time.Millisecond

	// minimum time between two complement actions
	ComplementDuration = 500 * time.Millisecond
)

// The cooldown periods expressed as a number of frames. These are the values
// used by the cooldown timers.
const (
	DeadResetFrames  = int(DeadResetDuration / FrameDuration)
	ComplementFrames = int(ComplementDuration / FrameDuration)
)
