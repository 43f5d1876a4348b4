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

// Package cooldown implements a frame counting timer. The timer counts up from
// zero to a total value, at which point it is said to be "finished" or
// expired. Once finished the timer stays finished until it is reset.
//
// The same type is used for two different purposes by the frame controller.
// The death-reset timer asks Tick() to reset the timer automatically as it
// expires, so that it can fire repeatedly. The complement timer does not, and
// is reset explicitly when a complement action takes place.
package cooldown

import "fmt"

// Timer counts frames. The zero value is a timer with a total of zero frames,
// which is always finished.
type Timer struct {
	total   int
	current int
}

// NewTimer is the preferred method of initialisation for the Timer type. The
// start value is clamped to the range 0 to total. A start value equal to the
// total creates a timer that is already finished.
func NewTimer(total int, start int) *Timer {
	if total < 0 {
		total = 0
	}
	tmr := &Timer{total: total}
	tmr.set(start)
	return tmr
}

func (tmr *Timer) set(v int) {
	if v < 0 {
		v = 0
	} else if v > tmr.total {
		v = tmr.total
	}
	tmr.current = v
}

func (tmr Timer) String() string {
	return fmt.Sprintf("%d/%d", tmr.current, tmr.total)
}

// Total returns the number of frames the timer counts to.
func (tmr Timer) Total() int {
	return tmr.total
}

// Current returns the number of frames elapsed since the timer was last
// reset.
func (tmr Timer) Current() int {
	return tmr.current
}

// Reset the timer to zero.
func (tmr *Timer) Reset() {
	tmr.current = 0
}

// Tick advances the timer by one frame and returns true if the timer is now
// finished. The count never goes beyond the total.
//
// If autoReset is true and the timer is finished then the timer is reset to
// zero before the function returns. The return value is still true in this
// case.
func (tmr *Timer) Tick(autoReset bool) bool {
	tmr.set(tmr.current + 1)

	finished := tmr.Finished()
	if finished && autoReset {
		tmr.Reset()
	}

	return finished
}

// Finished returns true if the timer has expired.
func (tmr Timer) Finished() bool {
	return tmr.current == tmr.total
}
