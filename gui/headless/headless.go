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

// Package headless is a display that shows nothing. It is useful for
// performance measurement, for playback verification and for tests.
package headless

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/logger"
	"github.com/jetsetilly/gopherlife/performance/limiter"
)

// Headless implements the hardware.Display interface.
type Headless struct {
	lmtr *limiter.Limiter

	// if uncapped is true then Render() returns immediately
	uncapped bool

	// the board is added to the log each frame if verbose is true
	verbose bool

	frames atomic.Int64
	last   atomic.Uint32
}

// NewHeadless is the preferred method of initialisation for the Headless type.
//
// An uncapped display does not block in Render(). This is contrary to the
// contract of the hardware.Display interface but is useful when the speed of
// the frame controller is being measured.
func NewHeadless(uncapped bool, verbose bool) *Headless {
	hl := &Headless{
		uncapped: uncapped,
		verbose:  verbose,
	}
	if !uncapped {
		hl.lmtr = limiter.NewLimiter(time.Millisecond)
	}
	return hl
}

// AllowLogging implements the logger.Permission interface.
func (hl *Headless) AllowLogging() bool {
	return hl.verbose
}

// Render implements the hardware.Display interface.
func (hl *Headless) Render(b board.Board, d time.Duration) {
	frame := hl.frames.Add(1)
	hl.last.Store(b.Bits())
	logger.Logf(hl, "headless", "frame %d\n%s", frame, b.String())

	if hl.uncapped {
		return
	}
	hl.lmtr.SetDuration(d)
	hl.lmtr.Wait()
}

// Frames returns the number of frames rendered.
func (hl *Headless) Frames() int {
	return int(hl.frames.Load())
}

// Last returns the most recently rendered board.
func (hl *Headless) Last() board.Board {
	return board.FromBits(hl.last.Load())
}

// Measured returns the measured frames per second. Always zero for an uncapped
// display.
func (hl *Headless) Measured() float32 {
	if hl.lmtr == nil {
		return 0
	}
	return hl.lmtr.Measured.Load().(float32)
}

// Stop should be called when the display is no longer required.
func (hl *Headless) Stop() {
	if hl.lmtr != nil {
		hl.lmtr.Stop()
	}
}

// Open is a pin that is never grounded. It stands in for a button that is not
// connected to anything.
type Open struct{}

// Grounded implements the buttons.Pin interface.
func (Open) Grounded() bool {
	return false
}
