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

// Package limiter paces a loop to a fixed frame duration. Displays use it so
// that every call to Render() occupies exactly one frame slot.
//
//	lmtr := limiter.NewLimiter(100 * time.Millisecond)
//	for {
//		renderImage()
//		lmtr.Wait()
//	}
//
// The underlying time.Ticker drops ticks for a slow receiver, so a frame that
// overruns is not followed by a burst of short frames.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter waits for the next frame boundary.
type Limiter struct {
	pulse    *time.Ticker
	duration time.Duration

	// the measured number of frames per second is the number of calls to
	// Wait() divided by the elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// measurements are taken no more often than this
	measurePeriod time.Duration

	// the most recent measurement
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(duration time.Duration) *Limiter {
	lmtr := &Limiter{
		duration:      duration,
		pulse:         time.NewTicker(duration),
		measureTime:   time.Now(),
		measurePeriod: time.Second,
	}
	lmtr.Measured.Store(float32(0.0))
	return lmtr
}

// Duration returns the current frame duration.
func (lmtr *Limiter) Duration() time.Duration {
	return lmtr.duration
}

// SetDuration changes the frame duration. Nothing happens if the duration
// hasn't changed.
func (lmtr *Limiter) SetDuration(duration time.Duration) {
	if duration == lmtr.duration || duration <= 0 {
		return
	}
	lmtr.duration = duration
	lmtr.pulse.Reset(duration)

	// restart measurement
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// Wait blocks until the next frame boundary.
func (lmtr *Limiter) Wait() {
	<-lmtr.pulse.C
	lmtr.measureCt++

	t := time.Now()
	if e := t.Sub(lmtr.measureTime); e >= lmtr.measurePeriod {
		lmtr.Measured.Store(float32(lmtr.measureCt) / float32(e.Seconds()))
		lmtr.measureTime = t
		lmtr.measureCt = 0
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
}
