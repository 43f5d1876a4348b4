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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherlife/curated"
	"github.com/jetsetilly/gopherlife/gui/headless"
	"github.com/jetsetilly/gopherlife/hardware"
	"github.com/jetsetilly/gopherlife/hardware/frame"
	"github.com/jetsetilly/gopherlife/random"
)

// the period of time the controller runs for before measurement begins. gives
// the frame rate time to settle down.
const leadTime = 2 * time.Second

// Check the performance of the frame controller.
//
// The controller will run for the specified duration, with a headless display
// and unconnected buttons. A cpu profile, a memory profile, a trace (or a
// combination of those) will be created as defined by the Profile argument.
//
// An uncapped check does not limit the frame rate and so measures the speed
// of the controller itself.
func Check(output io.Writer, profile Profile, uncapped bool, seed int64, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	return check(output, profile, uncapped, seed, leadTime, dur)
}

func check(output io.Writer, profile Profile, uncapped bool, seed int64, lead time.Duration, dur time.Duration) error {
	if dur <= 0 {
		return curated.Errorf("performance: %v", "duration must be positive")
	}

	display := headless.NewHeadless(uncapped, false)
	defer display.Stop()

	periph, err := hardware.NewPeripherals(display, random.NewRandom(seed), headless.Open{}, headless.Open{})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	ctl := frame.NewController(periph)

	var startFrame int
	var endFrame int

	runner := func() error {
		// false is sent on the channel when the lead time has elapsed. true
		// is sent when the measurement period has elapsed
		timerChan := make(chan bool, 2)

		time.AfterFunc(lead, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		ctl.RunUntil(func() bool {
			select {
			case v := <-timerChan:
				if v {
					endFrame = ctl.FrameNum()
					return false
				}
				startFrame = ctl.FrameNum()
			default:
			}
			return true
		})

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
