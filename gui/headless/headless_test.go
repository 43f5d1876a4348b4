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

package headless_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherlife/gui/headless"
	"github.com/jetsetilly/gopherlife/hardware"
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/buttons"
	"github.com/jetsetilly/gopherlife/logger"
	"github.com/jetsetilly/gopherlife/test"
)

func TestUncapped(t *testing.T) {
	hl := headless.NewHeadless(true, false)
	defer hl.Stop()
	test.DemandImplements[hardware.Display](t, hl, nil)

	b := board.FromBits(0x00000007)
	start := time.Now()
	for range 100 {
		hl.Render(b, time.Second)
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)
	test.ExpectEquality(t, hl.Frames(), 100)
	test.ExpectEquality(t, hl.Last(), b)
	test.ExpectEquality(t, hl.Measured(), float32(0))
}

func TestCapped(t *testing.T) {
	hl := headless.NewHeadless(false, false)
	defer hl.Stop()

	const numFrames = 5
	const d = 10 * time.Millisecond

	start := time.Now()
	for range numFrames {
		hl.Render(board.Board{}, d)
	}
	elapsed := time.Since(start)

	// the first tick after SetDuration() can arrive early so allow for one
	// short frame
	test.ExpectSuccess(t, elapsed >= (numFrames-1)*d-d/2)
	test.ExpectEquality(t, hl.Frames(), numFrames)
}

func TestVerbose(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	hl := headless.NewHeadless(true, true)
	hl.Render(board.FromBits(0x01), time.Millisecond)

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectSuccess(t, strings.Contains(s.String(), "headless: frame 1"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "#...."))

	logger.Clear()
	quiet := headless.NewHeadless(true, false)
	quiet.Render(board.FromBits(0x01), time.Millisecond)
	s.Reset()
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "")
}

func TestOpen(t *testing.T) {
	var p buttons.Pin = headless.Open{}
	test.ExpectFailure(t, p.Grounded())
	test.ExpectFailure(t, buttons.NewButtonA(p).Pressed())
}
