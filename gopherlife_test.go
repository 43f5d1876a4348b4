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

package main

import (
	"testing"

	"github.com/jetsetilly/gopherlife/gui/headless"
	"github.com/jetsetilly/gopherlife/hardware"
	"github.com/jetsetilly/gopherlife/hardware/frame"
	"github.com/jetsetilly/gopherlife/random"
	"github.com/jetsetilly/gopherlife/test"
)

func TestCreateHost(t *testing.T) {
	hst, err := createHost("HEADLESS", 1, false, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, hst.display != nil)
	test.ExpectFailure(t, hst.pinA.Grounded())
	test.ExpectFailure(t, hst.pinB.Grounded())
	hst.display.(*headless.Headless).Stop()

	_, err = createHost("VGA", 1, false, nil)
	test.ExpectFailure(t, err)
}

func BenchmarkFrame(b *testing.B) {
	hl := headless.NewHeadless(true, false)
	periph, err := hardware.NewPeripherals(hl, random.NewRandom(1), headless.Open{}, headless.Open{})
	if err != nil {
		b.Fatal(err)
	}
	ctl := frame.NewController(periph)

	b.ResetTimer()
	for range b.N {
		ctl.Frame()
	}
}
