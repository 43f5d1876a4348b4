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

package buttons_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherlife/hardware/buttons"
	"github.com/jetsetilly/gopherlife/test"
)

// scriptedPin returns the levels in the samples slice in order. reading
// beyond the end of the slice is a test failure
type scriptedPin struct {
	t       *testing.T
	samples []bool
	reads   int
}

func (p *scriptedPin) Grounded() bool {
	p.t.Helper()
	if p.reads >= len(p.samples) {
		p.t.Fatalf("pin read too many times (%d)", p.reads+1)
		return false
	}
	v := p.samples[p.reads]
	p.reads++
	return v
}

func TestDebounceCombinations(t *testing.T) {
	newButtons := map[string]func(buttons.Pin) buttons.Button{
		"A": func(p buttons.Pin) buttons.Button { return buttons.NewButtonA(p) },
		"B": func(p buttons.Pin) buttons.Button { return buttons.NewButtonB(p) },
	}

	for name, create := range newButtons {
		// all eight combinations of three samples
		for i := range 8 {
			pin := &scriptedPin{
				t:       t,
				samples: []bool{i&1 == 1, i&2 == 2, i&4 == 4},
			}
			btn := create(pin)

			tag := fmt.Sprintf("button %s samples %03b", name, i)

			// only the combination with all samples grounded is a press
			test.ExpectEquality(t, btn.Pressed(), i == 7, tag)

			// the pin is always read exactly three times, even if the first
			// sample is open
			test.ExpectEquality(t, pin.reads, 3, tag)
		}
	}
}

func TestNoStateBetweenCalls(t *testing.T) {
	pin := &scriptedPin{
		t:       t,
		samples: []bool{true, true, true, true, false, true, true, true, true},
	}
	btn := buttons.NewButtonA(pin)
	test.ExpectSuccess(t, btn.Pressed())
	test.ExpectFailure(t, btn.Pressed())
	test.ExpectSuccess(t, btn.Pressed())
}

func TestImplementsButton(t *testing.T) {
	var b buttons.Button
	test.DemandImplements(t, buttons.NewButtonA(nil), b)
	test.DemandImplements(t, buttons.NewButtonB(nil), b)
}
