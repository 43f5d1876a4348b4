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

// Package buttons converts the raw level of an input pin into a debounced
// "pressed" state.
//
// The two buttons of the device are represented by the ButtonA and ButtonB
// types. Each implements the Button interface independently of the other and
// each owns the Pin it samples.
//
// Debouncing is done by sampling the pin three times in quick succession. The
// button is only considered pressed if all three samples show the pin to be
// grounded. A single bounce in any of the samples results in the button being
// reported as not pressed.
package buttons

// Pin is a digital input. Grounded() returns true if the circuit is closed.
// For the push buttons this is the active (pressed) level.
type Pin interface {
	Grounded() bool
}

// Button is implemented by the push buttons.
type Button interface {
	Pressed() bool
}

// the number of consecutive grounded samples required for a press
const debounceSamples = 3

// ButtonA is the left-hand button of the device.
type ButtonA struct {
	pin Pin
}

// NewButtonA is the preferred method of initialisation for the ButtonA type.
func NewButtonA(pin Pin) *ButtonA {
	return &ButtonA{pin: pin}
}

// Pressed implements the Button interface.
func (btn *ButtonA) Pressed() bool {
	return debounce(btn.pin)
}

// ButtonB is the right-hand button of the device.
type ButtonB struct {
	pin Pin
}

// NewButtonB is the preferred method of initialisation for the ButtonB type.
func NewButtonB(pin Pin) *ButtonB {
	return &ButtonB{pin: pin}
}

// Pressed implements the Button interface.
func (btn *ButtonB) Pressed() bool {
	return debounce(btn.pin)
}

// debounce samples the pin exactly debounceSamples times, even if an early
// sample shows the pin to be open.
func debounce(pin Pin) bool {
	pressed := true
	for range debounceSamples {
		if !pin.Grounded() {
			pressed = false
		}
	}
	return pressed
}
