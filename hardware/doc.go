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

// Package hardware is the base package for the LED matrix device. The
// sub-packages contain the components of the device: the board state, the
// push buttons, the cooldown timers, the Life engine and the frame controller
// that ties them together.
//
// The Peripherals type collects the external collaborators the device needs:
// a display to render the board, a source of random numbers and the two pins
// the push buttons are connected to. The peripherals are acquired once, at
// startup, by the NewPeripherals() function. Failure to acquire any of them is
// fatal.
package hardware
