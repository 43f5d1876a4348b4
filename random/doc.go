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

// Package random is the source of random numbers for the LED matrix. It stands
// in for the hardware random number generator of the device.
//
// Every call to Uint32() produces one 32-bit value. A Random instance created
// with a seed of zero is seeded from the current time. Setting ZeroSeed
// forces a fixed seed regardless of the seed supplied to NewRandom(), which
// is useful for testing when the same sequence is required every time.
package random
