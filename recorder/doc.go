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

// Package recorder records the button input of a running device so that it
// can be played back later.
//
// A transcript records the seed of the random source and then one line for
// every frame that is rendered. Each line records every sample taken from the
// pins of buttons A and B while the frame was being decided, and the board
// that was rendered as a result. Because the random source is seeded with the
// recorded seed, playing back the samples reproduces the recorded session
// exactly. The recorded board is used to check that this is so.
//
// The Recorder and Playback types both implement the hardware.Display
// interface. They do not block in Render() and so should be used as observers
// alongside another display. See gui.Tee for one way of doing that.
package recorder
