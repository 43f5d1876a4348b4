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

// Package sdlleds shows the LED matrix in an SDL window.
//
// The A and B keys, or the left and right mouse buttons, ground the pins of
// buttons A and B for as long as they are held. Closing the window or pressing
// the escape key requests that the program ends.
//
// SDL requires that events are serviced by the main thread. The Service()
// function must only ever be called from the main thread. Render() can be
// called from any goroutine.
package sdlleds

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherlife/curated"
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/buttons"
	"github.com/jetsetilly/gopherlife/hardware/specification"
	"github.com/jetsetilly/gopherlife/logger"
	"github.com/jetsetilly/gopherlife/performance/limiter"
	"github.com/jetsetilly/gopherlife/version"
	"github.com/veandco/go-sdl2/sdl"
)

// size of each LED and the gap between them, in pixels, before scaling.
const (
	ledSize = 32
	ledGap  = 8
)

// the rate at which the window is serviced. this is independent of the frame
// rate of the device so that button presses are seen promptly.
const serviceRate = time.Second / 60

// pin is grounded if either the key or the mouse button is down.
type pin struct {
	key   atomic.Bool
	mouse atomic.Bool
}

// Grounded implements the buttons.Pin interface.
func (p *pin) Grounded() bool {
	return p.key.Load() || p.mouse.Load()
}

// LEDs implements the hardware.Display interface.
type LEDs struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	scale int32

	// the board to be drawn on the next call to Service()
	board atomic.Uint32

	// paces calls to Render() and calls to Service() respectively
	lmtr    *limiter.Limiter
	service *limiter.Limiter

	pinA pin
	pinB pin
}

// NewLEDs is the preferred method of initialisation for the LEDs type.
//
// MUST ONLY be called from the main thread.
func NewLEDs(scale int) (*LEDs, error) {
	if scale < 1 {
		scale = 1
	}

	leds := &LEDs{
		scale:   int32(scale),
		lmtr:    limiter.NewLimiter(specification.FrameDuration),
		service: limiter.NewLimiter(serviceRate),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlleds: %v", err)
	}

	// MOUSEMOTION events fill up the event queue and we have no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	sz := leds.windowSize()
	leds.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		sz, sz,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlleds: %v", err)
	}

	leds.renderer, err = sdl.CreateRenderer(leds.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlleds: %v", err)
	}

	return leds, nil
}

func (leds *LEDs) windowSize() int32 {
	return (specification.GridSize*(ledSize+ledGap) + ledGap) * leds.scale
}

// rect returns the area occupied by the LED at the row and column.
func (leds *LEDs) rect(row int, col int) *sdl.Rect {
	return &sdl.Rect{
		X: (int32(col)*(ledSize+ledGap) + ledGap) * leds.scale,
		Y: (int32(row)*(ledSize+ledGap) + ledGap) * leds.scale,
		W: ledSize * leds.scale,
		H: ledSize * leds.scale,
	}
}

// PinA returns the pin connected to button A.
func (leds *LEDs) PinA() buttons.Pin {
	return &leds.pinA
}

// PinB returns the pin connected to button B.
func (leds *LEDs) PinB() buttons.Pin {
	return &leds.pinB
}

// Render implements the hardware.Display interface.
func (leds *LEDs) Render(b board.Board, d time.Duration) {
	leds.board.Store(b.Bits())
	leds.lmtr.SetDuration(d)
	leds.lmtr.Wait()
}

// Service checks for events and redraws the window. Returns false if the user
// has requested that the program ends.
//
// MUST ONLY be called from the main thread.
func (leds *LEDs) Service() bool {
	running := true

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			running = false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break
			}
			down := ev.Type == sdl.KEYDOWN
			switch ev.Keysym.Sym {
			case sdl.K_a:
				leds.pinA.key.Store(down)
			case sdl.K_b:
				leds.pinB.key.Store(down)
			case sdl.K_ESCAPE:
				running = false
			}

		case *sdl.MouseButtonEvent:
			down := ev.Type == sdl.MOUSEBUTTONDOWN
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				leds.pinA.mouse.Store(down)
			case sdl.BUTTON_RIGHT:
				leds.pinB.mouse.Store(down)
			}
		}
	}

	if err := leds.draw(board.FromBits(leds.board.Load())); err != nil {
		logger.Log(logger.Allow, "sdlleds", err)
	}

	leds.service.Wait()

	return running
}

func (leds *LEDs) draw(b board.Board) error {
	if err := leds.renderer.SetDrawColor(16, 16, 16, 255); err != nil {
		return err
	}
	if err := leds.renderer.Clear(); err != nil {
		return err
	}

	for row := range specification.GridSize {
		for col := range specification.GridSize {
			var err error
			if b[row][col] {
				err = leds.renderer.SetDrawColor(255, 32, 32, 255)
			} else {
				err = leds.renderer.SetDrawColor(48, 8, 8, 255)
			}
			if err != nil {
				return err
			}
			if err := leds.renderer.FillRect(leds.rect(row, col)); err != nil {
				return err
			}
		}
	}

	leds.renderer.Present()

	return nil
}

// Destroy releases the SDL resources.
//
// MUST ONLY be called from the main thread.
func (leds *LEDs) Destroy() {
	leds.lmtr.Stop()
	leds.service.Stop()

	if err := leds.renderer.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlleds", err)
	}
	if err := leds.window.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlleds", err)
	}
	sdl.Quit()
}
