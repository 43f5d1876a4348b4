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

// Package termleds shows the LED matrix in a terminal. The terminal is put
// into raw mode and the matrix is redrawn in place every frame.
//
// Terminals report key presses but not key releases, so a press of the A or B
// key grounds the corresponding pin for a short hold period. Holding the key
// down keeps the pin grounded for as long as the terminal's key repeat
// continues.
//
// Pressing Q or ctrl-c requests that the program ends.
package termleds

import (
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherlife/curated"
	"github.com/jetsetilly/gopherlife/gui/termleds/ansi"
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/buttons"
	"github.com/jetsetilly/gopherlife/hardware/specification"
	"github.com/jetsetilly/gopherlife/logger"
	"github.com/jetsetilly/gopherlife/performance/limiter"
	"github.com/pkg/term"
)

// the amount of time a pin remains grounded after a key press. a little
// longer than the typical key repeat rate so that a held key does not
// flicker between frames.
const holdDuration = 150 * time.Millisecond

// ASCII codes for keys that are not printable characters.
const (
	keyInterrupt = 3
	keyEsc       = 27
)

// keyPin is a pin that is grounded for a short period after a key press.
type keyPin struct {
	// time of the most recent press in nanoseconds since the unix epoch
	pressed atomic.Int64
}

func (p *keyPin) press(t time.Time) {
	p.pressed.Store(t.UnixNano())
}

func (p *keyPin) groundedAt(t time.Time) bool {
	pressed := p.pressed.Load()
	if pressed == 0 {
		return false
	}
	return t.Sub(time.Unix(0, pressed)) < holdDuration
}

// Grounded implements the buttons.Pin interface.
func (p *keyPin) Grounded() bool {
	return p.groundedAt(time.Now())
}

// pens used to draw the matrix.
type pens struct {
	lit   string
	unlit string
}

func newPens() (pens, error) {
	var p pens
	var err error

	p.lit, err = ansi.ColorBuild("red", "", true)
	if err != nil {
		return p, err
	}
	p.unlit, err = ansi.ColorBuild("black", "", true)
	if err != nil {
		return p, err
	}

	return p, nil
}

// draw writes the board to the writer. if redraw is true then the cursor is
// first moved back to the top of the previously drawn board.
func (p pens) draw(w io.Writer, b board.Board, redraw bool) error {
	s := strings.Builder{}
	if redraw {
		s.WriteString(ansi.CursorUp(specification.GridSize))
	}
	for row := range specification.GridSize {
		s.WriteString("\r")
		s.WriteString(ansi.ClearLine)
		for col := range specification.GridSize {
			if col > 0 {
				s.WriteString(" ")
			}
			if b[row][col] {
				s.WriteString(p.lit)
				s.WriteString("O")
			} else {
				s.WriteString(p.unlit)
				s.WriteString(".")
			}
		}
		s.WriteString(ansi.NormalPen)
		s.WriteString("\r\n")
	}
	_, err := io.WriteString(w, s.String())
	return err
}

// LEDs implements the hardware.Display interface.
type LEDs struct {
	tty  *term.Term
	lmtr *limiter.Limiter
	pens pens

	pinA keyPin
	pinB keyPin

	// called by the key reader when the user requests that the program ends
	onQuit func()

	// the board has been drawn at least once
	drawn bool
}

// NewLEDs is the preferred method of initialisation for the LEDs type. The
// onQuit function is called, from a separate goroutine, if the user presses Q
// or ctrl-c.
func NewLEDs(onQuit func()) (*LEDs, error) {
	leds := &LEDs{
		onQuit: onQuit,
		lmtr:   limiter.NewLimiter(specification.FrameDuration),
	}

	var err error

	leds.pens, err = newPens()
	if err != nil {
		return nil, curated.Errorf("termleds: %v", err)
	}

	leds.tty, err = term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, curated.Errorf("termleds: %v", err)
	}

	_, err = leds.tty.Write([]byte(ansi.HideCursor))
	if err != nil {
		_ = leds.tty.Restore()
		_ = leds.tty.Close()
		return nil, curated.Errorf("termleds: %v", err)
	}

	go leds.readKeys()

	return leds, nil
}

// readKeys runs until the terminal is closed or until a quit key is pressed.
func (leds *LEDs) readKeys() {
	buf := make([]byte, 1)
	for {
		n, err := leds.tty.Read(buf)
		if err != nil {
			logger.Log(logger.Allow, "termleds", err)
			return
		}
		if n == 0 {
			continue
		}
		if leds.key(buf[0], time.Now()) {
			return
		}
	}
}

// key handles a single key press. returns true if the key requests that the
// program ends.
func (leds *LEDs) key(k byte, t time.Time) bool {
	switch k {
	case 'a', 'A':
		leds.pinA.press(t)
	case 'b', 'B':
		leds.pinB.press(t)
	case 'q', 'Q', keyInterrupt, keyEsc:
		if leds.onQuit != nil {
			leds.onQuit()
		}
		return true
	}
	return false
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
	err := leds.pens.draw(leds.tty, b, leds.drawn)
	if err != nil {
		logger.Log(logger.Allow, "termleds", err)
	}
	leds.drawn = true

	leds.lmtr.SetDuration(d)
	leds.lmtr.Wait()
}

// CleanUp restores the terminal to the state it was in before NewLEDs() was
// called.
func (leds *LEDs) CleanUp() {
	leds.lmtr.Stop()
	_, _ = leds.tty.Write([]byte(ansi.NormalPen + ansi.ShowCursor))
	if err := leds.tty.Restore(); err != nil {
		logger.Log(logger.Allow, "termleds", err)
	}
	if err := leds.tty.Close(); err != nil {
		logger.Log(logger.Allow, "termleds", err)
	}
}
