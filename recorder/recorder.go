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

package recorder

import (
	"bufio"
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/gopherlife/curated"
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/buttons"
	"github.com/jetsetilly/gopherlife/logger"
)

// recordingPin wraps a pin and notes the result of every read.
type recordingPin struct {
	rec     *Recorder
	pin     buttons.Pin
	samples []byte
}

// Grounded implements the buttons.Pin interface.
func (p *recordingPin) Grounded() bool {
	g := p.pin.Grounded()

	p.rec.crit.Lock()
	defer p.rec.crit.Unlock()

	if g {
		p.samples = append(p.samples, '1')
	} else {
		p.samples = append(p.samples, '0')
	}

	return g
}

// Recorder transcribes the samples taken from two pins. It implements the
// hardware.Display interface.
type Recorder struct {
	crit sync.Mutex

	output *bufio.Writer

	pinA recordingPin
	pinB recordingPin

	// number of frames written to the transcript
	frame int

	// the first error encountered while writing. once an error has occurred
	// no more frames are written
	err error

	ended bool
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// The seed is the seed of the random source used by the device being recorded.
//
// The pins returned by PinA() and PinB() should be used in place of the pins
// supplied here.
func NewRecorder(output io.Writer, seed int64, pinA buttons.Pin, pinB buttons.Pin) (*Recorder, error) {
	if output == nil {
		return nil, curated.Errorf("recorder: %v", "no output")
	}
	if pinA == nil || pinB == nil {
		return nil, curated.Errorf("recorder: %v", "missing pin")
	}

	rec := &Recorder{
		output: bufio.NewWriter(output),
	}
	rec.pinA = recordingPin{rec: rec, pin: pinA}
	rec.pinB = recordingPin{rec: rec, pin: pinB}

	_, err := rec.output.WriteString(formatHeader(seed))
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	return rec, nil
}

// PinA returns the recording pin for button A.
func (rec *Recorder) PinA() buttons.Pin {
	return &rec.pinA
}

// PinB returns the recording pin for button B.
func (rec *Recorder) PinB() buttons.Pin {
	return &rec.pinB
}

// Render implements the hardware.Display interface. A line is added to the
// transcript for every call. Render does not block.
func (rec *Recorder) Render(b board.Board, _ time.Duration) {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.ended || rec.err != nil {
		return
	}

	_, err := rec.output.WriteString(formatLine(rec.frame, rec.pinA.samples, rec.pinB.samples, b.Bits()))
	if err != nil {
		rec.err = curated.Errorf("recorder: %v", err)
		logger.Log(logger.Allow, "recorder", rec.err)
		return
	}

	rec.frame++
	rec.pinA.samples = rec.pinA.samples[:0]
	rec.pinB.samples = rec.pinB.samples[:0]
}

// Frames returns the number of frames written to the transcript.
func (rec *Recorder) Frames() int {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	return rec.frame
}

// End the recording and flush the transcript to the output. Any samples taken
// since the most recent call to Render() are discarded. Calls to Render()
// after End() are ignored.
func (rec *Recorder) End() error {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.ended {
		return rec.err
	}
	rec.ended = true

	if rec.err != nil {
		return rec.err
	}

	err := rec.output.Flush()
	if err != nil {
		rec.err = curated.Errorf("recorder: %v", err)
	}

	return rec.err
}
