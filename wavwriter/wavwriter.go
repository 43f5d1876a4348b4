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

// Package wavwriter creates an audio trace of the device as a WAV file. Each
// rendered frame adds a tone to the trace with a pitch that rises with the
// number of live cells on the board. A dead board is silent.
//
// Note that audio data is buffered in memory in its entirity, and written to
// disk when EndMixing() is called.
package wavwriter

import (
	"os"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherlife/curated"
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/logger"
)

// SampleRate of the WAV file.
const SampleRate = 22050

const (
	bitDepth    = 16
	numChannels = 1

	// PCM audio format as specified by the WAV file format
	audioFormat = 1
)

// tone parameters.
const (
	amplitude = 6000
	baseFreq  = 220.0
	freqStep  = 22.0
)

// WavWriter implements the hardware.Display interface. It does not block in
// Render() and so should be used alongside another display.
type WavWriter struct {
	crit sync.Mutex

	filename string
	buffer   []int

	// position in the current cycle of the square wave, as a fraction of the
	// whole cycle. the wave is continuous from one frame to the next
	phase float64
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
	}
	return aw, nil
}

// Frequency returns the pitch of the tone used for a board with the specified
// number of live cells. A value of zero means silence.
func Frequency(population int) float64 {
	if population <= 0 {
		return 0
	}
	return baseFreq + float64(population)*freqStep
}

// Render implements the hardware.Display interface.
func (aw *WavWriter) Render(b board.Board, d time.Duration) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	n := int(int64(SampleRate) * int64(d) / int64(time.Second))
	freq := Frequency(b.Population())

	if freq == 0 {
		aw.phase = 0
		for range n {
			aw.buffer = append(aw.buffer, 0)
		}
		return
	}

	step := freq / SampleRate
	for range n {
		if aw.phase < 0.5 {
			aw.buffer = append(aw.buffer, amplitude)
		} else {
			aw.buffer = append(aw.buffer, -amplitude)
		}
		aw.phase += step
		if aw.phase >= 1.0 {
			aw.phase -= 1.0
		}
	}
}

// NumSamples returns the number of samples buffered so far.
func (aw *WavWriter) NumSamples() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer)
}

// EndMixing writes the buffered audio to the WAV file.
func (aw *WavWriter) EndMixing() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, numChannels, audioFormat)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
