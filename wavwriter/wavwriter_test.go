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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherlife/hardware"
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/test"
	"github.com/jetsetilly/gopherlife/wavwriter"
)

func TestFrequency(t *testing.T) {
	test.ExpectEquality(t, wavwriter.Frequency(0), 0.0)
	test.ExpectSuccess(t, wavwriter.Frequency(1) > 0)
	test.ExpectSuccess(t, wavwriter.Frequency(25) > wavwriter.Frequency(24))
}

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.New("")
	test.ExpectFailure(t, err)
}

func TestWavWriter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.New(filename)
	test.DemandSuccess(t, err)
	test.DemandImplements[hardware.Display](t, aw, nil)

	const frame = 100 * time.Millisecond
	const samplesPerFrame = wavwriter.SampleRate / 10

	aw.Render(board.FromBits(0x1ffffff), frame)
	aw.Render(board.Board{}, frame)
	aw.Render(board.FromBits(0x1), frame)
	test.ExpectEquality(t, aw.NumSamples(), samplesPerFrame*3)

	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dec.SampleRate, uint32(wavwriter.SampleRate))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))
	test.DemandEquality(t, len(buf.Data), samplesPerFrame*3)

	// the first frame starts at the top of the square wave
	test.ExpectSuccess(t, buf.Data[0] > 0)

	// the dead board is silent
	silent := true
	for _, v := range buf.Data[samplesPerFrame : samplesPerFrame*2] {
		if v != 0 {
			silent = false
			break
		}
	}
	test.ExpectSuccess(t, silent)

	// the final frame is not
	test.ExpectSuccess(t, buf.Data[samplesPerFrame*2] > 0)
}
