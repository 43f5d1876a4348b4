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
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/gopherlife/curated"
	"github.com/jetsetilly/gopherlife/hardware/board"
	"github.com/jetsetilly/gopherlife/hardware/buttons"
	"github.com/jetsetilly/gopherlife/logger"
)

// PlaybackDivergence is the sentinal error pattern returned by Err() when the
// board being played back differs from the board that was recorded.
const PlaybackDivergence = "playback: board differs from recording at line %d (frame %d)"

type playbackEntry struct {
	frame int
	pinA  string
	pinB  string
	bits  uint32

	// the line in the transcript the entry appears
	line int
}

// playbackPin returns the recorded samples for one of the buttons.
type playbackPin struct {
	plb *Playback
	b   int
}

// Grounded implements the buttons.Pin interface.
func (p *playbackPin) Grounded() bool {
	return p.plb.sample(p.b)
}

// Playback reperforms the samples recorded in a transcript. It implements the
// hardware.Display interface.
type Playback struct {
	crit sync.Mutex

	seed int64

	sequence []playbackEntry
	seqCt    int

	// the number of samples read from the current entry for each pin
	sampleCt [2]int

	pinA playbackPin
	pinB playbackPin

	err error
}

// NewPlayback is the preferred method of initialisation for the Playback type.
func NewPlayback(transcript io.Reader) (*Playback, error) {
	if transcript == nil {
		return nil, curated.Errorf("playback: %v", "no transcript")
	}

	buffer, err := io.ReadAll(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert file contents to an array of lines. a final newline does not
	// indicate an additional line
	lines := strings.Split(strings.TrimSuffix(string(buffer), "\n"), "\n")

	plb := &Playback{}
	plb.pinA = playbackPin{plb: plb, b: 0}
	plb.pinB = playbackPin{plb: plb, b: 1}

	plb.seed, err = parseHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		entry, err := parseLine(lines[i], i+1, len(plb.sequence))
		if err != nil {
			return nil, err
		}
		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

func (plb *Playback) String() string {
	plb.crit.Lock()
	defer plb.crit.Unlock()
	if len(plb.sequence) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.seqCt, len(plb.sequence), 100*float64(plb.seqCt)/float64(len(plb.sequence)))
}

// Seed returns the seed of the random source used in the recording.
func (plb *Playback) Seed() int64 {
	return plb.seed
}

// PinA returns the playback pin for button A.
func (plb *Playback) PinA() buttons.Pin {
	return &plb.pinA
}

// PinB returns the playback pin for button B.
func (plb *Playback) PinB() buttons.Pin {
	return &plb.pinB
}

func (plb *Playback) sample(b int) bool {
	plb.crit.Lock()
	defer plb.crit.Unlock()

	if plb.seqCt >= len(plb.sequence) {
		return false
	}

	var samples string
	if b == 0 {
		samples = plb.sequence[plb.seqCt].pinA
	} else {
		samples = plb.sequence[plb.seqCt].pinB
	}

	ct := plb.sampleCt[b]
	if ct >= len(samples) {
		return false
	}
	plb.sampleCt[b]++

	return samples[ct] == '1'
}

// Render implements the hardware.Display interface. The board is compared to
// the recorded board and playback moves on to the next frame. Render does not
// block.
func (plb *Playback) Render(b board.Board, _ time.Duration) {
	plb.crit.Lock()
	defer plb.crit.Unlock()

	if plb.seqCt >= len(plb.sequence) {
		return
	}

	entry := plb.sequence[plb.seqCt]
	if entry.bits != b.Bits() && plb.err == nil {
		plb.err = curated.Errorf(PlaybackDivergence, entry.line, entry.frame)
		logger.Log(logger.Allow, "playback", plb.err)
	}

	plb.seqCt++
	plb.sampleCt = [2]int{}
}

// End returns true if every frame in the transcript has been played back.
// Pins will never be grounded once playback has ended.
func (plb *Playback) End() bool {
	plb.crit.Lock()
	defer plb.crit.Unlock()
	return plb.seqCt >= len(plb.sequence)
}

// Err returns the first divergence between the playback and the recording.
// Returns nil if there has been no divergence.
func (plb *Playback) Err() error {
	plb.crit.Lock()
	defer plb.crit.Unlock()
	return plb.err
}
