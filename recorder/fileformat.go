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
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherlife/curated"
	"github.com/jetsetilly/gopherlife/hardware/specification"
)

// transcript file header format
// -----------------------------
//
// gopherlife input transcript v1
// seed: <seed>

const (
	lineMagic int = iota
	lineSeed
	numHeaderLines
)

const magicString = "gopherlife input transcript v1"
const seedPrefix = "seed: "

// transcript frame line format
// ----------------------------
//
// <frame>, <samples A>, <samples B>, <board>
//
// samples are a string of '1' (grounded) and '0' (not grounded) characters,
// one for each time the pin was read during the frame. a frame with no samples
// for a pin is recorded with the noSamples string. the board is in the bit
// format of board.Bits() and is written as a hex value.

const (
	fieldFrame int = iota
	fieldPinA
	fieldPinB
	fieldBoard
	numFields
)

const fieldSep = ", "
const noSamples = "-"

func formatHeader(seed int64) string {
	return fmt.Sprintf("%s\n%s%d\n", magicString, seedPrefix, seed)
}

func formatSamples(samples []byte) string {
	if len(samples) == 0 {
		return noSamples
	}
	return string(samples)
}

func formatLine(frame int, samplesA []byte, samplesB []byte, bits uint32) string {
	return fmt.Sprintf("%d%s%s%s%s%s%#07x\n", frame,
		fieldSep, formatSamples(samplesA),
		fieldSep, formatSamples(samplesB),
		fieldSep, bits)
}

func parseHeader(lines []string) (int64, error) {
	if len(lines) < numHeaderLines {
		return 0, curated.Errorf("playback: %v", "transcript is missing a header")
	}
	if lines[lineMagic] != magicString {
		return 0, curated.Errorf("playback: %v", "not a gopherlife transcript")
	}
	if !strings.HasPrefix(lines[lineSeed], seedPrefix) {
		return 0, curated.Errorf("playback: expected seed at line %d", lineSeed+1)
	}
	seed, err := strconv.ParseInt(strings.TrimPrefix(lines[lineSeed], seedPrefix), 10, 64)
	if err != nil {
		return 0, curated.Errorf("playback: %v line %d", err, lineSeed+1)
	}
	return seed, nil
}

func parseSamples(s string) (string, bool) {
	if s == noSamples {
		return "", true
	}
	if len(s) == 0 {
		return "", false
	}
	for _, c := range s {
		if c != '0' && c != '1' {
			return "", false
		}
	}
	return s, true
}

// parseLine parses a single frame line. lineNum is used in error messages
// and is counted from one.
func parseLine(line string, lineNum int, expectedFrame int) (playbackEntry, error) {
	entry := playbackEntry{line: lineNum}

	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return entry, curated.Errorf("playback: expected %d fields at line %d", numFields, lineNum)
	}

	var err error

	entry.frame, err = strconv.Atoi(toks[fieldFrame])
	if err != nil {
		return entry, curated.Errorf("playback: %v line %d", err, lineNum)
	}
	if entry.frame != expectedFrame {
		return entry, curated.Errorf("playback: expected frame %d at line %d", expectedFrame, lineNum)
	}

	var ok bool

	entry.pinA, ok = parseSamples(toks[fieldPinA])
	if !ok {
		return entry, curated.Errorf("playback: invalid samples for button A at line %d", lineNum)
	}
	entry.pinB, ok = parseSamples(toks[fieldPinB])
	if !ok {
		return entry, curated.Errorf("playback: invalid samples for button B at line %d", lineNum)
	}

	bits, err := strconv.ParseUint(toks[fieldBoard], 0, 32)
	if err != nil {
		return entry, curated.Errorf("playback: %v line %d", err, lineNum)
	}
	if bits >= 1<<specification.NumCells {
		return entry, curated.Errorf("playback: board out of range at line %d", lineNum)
	}
	entry.bits = uint32(bits)

	return entry, nil
}
