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

package random

import (
	"math/rand"
	"time"
)

// Random implements the board.RandomSource interface.
type Random struct {
	seed int64
	rnd  *rand.Rand

	// use a zero seed rather than the seed supplied to NewRandom(). must be
	// set before the first call to Uint32()
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means that the generator will be seeded from the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		seed: seed,
	}
}

// Seed returns the seed used by the generator.
func (rnd *Random) Seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return rnd.seed
}

// Uint32 returns the next random value.
func (rnd *Random) Uint32() uint32 {
	if rnd.rnd == nil {
		rnd.rnd = rand.New(rand.NewSource(rnd.Seed()))
	}
	return rnd.rnd.Uint32()
}
