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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is remembered and can be tested for with the Is() and Has()
// functions:
//
//	err := curated.Errorf("peripherals: missing %s", "display")
//
//	if curated.Is(err, "peripherals: missing %s") {
//		fmt.Println("true")
//	}
//
// Is() only checks the outermost error. Has() checks the entire chain of
// wrapped curated errors:
//
//	f := curated.Errorf("gopherlife: %v", err)
//
//	curated.Is(f, "peripherals: missing %s")  // false
//	curated.Has(f, "peripherals: missing %s") // true
//
// IsAny() answers whether the error was created by Errorf() at all. We can
// think of curated errors as being 'expected' errors and uncurated errors as
// being 'unexpected'.
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. A part is a section of the message separated by ": ". This
// means that a function that wraps an error with the same prefix as the error
// it is wrapping does not produce a stuttering message:
//
//	a := curated.Errorf("playback: %v", "line 10: bad field")
//	b := curated.Errorf("playback: %v", a)
//
//	fmt.Println(b) // "playback: line 10: bad field"
//
// Sentinal patterns should be declared as exported string constants in the
// package that returns them.
package curated
