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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopherlife/gui/termleds/ansi"
	"github.com/jetsetilly/gopherlife/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("red", "black", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31;40m")

	s, err = ansi.ColorBuild("", "", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.ColorBuild("purple", "", false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "purple", false)
	test.ExpectFailure(t, err)
}

func TestCursorUp(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorUp(5), "\033[5A")
	test.ExpectEquality(t, ansi.CursorUp(0), "")
}
