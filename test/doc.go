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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf() and should
// be used when later parts of the test depend on the value being correct. For
// example, testing the length of a slice before indexing into it.
//
// Success and failure are judged according to the type of the value:
//
//	bool	true is success, false is failure
//	error	nil is success, non-nil is failure
//	nil	success
//
// Every helper accepts optional tags. Tags are printed at the start of the
// failure message and are useful for identifying the iteration of a loop that
// failed.
//
// The CompareWriter type implements io.Writer and can be used to capture
// output for comparison.
package test
