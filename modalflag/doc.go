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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode can have its own flags and its own sub-modes.
//
// Arguments are supplied once with NewArgs() and then consumed layer by layer
// with Parse(). If sub-modes have been added with AddSubModes() then the first
// non-flag argument is compared to the list of sub-modes. If the argument
// matches a sub-mode then the argument is consumed and the sub-mode becomes
// the current Mode(). If the argument does not match then the first sub-mode
// in the list is used as the default.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PLAYBACK")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		display := md.AddChoice("display", "SDL", []string{"SDL", "TERM"}, "display type")
//		...
//	}
//
// Flags for the next layer are added after a call to NewMode(). Flags that
// appear before a sub-mode on the command line are not part of the layer in
// which the sub-mode is chosen. For this reason, a command line containing
// flags unknown to the top layer selects the default sub-mode and leaves the
// flags in place for the next call to Parse(). This means that:
//
//	gopherlife -display TERM
//
// is the same as:
//
//	gopherlife RUN -display TERM
//
// Help is requested with the -help flag and is printed to the Output field of
// the Modes type.
package modalflag
