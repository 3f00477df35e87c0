// This file is part of Bitsim.
//
// Bitsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bitsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bitsim.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and then Parse()
// is called with no arguments. This allows a mode to be parsed and then for
// parsing to continue with the flags of that mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SCRIPT", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "SCRIPT":
//		md.NewMode()
//		wav := md.AddString("wav", "", "record tones to WAV file")
//		...
//	}
//
// The first sub-mode is the default mode, selected when the next argument is
// not one of the listed sub-modes. Sub-mode comparisons are case insensitive.
//
// Path() returns the list of modes encountered so far, separated by a slash.
//
// Help is printed automatically to the Output writer when the -help flag is
// found. The Parse() function returns ParseHelp in that case and the program
// should normally exit without further output.
package modalflag
