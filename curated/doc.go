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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	const OccupiedPin = "pins: pin %d is occupied by the %s"
//
//	e := curated.Errorf(OccupiedPin, 5, "buttons")
//
//	if curated.Is(e, OccupiedPin) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("music: %v", e)
//
//	if curated.Has(f, OccupiedPin) {
//		fmt.Println("true")
//	}
//
// In this example a call to Is(f, OccupiedPin) would return false because f
// was created with the "music: %v" pattern.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as being 'expected' and 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example:
//
//	func A() error {
//		err := B()
//		if err != nil {
//			return curated.Errorf("display: %v", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return curated.Errorf("display: not on")
//	}
//
// The message of the error returned by A() will be "display: not on" and not
// "display: display: not on".
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinal patterns should be stored as const strings in the package that
// creates the error, suitably named and commented.
package curated
