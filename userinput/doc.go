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

// Package userinput handles input from the real hardware that the user of the
// emulator is using to control the emulated board.
//
// It can be thought of as a translation layer between the user interface and
// the hardware.ports package. As such, this package attempts to hide details
// of the user interface while protecting the board from complication.
//
// Keyboard mapping:
//
//	A, B            buttons
//	arrow keys      tilt the board while held
//	0, 1, 2         touch the touch pins
//	U D L R         up, down, left and right gestures
//	F, S            freefall and shake gestures
//	3, 6, 8         3g, 6g and 8g gestures
//	G, H            face up and face down gestures
//	C               clear gestures
//	+ -             raise or lower the temperature
//	F2              reset the board
//	Escape          quit
//
// The left and right mouse buttons are the A and B buttons and moving the
// mouse tilts the board.
package userinput
