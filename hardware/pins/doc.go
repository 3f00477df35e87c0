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

// Package pins emulates the edge connector of the board. Every pin has an
// output level and PWM period that are set by the I/O functions, and an input
// level that is driven from outside the board.
//
// Some pins are occupied by other parts of the board. Pins 5 and 11 are wired
// to the buttons, pin 12 is reserved and pins 3, 4, 6, 7, 9 and 10 drive the
// LED matrix while the screen is on. Any I/O on an occupied pin fails with the
// OccupiedPin or ReservedPin error and leaves the pin unchanged.
//
// The GPIO type presents a pin through the periph.io gpio.PinIO interface so
// that code written for periph.io can drive the emulated board.
package pins
