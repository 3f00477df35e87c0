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

// Package hardware is the base package for the board emulation. The Board
// type owns every emulated component and is the only route by which the rest
// of the program reaches them.
//
// The sub-packages emulate the individual parts of the board:
//
//	images:   the Image type, the built-in images and the font
//	pins:     the edge connector
//	buttons:  the A and B buttons
//	display:  the 5x5 LED matrix and its animations
//	music:    the tone scheduler
//	tones:    the queue of tones played by the tone scheduler
//	spatial:  the accelerometer and compass
//	task:     cancellable background tasks
//	ports:    events that drive the board from outside
//
// The Board implements the userinput.HandleInput interface so that events
// created by the user interface, or by a script, can be forwarded to the
// correct component.
package hardware
