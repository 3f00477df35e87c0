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

package userinput

import (
	"github.com/jetsetilly/bitsim/hardware/ports"
)

// HandleInput conceptualises data being sent to the board.
type HandleInput interface {
	// HandleEvent forwards the Event and EventData to the board.
	HandleEvent(ev ports.Event, d ports.EventData) error

	// Temperature is the current temperature of the board. Temperature events
	// created from user input are relative to this value.
	Temperature() int
}

// Event represents all the different type of events that can occur in the
// user interface.
type Event interface{}

// EventQuit is sent when the user interface has been closed.
type EventQuit struct{}

// EventKeyboard is sent on a keypress. Key names follow the convention of the
// user interface that sent the event but single characters are always upper
// case.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
}

// MouseButton identifies the mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
)

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is sent when the mouse is moved. The position is relative
// to the centre of the board with the edges of the board at -1.0 and 1.0.
type EventMouseMotion struct {
	X float32
	Y float32
}
