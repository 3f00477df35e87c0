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

// Package ports defines the events that drive the board from outside. Button
// presses, pin inputs, movement of the board and changes to the environment
// the board sits in are all described by an Event and its EventData.
//
// The hardware.Board type handles these events. The userinput package
// creates them from keyboard and mouse input and the script package creates
// them from script instructions.
package ports

// Event represents an action performed on the board from outside.
type Event string

// List of defined events. The comment on each event names the type of the
// EventData that accompanies it.
const (
	NoEvent Event = "NoEvent" // nil

	// buttons. true for down and false for up
	ButtonA Event = "ButtonA" // bool
	ButtonB Event = "ButtonB" // bool

	// orientation of the board
	Tilt        Event = "Tilt"        // TiltData
	Orientation Event = "Orientation" // spatial.Matrix

	// gestures
	Gesture       Event = "Gesture"       // spatial.Gesture
	ClearGestures Event = "ClearGestures" // nil

	// pins
	PinInput Event = "PinInput" // PinData

	// environment
	Field       Event = "Field"       // FieldData
	Temperature Event = "Temperature" // int

	// board
	Reset Event = "Reset" // nil
)

// EventData is the value associated with the event.
type EventData interface{}

// TiltData is the rotation of the board away from lying flat. Values are in
// radians.
type TiltData struct {
	X float64
	Y float64
}

// PinData is the input level of a pin.
type PinData struct {
	ID    int
	Level int
}

// FieldData is the strength and direction of the magnetic field. The
// direction is in radians.
type FieldData struct {
	Strength  float64
	Direction float64
}

// Sentinal errors.
const (
	UnhandledEvent = "ports: unhandled event (%s)"
	BadEventData   = "ports: bad data for %s event (%T)"
)

// EventRecorder implementations mirror an incoming event.
type EventRecorder interface {
	RecordEvent(Event, EventData) error
}
