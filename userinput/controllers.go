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
	"math"

	"github.com/jetsetilly/bitsim/hardware/pins"
	"github.com/jetsetilly/bitsim/hardware/ports"
	"github.com/jetsetilly/bitsim/hardware/spatial"
)

// the angle, in radians, that the board is tilted by when an arrow key is
// held down.
const keyTilt = math.Pi / 4

// Controllers keeps track of userinput state that persists between events.
type Controllers struct {
	tilt ports.TiltData

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the board
	LastKeyHandled bool

	// is true if last event was a quit event
	Quit bool
}

var keyGestures = map[string]spatial.Gesture{
	"U": spatial.Up,
	"D": spatial.Down,
	"L": spatial.Left,
	"R": spatial.Right,
	"F": spatial.Freefall,
	"S": spatial.Shake,
	"3": spatial.ThreeG,
	"6": spatial.SixG,
	"8": spatial.EightG,
	"G": spatial.FaceUp,
	"H": spatial.FaceDown,
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat {
		c.LastKeyHandled = false
		return nil
	}

	// by default we'll say the key has been handled, unless specified otherwise
	c.LastKeyHandled = true

	switch ev.Key {
	case "A":
		return handle.HandleEvent(ports.ButtonA, ev.Down)
	case "B":
		return handle.HandleEvent(ports.ButtonB, ev.Down)

	case "Left", "Right", "Up", "Down":
		var v float64
		if ev.Down {
			v = keyTilt
		}
		switch ev.Key {
		case "Left":
			c.tilt.X = -v
		case "Right":
			c.tilt.X = v
		case "Up":
			c.tilt.Y = -v
		case "Down":
			c.tilt.Y = v
		}
		return handle.HandleEvent(ports.Tilt, c.tilt)

	case "0", "1", "2":
		level := 0
		if ev.Down {
			level = pins.MaxLevel
		}
		return handle.HandleEvent(ports.PinInput, ports.PinData{ID: int(ev.Key[0] - '0'), Level: level})
	}

	// the remaining keys act only when pressed
	if !ev.Down {
		if _, ok := keyGestures[ev.Key]; !ok {
			switch ev.Key {
			case "C", "+", "-", "F2", "Escape":
			default:
				c.LastKeyHandled = false
			}
		}
		return nil
	}

	if g, ok := keyGestures[ev.Key]; ok {
		return handle.HandleEvent(ports.Gesture, g)
	}

	switch ev.Key {
	case "C":
		return handle.HandleEvent(ports.ClearGestures, nil)
	case "+":
		return handle.HandleEvent(ports.Temperature, handle.Temperature()+1)
	case "-":
		return handle.HandleEvent(ports.Temperature, handle.Temperature()-1)
	case "F2":
		c.tilt = ports.TiltData{}
		return handle.HandleEvent(ports.Reset, nil)
	case "Escape":
		c.Quit = true
		return nil
	}

	c.LastKeyHandled = false
	return nil
}

func (c *Controllers) mouseButton(ev EventMouseButton, handle HandleInput) error {
	switch ev.Button {
	case MouseButtonLeft:
		return handle.HandleEvent(ports.ButtonA, ev.Down)
	case MouseButtonRight:
		return handle.HandleEvent(ports.ButtonB, ev.Down)
	}
	return nil
}

func (c *Controllers) mouseMotion(ev EventMouseMotion, handle HandleInput) error {
	c.tilt.X = float64(ev.X) * math.Pi / 2
	c.tilt.Y = float64(ev.Y) * math.Pi / 2
	return handle.HandleEvent(ports.Tilt, c.tilt)
}

// HandleUserInput deciphers the Event and forwards the input to the board.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	c.Quit = false
	c.LastKeyHandled = false

	var err error
	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		err = c.keyboard(ev, handle)
	case EventMouseButton:
		err = c.mouseButton(ev, handle)
	case EventMouseMotion:
		err = c.mouseMotion(ev, handle)
	default:
	}

	return err
}
