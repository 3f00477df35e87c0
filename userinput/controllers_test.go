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

package userinput_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/bitsim/hardware/pins"
	"github.com/jetsetilly/bitsim/hardware/ports"
	"github.com/jetsetilly/bitsim/hardware/spatial"
	"github.com/jetsetilly/bitsim/test"
	"github.com/jetsetilly/bitsim/userinput"
)

type event struct {
	ev ports.Event
	d  ports.EventData
}

type board struct {
	events      []event
	temperature int
}

func (b *board) HandleEvent(ev ports.Event, d ports.EventData) error {
	b.events = append(b.events, event{ev: ev, d: d})
	return nil
}

func (b *board) Temperature() int {
	return b.temperature
}

func (b *board) last() event {
	if len(b.events) == 0 {
		return event{ev: ports.NoEvent}
	}
	return b.events[len(b.events)-1]
}

func key(k string, down bool) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k, Down: down}
}

func TestButtons(t *testing.T) {
	var c userinput.Controllers
	b := &board{}

	test.ExpectSuccess(t, c.HandleUserInput(key("A", true), b))
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectEquality(t, b.last().ev, ports.ButtonA)
	test.ExpectEquality(t, b.last().d.(bool), true)

	test.ExpectSuccess(t, c.HandleUserInput(key("B", false), b))
	test.ExpectEquality(t, b.last().ev, ports.ButtonB)
	test.ExpectEquality(t, b.last().d.(bool), false)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true}, b))
	test.ExpectEquality(t, b.last().ev, ports.ButtonB)

	// repeated keys are ignored
	n := len(b.events)
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "A", Down: true, Repeat: true}, b))
	test.ExpectEquality(t, len(b.events), n)
	test.ExpectFailure(t, c.LastKeyHandled)
}

func TestTilt(t *testing.T) {
	var c userinput.Controllers
	b := &board{}

	test.ExpectSuccess(t, c.HandleUserInput(key("Left", true), b))
	test.ExpectSuccess(t, c.HandleUserInput(key("Down", true), b))
	tilt := b.last().d.(ports.TiltData)
	test.ExpectApproximate(t, tilt.X, -math.Pi/4, 0.0001)
	test.ExpectApproximate(t, tilt.Y, math.Pi/4, 0.0001)

	test.ExpectSuccess(t, c.HandleUserInput(key("Left", false), b))
	tilt = b.last().d.(ports.TiltData)
	test.ExpectEquality(t, tilt.X, 0.0)
	test.ExpectApproximate(t, tilt.Y, math.Pi/4, 0.0001)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventMouseMotion{X: 1.0, Y: -1.0}, b))
	tilt = b.last().d.(ports.TiltData)
	test.ExpectApproximate(t, tilt.X, math.Pi/2, 0.0001)
	test.ExpectApproximate(t, tilt.Y, -math.Pi/2, 0.0001)
}

func TestTouch(t *testing.T) {
	var c userinput.Controllers
	b := &board{}

	test.ExpectSuccess(t, c.HandleUserInput(key("1", true), b))
	test.ExpectEquality(t, b.last().ev, ports.PinInput)
	test.ExpectEquality(t, b.last().d.(ports.PinData), ports.PinData{ID: 1, Level: pins.MaxLevel})

	test.ExpectSuccess(t, c.HandleUserInput(key("1", false), b))
	test.ExpectEquality(t, b.last().d.(ports.PinData), ports.PinData{ID: 1, Level: 0})
}

func TestGestures(t *testing.T) {
	var c userinput.Controllers
	b := &board{}

	test.ExpectSuccess(t, c.HandleUserInput(key("S", true), b))
	test.ExpectEquality(t, b.last().ev, ports.Gesture)
	test.ExpectEquality(t, b.last().d.(spatial.Gesture), spatial.Shake)

	test.ExpectSuccess(t, c.HandleUserInput(key("3", true), b))
	test.ExpectEquality(t, b.last().d.(spatial.Gesture), spatial.ThreeG)

	// releasing a gesture key does nothing
	n := len(b.events)
	test.ExpectSuccess(t, c.HandleUserInput(key("S", false), b))
	test.ExpectEquality(t, len(b.events), n)
	test.ExpectSuccess(t, c.LastKeyHandled)

	test.ExpectSuccess(t, c.HandleUserInput(key("C", true), b))
	test.ExpectEquality(t, b.last().ev, ports.ClearGestures)
}

func TestTemperature(t *testing.T) {
	var c userinput.Controllers
	b := &board{temperature: 20}

	test.ExpectSuccess(t, c.HandleUserInput(key("+", true), b))
	test.ExpectEquality(t, b.last().ev, ports.Temperature)
	test.ExpectEquality(t, b.last().d.(int), 21)

	test.ExpectSuccess(t, c.HandleUserInput(key("-", true), b))
	test.ExpectEquality(t, b.last().d.(int), 19)
}

func TestQuitAndUnhandled(t *testing.T) {
	var c userinput.Controllers
	b := &board{}

	test.ExpectSuccess(t, c.HandleUserInput(key("Z", true), b))
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectEquality(t, len(b.events), 0)

	test.ExpectSuccess(t, c.HandleUserInput(key("Escape", true), b))
	test.ExpectSuccess(t, c.Quit)

	test.ExpectSuccess(t, c.HandleUserInput(key("A", true), b))
	test.ExpectFailure(t, c.Quit)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventQuit{}, b))
	test.ExpectSuccess(t, c.Quit)

	test.ExpectSuccess(t, c.HandleUserInput(key("F2", true), b))
	test.ExpectEquality(t, b.last().ev, ports.Reset)
}
