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

package hardware

import (
	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/hardware/ports"
	"github.com/jetsetilly/bitsim/hardware/spatial"
	"github.com/jetsetilly/bitsim/logger"
)

// AddRecorder adds an EventRecorder. Every event handled by the board is
// passed to every recorder.
func (b *Board) AddRecorder(r ports.EventRecorder) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.recorders = append(b.recorders, r)
}

// RemoveRecorders removes every EventRecorder.
func (b *Board) RemoveRecorders() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.recorders = nil
}

// HandleEvent implements userinput.HandleInput interface.
func (b *Board) HandleEvent(ev ports.Event, d ports.EventData) error {
	err := b.handleEvent(ev, d)
	if err != nil {
		return err
	}

	logger.Logf(b.Env, "input", "%s %v", ev, d)

	b.crit.Lock()
	recorders := b.recorders
	b.crit.Unlock()

	for _, r := range recorders {
		if err := r.RecordEvent(ev, d); err != nil {
			return err
		}
	}

	return nil
}

func (b *Board) handleEvent(ev ports.Event, d ports.EventData) error {
	switch ev {
	case ports.NoEvent:

	case ports.ButtonA, ports.ButtonB:
		down, ok := d.(bool)
		if !ok {
			return curated.Errorf(ports.BadEventData, ev, d)
		}
		bt := b.ButtonA
		if ev == ports.ButtonB {
			bt = b.ButtonB
		}
		if down {
			bt.Press()
		} else {
			bt.Release()
		}

	case ports.Tilt:
		t, ok := d.(ports.TiltData)
		if !ok {
			return curated.Errorf(ports.BadEventData, ev, d)
		}
		b.Spatial.Tilt(t.X, t.Y)

	case ports.Orientation:
		m, ok := d.(spatial.Matrix)
		if !ok {
			return curated.Errorf(ports.BadEventData, ev, d)
		}
		b.Spatial.SetOrientation(m)

	case ports.Gesture:
		g, ok := d.(spatial.Gesture)
		if !ok {
			return curated.Errorf(ports.BadEventData, ev, d)
		}
		b.Spatial.AddGesture(g)

	case ports.ClearGestures:
		b.Spatial.ClearGestures()

	case ports.PinInput:
		p, ok := d.(ports.PinData)
		if !ok {
			return curated.Errorf(ports.BadEventData, ev, d)
		}
		pn, err := b.Pins.Pin(p.ID)
		if err != nil {
			return err
		}
		pn.SetInput(p.Level)

	case ports.Field:
		f, ok := d.(ports.FieldData)
		if !ok {
			return curated.Errorf(ports.BadEventData, ev, d)
		}
		b.Spatial.SetField(f.Strength, f.Direction)

	case ports.Temperature:
		t, ok := d.(int)
		if !ok {
			return curated.Errorf(ports.BadEventData, ev, d)
		}
		b.SetTemperature(t)

	case ports.Reset:
		b.Reset()

	default:
		return curated.Errorf(ports.UnhandledEvent, ev)
	}

	return nil
}
