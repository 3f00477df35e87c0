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

package pins

import (
	"fmt"
	"time"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/logger"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
)

// GPIO presents a board pin as a periph.io gpio.PinIO. Errors from the board
// pin (for example, an occupied pin) are returned by Out() and PWM(). Read()
// has no way of returning an error and reads as gpio.Low instead.
type GPIO struct {
	pin  *Pin
	pull gpio.Pull
	edge gpio.Edge
}

var _ gpio.PinIO = (*GPIO)(nil)

// NewGPIO returns the gpio.PinIO for the board pin.
func NewGPIO(pn *Pin) *GPIO {
	return &GPIO{
		pin:  pn,
		pull: gpio.Float,
		edge: gpio.NoEdge,
	}
}

// Name implements the pin.Pin interface.
func (g *GPIO) Name() string {
	return fmt.Sprintf("P%d", g.pin.id)
}

// Number implements the pin.Pin interface.
func (g *GPIO) Number() int {
	return g.pin.id
}

// Function implements the pin.Pin interface.
func (g *GPIO) Function() string {
	s := g.pin.State()

	g.pin.pins.crit.RLock()
	edge := g.edge
	g.pin.pins.crit.RUnlock()

	switch {
	case s.Occupancy != Free:
		return s.Occupancy.String()
	case s.Level == MaxLevel:
		return "Out/High"
	case s.Level > 0:
		return "PWM"
	case edge != gpio.NoEdge:
		return "In"
	}
	return "Out/Low"
}

// String implements the conn.Resource interface.
func (g *GPIO) String() string {
	return fmt.Sprintf("%s(%s)", g.Name(), g.pin)
}

// Halt implements the conn.Resource interface.
func (g *GPIO) Halt() error {
	g.pin.pins.crit.Lock()
	defer g.pin.pins.crit.Unlock()
	g.edge = gpio.NoEdge
	g.pin.edge = nil
	return nil
}

// In implements the gpio.PinIn interface.
func (g *GPIO) In(pull gpio.Pull, edge gpio.Edge) error {
	g.pin.pins.crit.Lock()
	defer g.pin.pins.crit.Unlock()

	if err := g.pin.check(); err != nil {
		return err
	}

	if pull != gpio.PullNoChange {
		g.pull = pull
	}

	g.edge = edge
	if edge == gpio.NoEdge {
		g.pin.edge = nil
	} else if g.pin.edge == nil {
		g.pin.edge = make(chan struct{}, 1)
	}

	return nil
}

// Read implements the gpio.PinIn interface.
func (g *GPIO) Read() gpio.Level {
	v, err := g.pin.ReadDigital()
	if err != nil {
		logger.Log(logger.Allow, "gpio", err)
		return gpio.Low
	}
	return v == 1
}

// WaitForEdge implements the gpio.PinIn interface. A negative timeout waits
// forever. Edges are only reported after a call to In() with an edge other
// than gpio.NoEdge.
func (g *GPIO) WaitForEdge(timeout time.Duration) bool {
	g.pin.pins.crit.RLock()
	ch := g.pin.edge
	edge := g.edge
	g.pin.pins.crit.RUnlock()

	if ch == nil {
		return false
	}

	var expire <-chan time.Time
	if timeout >= 0 {
		tmr := time.NewTimer(timeout)
		defer tmr.Stop()
		expire = tmr.C
	}

	for {
		select {
		case <-ch:
			l := g.Read()
			switch edge {
			case gpio.RisingEdge:
				if l == gpio.High {
					return true
				}
			case gpio.FallingEdge:
				if l == gpio.Low {
					return true
				}
			default:
				return true
			}
		case <-expire:
			return false
		}
	}
}

// Pull implements the gpio.PinIn interface.
func (g *GPIO) Pull() gpio.Pull {
	return g.pull
}

// DefaultPull implements the gpio.PinIn interface.
func (g *GPIO) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out implements the gpio.PinOut interface.
func (g *GPIO) Out(l gpio.Level) error {
	if l == gpio.High {
		return g.pin.WriteDigital(1)
	}
	return g.pin.WriteDigital(0)
}

// PWM implements the gpio.PinOut interface. The duty cycle is scaled to the
// range of WriteAnalog() and the frequency sets the analog period. A
// frequency of zero leaves the period unchanged.
func (g *GPIO) PWM(duty gpio.Duty, f physic.Frequency) error {
	if f > 0 {
		err := g.pin.SetAnalogPeriodMicroseconds(int(f.Period() / time.Microsecond))
		if err != nil {
			return err
		}
	}

	if duty < 0 || duty > gpio.DutyMax {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("duty out of range (%s)", duty))
	}

	return g.pin.WriteAnalog(int(int64(duty) * MaxLevel / int64(gpio.DutyMax)))
}

// Register adds every pin to the periph.io gpio registry with the names P0 to
// P20. Pins must be unregistered before the same names can be registered by
// another board.
func (p *Pins) Register() error {
	for _, pn := range p.All() {
		if err := gpioreg.Register(NewGPIO(pn)); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes the pins added by Register().
func (p *Pins) Unregister() {
	for _, pn := range p.All() {
		_ = gpioreg.Unregister(fmt.Sprintf("P%d", pn.id))
	}
}
