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
	"sync"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/mathx"
)

// Sentinal errors.
const (
	NoPin                = "pins: there is no pin %d"
	OccupiedPin          = "pins: pin %d is occupied by %s"
	ReservedPin          = "pins: pin %d is reserved"
	UnsupportedOperation = "pins: pin %d does not support %s"
	InvalidArgument      = "pins: %s"
)

// NumPins is the size of the pin table. Not every number in the range has a
// pin.
const NumPins = 21

// MaxLevel is the highest level a pin can be driven to or read at. A digital
// one is represented by MaxLevel.
const MaxLevel = 1023

// the level at which an input reads as a digital one.
const digitalThreshold = 512

// Limits and defaults for the PWM period. Values are in microseconds.
const (
	MinPeriod     = 256
	DefaultPeriod = 20000
)

// Occupancy describes the role a pin has been given by the board. A pin that
// is not Free cannot be used for I/O.
type Occupancy int

// List of valid Occupancy values.
const (
	Free Occupancy = iota
	Reserved
	ButtonA
	ButtonB
	Screen
)

func (o Occupancy) String() string {
	switch o {
	case Free:
		return "free"
	case Reserved:
		return "reserved"
	case ButtonA:
		return "button A"
	case ButtonB:
		return "button B"
	case Screen:
		return "LED screen"
	}
	return "unknown"
}

// pins that drive the LED matrix when the screen is on.
func isScreenPin(id int) bool {
	switch id {
	case 3, 4, 6, 7, 9, 10:
		return true
	}
	return false
}

// Pins is the table of every pin on the board and the screen mode flag that
// decides whether the screen pins are available.
type Pins struct {
	crit sync.RWMutex

	// indexed by pin number. pins 17 and 18 do not exist and are nil
	table [NumPins]*Pin

	screenMode bool
}

// NewPins is the preferred method of initialisation for the Pins type.
func NewPins() *Pins {
	p := &Pins{}
	for id := range NumPins {
		if id == 17 || id == 18 {
			continue
		}
		p.table[id] = &Pin{
			pins:        p,
			id:          id,
			period:      DefaultPeriod,
			inputPeriod: DefaultPeriod,
		}
	}
	return p
}

// Pin returns the pin with the specified number.
func (p *Pins) Pin(id int) (*Pin, error) {
	if id < 0 || id >= NumPins || p.table[id] == nil {
		return nil, curated.Errorf(NoPin, id)
	}
	return p.table[id], nil
}

// All returns every pin in order of pin number.
func (p *Pins) All() []*Pin {
	all := make([]*Pin, 0, NumPins)
	for _, pn := range p.table {
		if pn != nil {
			all = append(all, pn)
		}
	}
	return all
}

// SetScreenMode sets whether the screen pins are occupied by the LED matrix.
func (p *Pins) SetScreenMode(on bool) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.screenMode = on
}

// ScreenMode returns true if the screen pins are occupied by the LED matrix.
func (p *Pins) ScreenMode() bool {
	p.crit.RLock()
	defer p.crit.RUnlock()
	return p.screenMode
}

// Reset returns every pin to its initial state. Screen mode is not changed.
func (p *Pins) Reset() {
	p.crit.Lock()
	defer p.crit.Unlock()
	for _, pn := range p.table {
		if pn == nil {
			continue
		}
		pn.level = 0
		pn.period = DefaultPeriod
		pn.input = 0
		pn.inputPeriod = DefaultPeriod
	}
}

// States returns a snapshot of every pin.
func (p *Pins) States() []State {
	p.crit.RLock()
	defer p.crit.RUnlock()

	s := make([]State, 0, NumPins)
	for _, pn := range p.table {
		if pn != nil {
			s = append(s, pn.state())
		}
	}
	return s
}

// Pin is a single pin on the board. Output is driven by the I/O functions and
// input is driven from outside the board with SetInput().
type Pin struct {
	pins *Pins
	id   int

	// output level and PWM period in microseconds
	level  int
	period int

	// input level and period. never written by the I/O functions
	input       int
	inputPeriod int

	// edge notification for the gpio adapter
	edge chan struct{}
}

func (pn *Pin) String() string {
	return fmt.Sprintf("pin%d", pn.id)
}

// ID returns the pin number.
func (pn *Pin) ID() int {
	return pn.id
}

// occupancy must be called with the critical section held.
func (pn *Pin) occupancy() Occupancy {
	switch {
	case pn.id == 12:
		return Reserved
	case pn.id == 5:
		return ButtonA
	case pn.id == 11:
		return ButtonB
	case pn.pins.screenMode && isScreenPin(pn.id):
		return Screen
	}
	return Free
}

// Occupancy returns the role the pin currently has.
func (pn *Pin) Occupancy() Occupancy {
	pn.pins.crit.RLock()
	defer pn.pins.crit.RUnlock()
	return pn.occupancy()
}

// check must be called with the critical section held.
func (pn *Pin) check() error {
	switch o := pn.occupancy(); o {
	case Free:
		return nil
	case Reserved:
		return curated.Errorf(ReservedPin, pn.id)
	default:
		return curated.Errorf(OccupiedPin, pn.id, o)
	}
}

// WriteDigital sets the output to zero or MaxLevel. The value must be 0 or 1.
func (pn *Pin) WriteDigital(v int) error {
	pn.pins.crit.Lock()
	defer pn.pins.crit.Unlock()

	if err := pn.check(); err != nil {
		return err
	}

	switch v {
	case 0:
		pn.level = 0
	case 1:
		pn.level = MaxLevel
	default:
		return curated.Errorf(InvalidArgument, fmt.Sprintf("digital value must be 0 or 1 (%d)", v))
	}
	return nil
}

// ReadDigital returns 1 if the input level is at least half of MaxLevel.
func (pn *Pin) ReadDigital() (int, error) {
	pn.pins.crit.RLock()
	defer pn.pins.crit.RUnlock()

	if err := pn.check(); err != nil {
		return 0, err
	}
	if pn.input >= digitalThreshold {
		return 1, nil
	}
	return 0, nil
}

// WriteAnalog sets the output level. The value must be in the range 0 to
// MaxLevel inclusive.
func (pn *Pin) WriteAnalog(v int) error {
	pn.pins.crit.Lock()
	defer pn.pins.crit.Unlock()

	if err := pn.check(); err != nil {
		return err
	}
	if !mathx.Between(v, 0, MaxLevel) {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("analog value must be between 0 and %d (%d)", MaxLevel, v))
	}
	pn.level = v
	return nil
}

// ReadAnalog returns the input level. Only pins 0 to 4 and pin 10 have an
// analog input.
func (pn *Pin) ReadAnalog() (int, error) {
	pn.pins.crit.RLock()
	defer pn.pins.crit.RUnlock()

	if err := pn.check(); err != nil {
		return 0, err
	}
	if pn.id > 4 && pn.id != 10 {
		return 0, curated.Errorf(UnsupportedOperation, pn.id, "analog input")
	}
	return pn.input, nil
}

// SetAnalogPeriod sets the PWM period in milliseconds.
func (pn *Pin) SetAnalogPeriod(ms int) error {
	pn.pins.crit.Lock()
	defer pn.pins.crit.Unlock()

	if err := pn.check(); err != nil {
		return err
	}
	if ms < 1 {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("analog period must be at least 1ms (%d)", ms))
	}
	pn.period = ms * 1000
	return nil
}

// SetAnalogPeriodMicroseconds sets the PWM period in microseconds.
func (pn *Pin) SetAnalogPeriodMicroseconds(us int) error {
	pn.pins.crit.Lock()
	defer pn.pins.crit.Unlock()

	if err := pn.check(); err != nil {
		return err
	}
	if us < MinPeriod {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("analog period must be at least %dus (%d)", MinPeriod, us))
	}
	pn.period = us
	return nil
}

// AnalogPeriodMicroseconds returns the PWM period in microseconds.
func (pn *Pin) AnalogPeriodMicroseconds() (int, error) {
	pn.pins.crit.RLock()
	defer pn.pins.crit.RUnlock()

	if err := pn.check(); err != nil {
		return 0, err
	}
	return pn.period, nil
}

// IsTouched returns true if the pin is being touched. Only pins 0, 1 and 2
// are touch sensitive. A touch is an input that reads as a digital one.
func (pn *Pin) IsTouched() (bool, error) {
	pn.pins.crit.RLock()
	defer pn.pins.crit.RUnlock()

	if err := pn.check(); err != nil {
		return false, err
	}
	if pn.id > 2 {
		return false, curated.Errorf(UnsupportedOperation, pn.id, "touch")
	}
	return pn.input >= digitalThreshold, nil
}

// SetInput drives the input level of the pin. The value is clamped to the
// range 0 to MaxLevel. Occupancy is not checked because the input is driven
// from outside the board.
func (pn *Pin) SetInput(level int) {
	pn.pins.crit.Lock()
	defer pn.pins.crit.Unlock()

	level = mathx.Clamp(level, 0, MaxLevel)
	before := pn.input >= digitalThreshold
	pn.input = level

	if pn.edge != nil && before != (level >= digitalThreshold) {
		select {
		case pn.edge <- struct{}{}:
		default:
		}
	}
}

// SetInputPeriod sets the PWM period, in microseconds, of the input signal.
func (pn *Pin) SetInputPeriod(us int) {
	pn.pins.crit.Lock()
	defer pn.pins.crit.Unlock()
	pn.inputPeriod = max(us, 0)
}

// State is a snapshot of a pin for use by renderers.
type State struct {
	ID          int
	Occupancy   Occupancy
	Level       int
	Period      int
	Input       int
	InputPeriod int
}

// state must be called with the critical section held.
func (pn *Pin) state() State {
	return State{
		ID:          pn.id,
		Occupancy:   pn.occupancy(),
		Level:       pn.level,
		Period:      pn.period,
		Input:       pn.input,
		InputPeriod: pn.inputPeriod,
	}
}

// State returns a snapshot of the pin.
func (pn *Pin) State() State {
	pn.pins.crit.RLock()
	defer pn.pins.crit.RUnlock()
	return pn.state()
}

// Summary describes the state of the pin in a single line.
func (s State) Summary() string {
	period := func(us int) string {
		if us < 1000 {
			return fmt.Sprintf("%dus", us)
		}
		return fmt.Sprintf("%gms", float64(us)/1000)
	}

	switch s.Occupancy {
	case Free:
	case Reserved:
		return "reserved"
	default:
		return fmt.Sprintf("occupied by %s", s.Occupancy)
	}

	if s.Level > 0 {
		if s.Level == MaxLevel {
			return "output: one (digital)"
		}
		return fmt.Sprintf("output: %d (analog) period %s", s.Level, period(s.Period))
	}
	if s.Input > 0 {
		if s.Input == MaxLevel {
			return "input: one (digital)"
		}
		return fmt.Sprintf("input: %d (analog) period %s", s.Input, period(s.InputPeriod))
	}
	return "spare"
}
