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

// Package spatial is the orientation of the board and the magnetic field it
// sits in. The Accelerometer and Compass types derive sensor readings from
// that state.
//
// The orientation, the gestures and the magnetic field are set from outside
// the board. Nothing in the board changes them.
package spatial

import (
	"math"
	"sync"
)

// Sentinal errors.
const (
	NotCalibrated   = "spatial: compass is not calibrated"
	InvalidArgument = "spatial: %s"
)

// Gravity is the acceleration due to gravity in milli-g.
const Gravity = 1024

// DefaultFieldStrength is the strength of the magnetic field in nano-tesla.
const DefaultFieldStrength = 50000

// Spatial is the shared state read by the accelerometer and the compass.
type Spatial struct {
	crit sync.RWMutex

	orientation Matrix

	current  Gesture
	appeared map[Gesture]bool
	history  []Gesture

	// magnetic field. the direction is in radians
	strength  float64
	direction float64

	calibrated bool
}

// NewSpatial is the preferred method of initialisation for the Spatial type.
func NewSpatial() *Spatial {
	s := &Spatial{}
	s.Reset()
	return s
}

// Reset the board to lie face up in the default magnetic field. Gestures and
// calibration are forgotten.
func (s *Spatial) Reset() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.orientation = Identity()
	s.current = FaceUp
	s.appeared = make(map[Gesture]bool)
	s.history = nil
	s.strength = DefaultFieldStrength
	s.direction = 0
	s.calibrated = false
}

// SetOrientation sets the orientation of the board.
func (s *Spatial) SetOrientation(m Matrix) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.orientation = m
}

// Orientation returns the orientation of the board.
func (s *Spatial) Orientation() Matrix {
	s.crit.RLock()
	defer s.crit.RUnlock()
	return s.orientation
}

// Tilt sets the orientation of the board by rotating it from face up by x
// radians about the Y axis and by y radians about the X axis.
func (s *Spatial) Tilt(x float64, y float64) {
	s.SetOrientation(RotateY(x).Mul(RotateX(-y)).Mul(Identity()))
}

// AddGesture makes the gesture the current gesture. The gesture is added to
// the history unless it is already the current gesture.
func (s *Spatial) AddGesture(g Gesture) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if s.current != g {
		s.history = append(s.history, g)
	}
	s.current = g
	s.appeared[g] = true
}

// ClearGestures empties the history and forgets which gestures have
// appeared.
func (s *Spatial) ClearGestures() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.history = nil
	clear(s.appeared)
}

// SetField sets the strength and direction of the magnetic field. The
// direction is the angle, in radians, of the field in the horizontal plane.
func (s *Spatial) SetField(strength float64, direction float64) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.strength = math.Abs(strength)
	s.direction = direction
}

// Field returns the strength and direction of the magnetic field.
func (s *Spatial) Field() (float64, float64) {
	s.crit.RLock()
	defer s.crit.RUnlock()
	return s.strength, s.direction
}

// Accelerometer returns the accelerometer view of the spatial state.
func (s *Spatial) Accelerometer() *Accelerometer {
	return &Accelerometer{s: s}
}

// Compass returns the compass view of the spatial state.
func (s *Spatial) Compass() *Compass {
	return &Compass{s: s}
}
