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

package spatial

// Accelerometer reports the direction of gravity relative to the board and
// the gestures the board has made.
type Accelerometer struct {
	s *Spatial
}

func (a *Accelerometer) axis(i int) int {
	a.s.crit.RLock()
	defer a.s.crit.RUnlock()
	return -int(Gravity * a.s.orientation[i][2])
}

// GetX returns the acceleration along the X axis in milli-g.
func (a *Accelerometer) GetX() int {
	return a.axis(0)
}

// GetY returns the acceleration along the Y axis in milli-g.
func (a *Accelerometer) GetY() int {
	return a.axis(1)
}

// GetZ returns the acceleration along the Z axis in milli-g.
func (a *Accelerometer) GetZ() int {
	return a.axis(2)
}

// GetValues returns the acceleration along all three axes.
func (a *Accelerometer) GetValues() (int, int, int) {
	return a.GetX(), a.GetY(), a.GetZ()
}

// CurrentGesture returns the current gesture.
func (a *Accelerometer) CurrentGesture() Gesture {
	a.s.crit.RLock()
	defer a.s.crit.RUnlock()
	return a.s.current
}

// IsGesture returns true if the gesture is the current gesture.
func (a *Accelerometer) IsGesture(g Gesture) bool {
	return a.CurrentGesture() == g
}

// WasGesture returns true if the gesture has appeared since the last call to
// WasGesture() for that gesture. The current gesture returns to FaceUp.
func (a *Accelerometer) WasGesture(g Gesture) bool {
	a.s.crit.Lock()
	defer a.s.crit.Unlock()
	w := a.s.appeared[g]
	a.s.appeared[g] = false
	a.s.current = FaceUp
	return w
}

// GetGestures returns the gesture history, oldest first, and empties it.
func (a *Accelerometer) GetGestures() []Gesture {
	a.s.crit.Lock()
	defer a.s.crit.Unlock()
	h := a.s.history
	a.s.history = nil
	return h
}
