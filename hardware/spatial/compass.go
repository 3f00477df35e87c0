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

import (
	"math"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/mathx"
)

// Compass reports the magnetic field relative to the board. Every reading
// fails with NotCalibrated until Calibrate() has been called.
type Compass struct {
	s *Spatial
}

// Calibrate the compass.
func (c *Compass) Calibrate() {
	c.s.crit.Lock()
	defer c.s.crit.Unlock()
	c.s.calibrated = true
}

// IsCalibrated returns true if the compass has been calibrated.
func (c *Compass) IsCalibrated() bool {
	c.s.crit.RLock()
	defer c.s.crit.RUnlock()
	return c.s.calibrated
}

// ClearCalibration forgets the calibration.
func (c *Compass) ClearCalibration() {
	c.s.crit.Lock()
	defer c.s.crit.Unlock()
	c.s.calibrated = false
}

func (c *Compass) axis(i int) (int, error) {
	c.s.crit.RLock()
	defer c.s.crit.RUnlock()

	if !c.s.calibrated {
		return 0, curated.Errorf(NotCalibrated)
	}

	sin, cos := math.Sincos(c.s.direction)
	x := c.s.strength * cos
	y := c.s.strength * sin
	r := c.s.orientation[i]
	return int(x*r[0] + y*r[1]), nil
}

// GetX returns the field strength along the X axis.
func (c *Compass) GetX() (int, error) {
	return c.axis(0)
}

// GetY returns the field strength along the Y axis.
func (c *Compass) GetY() (int, error) {
	return c.axis(1)
}

// GetZ returns the field strength along the Z axis.
func (c *Compass) GetZ() (int, error) {
	return c.axis(2)
}

// Heading returns the compass bearing in degrees, in the range 0 to 359.
func (c *Compass) Heading() (int, error) {
	x, err := c.GetX()
	if err != nil {
		return 0, err
	}
	y, err := c.GetY()
	if err != nil {
		return 0, err
	}
	a := math.Atan2(float64(y), float64(x)) * 180 / math.Pi
	return mathx.Mod(int(-90-a), 360), nil
}

// GetFieldStrength returns the strength of the magnetic field.
func (c *Compass) GetFieldStrength() (int, error) {
	c.s.crit.RLock()
	defer c.s.crit.RUnlock()
	if !c.s.calibrated {
		return 0, curated.Errorf(NotCalibrated)
	}
	return int(c.s.strength), nil
}
