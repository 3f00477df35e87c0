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

package display

import (
	"image/color"
	"sync"

	"github.com/jetsetilly/bitsim/hardware/images"
	"tinygo.org/x/drivers"
)

// Lightness converts a colour to a lightness value. The brightest of the
// three colour channels decides the lightness.
func Lightness(c color.RGBA) int {
	v := max(c.R, c.G, c.B)
	return (int(v)*images.MaxLightness + 127) / 255
}

// Color converts a lightness value to the colour of a red LED.
func Color(v int) color.RGBA {
	v = min(max(v, 0), images.MaxLightness)
	return color.RGBA{R: uint8(v * 255 / images.MaxLightness), A: 255}
}

// Driver allows the display to be drawn to by code written for TinyGo
// displays. Pixels are staged with SetPixel() and committed to the LED matrix
// as a single frame with Display().
type Driver struct {
	disp *Display

	crit   sync.Mutex
	staged *images.Image
}

var _ drivers.Displayer = (*Driver)(nil)

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(disp *Display) *Driver {
	return &Driver{
		disp:   disp,
		staged: images.NewImage(Width, Height),
	}
}

// Size implements the drivers.Displayer interface.
func (dr *Driver) Size() (x, y int16) {
	return Width, Height
}

// SetPixel implements the drivers.Displayer interface. Pixels outside the LED
// matrix are ignored.
func (dr *Driver) SetPixel(x, y int16, c color.RGBA) {
	dr.crit.Lock()
	defer dr.crit.Unlock()
	_ = dr.staged.SetPixel(int(x), int(y), Lightness(c))
}

// Display implements the drivers.Displayer interface.
func (dr *Driver) Display() error {
	dr.crit.Lock()
	img := dr.staged.Copy()
	dr.crit.Unlock()

	dr.disp.draw(img)
	return nil
}

// Mirror copies every frame to a TinyGo display. Each LED is drawn as a
// block of pixels sized to fill the device.
type Mirror struct {
	dev drivers.Displayer
}

// NewMirror is the preferred method of initialisation for the Mirror type.
// The mirror should be added to the display with AddFrameTrigger().
func NewMirror(dev drivers.Displayer) *Mirror {
	return &Mirror{dev: dev}
}

// NewFrame implements the FrameTrigger interface.
func (m *Mirror) NewFrame(f Frame) error {
	w, h := m.dev.Size()
	bw := max(w/Width, 1)
	bh := max(h/Height, 1)

	for x := range int16(Width) {
		for y := range int16(Height) {
			c := Color(int(f.Pixels[x][y]))
			if !f.On {
				c = Color(0)
			}
			for i := range bw {
				for j := range bh {
					m.dev.SetPixel(x*bw+i, y*bh+j, c)
				}
			}
		}
	}

	return m.dev.Display()
}
