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

package plainterm

import (
	"image/color"
	"sync"

	"github.com/jetsetilly/bitsim/hardware/display"
	"tinygo.org/x/drivers"
)

// Screen is a drivers.Displayer with one pixel for every LED. Pixels are
// staged by SetPixel() and committed by Display(). Frames from the board
// display are copied to the Screen by a display.Mirror.
type Screen struct {
	crit      sync.Mutex
	staged    [display.Width][display.Height]int
	committed [display.Width][display.Height]int
	dirty     bool
}

var _ drivers.Displayer = (*Screen)(nil)

// Size implements the drivers.Displayer interface.
func (scr *Screen) Size() (x, y int16) {
	return display.Width, display.Height
}

// SetPixel implements the drivers.Displayer interface.
func (scr *Screen) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= display.Width || y >= display.Height {
		return
	}
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.staged[x][y] = display.Lightness(c)
}

// Display implements the drivers.Displayer interface.
func (scr *Screen) Display() error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.committed = scr.staged
	scr.dirty = true
	return nil
}

// LEDs returns the committed LED values and whether they have changed since
// the last call to LEDs().
func (scr *Screen) LEDs() ([display.Width][display.Height]int, bool) {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	d := scr.dirty
	scr.dirty = false
	return scr.committed, d
}
