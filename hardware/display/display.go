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
	"fmt"
	"sync"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/environment"
	"github.com/jetsetilly/bitsim/hardware/images"
	"github.com/jetsetilly/bitsim/hardware/pins"
	"github.com/jetsetilly/bitsim/hardware/task"
	"github.com/jetsetilly/bitsim/logger"
	"github.com/jetsetilly/bitsim/notifications"
)

// Sentinal errors.
const (
	InvalidArgument = "display: %s"
)

// Size of the LED matrix.
const (
	Width  = 5
	Height = 5
)

// Frame is a copy of the LED matrix at the moment it changed.
type Frame struct {
	Num    int
	On     bool
	Pixels [Width][Height]uint8
}

// Image returns the frame as an image.
func (f Frame) Image() *images.Image {
	img := images.NewImage(Width, Height)
	for x := range Width {
		for y := range Height {
			_ = img.SetPixel(x, y, int(f.Pixels[x][y]))
		}
	}
	return img
}

// FrameTrigger implementations are notified every time the LED matrix
// changes.
type FrameTrigger interface {
	NewFrame(Frame) error
}

// Display is the LED matrix and the animation task that draws to it.
type Display struct {
	env  *environment.Environment
	pins *pins.Pins

	crit sync.RWMutex

	// pixels[x][y]
	pixels   [Width][Height]uint8
	on       bool
	frameNum int

	triggers []FrameTrigger

	// the running animation. at most one
	anim task.Slot
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The display starts switched on.
func NewDisplay(env *environment.Environment, p *pins.Pins) *Display {
	d := &Display{
		env:  env,
		pins: p,
		on:   true,
	}
	d.pins.SetScreenMode(true)
	return d
}

func (d *Display) String() string {
	return d.Image().String()
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (d *Display) AddFrameTrigger(f FrameTrigger) {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.triggers = append(d.triggers, f)
}

// RemoveFrameTrigger removes a FrameTrigger previously added with
// AddFrameTrigger().
func (d *Display) RemoveFrameTrigger(f FrameTrigger) {
	d.crit.Lock()
	defer d.crit.Unlock()
	for i := range d.triggers {
		if d.triggers[i] == f {
			d.triggers = append(d.triggers[:i], d.triggers[i+1:]...)
			return
		}
	}
}

// commit must be called with the critical section held. the frame and the
// list of triggers are returned so that triggers can be run after the
// critical section has been released.
func (d *Display) commit() (Frame, []FrameTrigger) {
	d.frameNum++
	return Frame{
		Num:    d.frameNum,
		On:     d.on,
		Pixels: d.pixels,
	}, d.triggers
}

func (d *Display) trigger(f Frame, triggers []FrameTrigger) {
	for _, t := range triggers {
		if err := t.NewFrame(f); err != nil {
			logger.Log(d.env, "display", err)
		}
	}
}

// draw replaces the entire matrix with the top-left corner of the image.
// pixels outside the image are zero.
func (d *Display) draw(img *images.Image) {
	d.crit.Lock()
	if !d.on {
		d.crit.Unlock()
		return
	}
	for x := range Width {
		for y := range Height {
			d.pixels[x][y] = uint8(img.At(x, y))
		}
	}
	f, t := d.commit()
	d.crit.Unlock()

	d.trigger(f, t)
}

// SetPixel sets the lightness of a single LED.
func (d *Display) SetPixel(x int, y int, v int) error {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("pixel out of range (%d, %d)", x, y))
	}
	if v < 0 || v > images.MaxLightness {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("lightness out of range (%d)", v))
	}

	d.crit.Lock()
	if !d.on {
		d.crit.Unlock()
		return nil
	}
	d.pixels[x][y] = uint8(v)
	f, t := d.commit()
	d.crit.Unlock()

	d.trigger(f, t)
	return nil
}

// GetPixel returns the lightness of a single LED.
func (d *Display) GetPixel(x int, y int) (int, error) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, curated.Errorf(InvalidArgument, fmt.Sprintf("pixel out of range (%d, %d)", x, y))
	}
	d.crit.RLock()
	defer d.crit.RUnlock()
	return int(d.pixels[x][y]), nil
}

// Clear sets every LED to zero.
func (d *Display) Clear() {
	d.crit.Lock()
	if !d.on {
		d.crit.Unlock()
		return
	}
	d.pixels = [Width][Height]uint8{}
	f, t := d.commit()
	d.crit.Unlock()

	d.trigger(f, t)
}

// Image returns a copy of the LED matrix.
func (d *Display) Image() *images.Image {
	return d.Frame().Image()
}

// Frame returns the current state of the LED matrix.
func (d *Display) Frame() Frame {
	d.crit.RLock()
	defer d.crit.RUnlock()
	return Frame{
		Num:    d.frameNum,
		On:     d.on,
		Pixels: d.pixels,
	}
}

// FrameNum returns the number of times the LED matrix has changed.
func (d *Display) FrameNum() int {
	d.crit.RLock()
	defer d.crit.RUnlock()
	return d.frameNum
}

// IsOn returns true if the display is switched on.
func (d *Display) IsOn() bool {
	d.crit.RLock()
	defer d.crit.RUnlock()
	return d.on
}

// On switches the display on. The screen pins become occupied.
func (d *Display) On() {
	d.crit.Lock()
	if d.on {
		d.crit.Unlock()
		return
	}
	d.on = true
	d.pins.SetScreenMode(true)
	f, t := d.commit()
	d.crit.Unlock()

	d.trigger(f, t)
	if err := d.env.Notify(notifications.NotifyScreenOn); err != nil {
		logger.Log(d.env, "display", err)
	}
}

// Off switches the display off. Any animation is stopped, the matrix is
// cleared and the screen pins are freed.
func (d *Display) Off() {
	d.Stop()

	d.crit.Lock()
	if !d.on {
		d.crit.Unlock()
		return
	}
	d.on = false
	d.pixels = [Width][Height]uint8{}
	d.pins.SetScreenMode(false)
	f, t := d.commit()
	d.crit.Unlock()

	d.trigger(f, t)
	if err := d.env.Notify(notifications.NotifyScreenOff); err != nil {
		logger.Log(d.env, "display", err)
	}
}

// Stop cancels any running animation and waits for it to end. The matrix is
// left as it was after the last complete frame.
func (d *Display) Stop() {
	if d.anim.Stop() {
		logger.Log(d.env, "display", "animation cancelled")
	}
}

// Busy returns true if an animation is running.
func (d *Display) Busy() bool {
	return d.anim.Busy()
}

// Reset stops any animation, switches the display on and clears it.
func (d *Display) Reset() {
	d.Stop()
	d.On()
	d.Clear()
}
