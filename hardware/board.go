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
	"sync"
	"time"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/environment"
	"github.com/jetsetilly/bitsim/hardware/buttons"
	"github.com/jetsetilly/bitsim/hardware/display"
	"github.com/jetsetilly/bitsim/hardware/images"
	"github.com/jetsetilly/bitsim/hardware/music"
	"github.com/jetsetilly/bitsim/hardware/pins"
	"github.com/jetsetilly/bitsim/hardware/ports"
	"github.com/jetsetilly/bitsim/hardware/spatial"
	"github.com/jetsetilly/bitsim/hardware/tones"
	"github.com/jetsetilly/bitsim/logger"
	"github.com/jetsetilly/bitsim/mathx"
	"github.com/jetsetilly/bitsim/notifications"
)

// DefaultTemperature is the temperature of the board at startup and after
// Reset().
const DefaultTemperature = 26

// the range of temperatures the board can report.
const (
	minTemperature = 0
	maxTemperature = 100
)

// the image shown while the compass is being calibrated.
var calibrationImage = images.MustParse("09090:09090:00000:90009:09990")

const calibrationDelay = time.Second

// Board is the main container for the emulated components of the board.
type Board struct {
	Env *environment.Environment

	Pins    *pins.Pins
	ButtonA *buttons.Button
	ButtonB *buttons.Button
	Display *display.Display

	Tones *tones.Queue
	Music *music.Music

	Spatial       *spatial.Spatial
	Accelerometer *spatial.Accelerometer
	Compass       *spatial.Compass

	start time.Time

	crit        sync.Mutex
	temperature int
	recorders   []ports.EventRecorder
}

// NewBoard creates a new Board and everything associated with the hardware.
func NewBoard(env *environment.Environment) (*Board, error) {
	if env == nil {
		return nil, curated.Errorf("board: no environment")
	}

	b := &Board{
		Env:         env,
		Pins:        pins.NewPins(),
		ButtonA:     buttons.NewButton("A"),
		ButtonB:     buttons.NewButton("B"),
		Tones:       &tones.Queue{},
		Spatial:     spatial.NewSpatial(),
		start:       time.Now(),
		temperature: DefaultTemperature,
	}

	b.Display = display.NewDisplay(env, b.Pins)
	b.Music = music.NewMusic(env, b.Tones)
	b.Accelerometer = b.Spatial.Accelerometer()
	b.Compass = b.Spatial.Compass()

	return b, nil
}

// RunningTime returns the number of milliseconds since the board was started.
func (b *Board) RunningTime() int {
	return int(time.Since(b.start).Milliseconds())
}

// Sleep pauses the caller for the number of milliseconds.
func (b *Board) Sleep(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Temperature returns the temperature of the board in degrees celsius.
func (b *Board) Temperature() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.temperature
}

// SetTemperature sets the temperature of the board. The value is clamped to
// the range the board can report.
func (b *Board) SetTemperature(t int) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.temperature = mathx.Clamp(t, minTemperature, maxTemperature)
}

// MusicPin returns the pin that is connected to the speaker.
func (b *Board) MusicPin() (*pins.Pin, error) {
	return b.Pins.Pin(b.Env.Prefs.MusicPin.Get().(int))
}

// PlayMusic plays the melody on the music pin.
func (b *Board) PlayMusic(melody []string, opts ...music.Option) error {
	p, err := b.MusicPin()
	if err != nil {
		return err
	}
	return b.Music.Play(p, melody, opts...)
}

// CalibrateCompass shows the calibration image for one second and then marks
// the compass as calibrated.
func (b *Board) CalibrateCompass() error {
	b.notify(notifications.NotifyCalibrating)
	err := b.Display.Show(display.Sequence(calibrationImage), display.WithDelay(calibrationDelay))
	if err != nil {
		return err
	}
	b.Compass.Calibrate()
	b.notify(notifications.NotifyCalibrated)
	return nil
}

// Reset stops all animation and music and returns every component to its
// initial state.
func (b *Board) Reset() {
	b.Display.Reset()
	b.Music.Reset()
	b.Pins.Reset()
	b.ButtonA.Reset()
	b.ButtonB.Reset()
	b.Spatial.Reset()
	_ = b.Tones.Drain()

	b.crit.Lock()
	b.temperature = DefaultTemperature
	b.start = time.Now()
	b.crit.Unlock()

	logger.Log(b.Env, "board", "reset")
}

// End stops all animation and music. The board can still be used after End()
// has been called.
func (b *Board) End() {
	b.Display.Stop()
	b.Music.StopAll()
}

func (b *Board) notify(n notifications.Notice) {
	if err := b.Env.Notify(n); err != nil {
		logger.Log(b.Env, "board", err)
	}
}

// State is a snapshot of the board for use by renderers.
type State struct {
	Frame         display.Frame
	Pins          []pins.State
	ButtonA       bool
	ButtonB       bool
	Accelerometer [3]int
	Gesture       spatial.Gesture
	Temperature   int
	RunningTime   int
}

// State returns a snapshot of the board.
func (b *Board) State() State {
	x, y, z := b.Accelerometer.GetValues()
	return State{
		Frame:         b.Display.Frame(),
		Pins:          b.Pins.States(),
		ButtonA:       b.ButtonA.IsPressed(),
		ButtonB:       b.ButtonB.IsPressed(),
		Accelerometer: [3]int{x, y, z},
		Gesture:       b.Accelerometer.CurrentGesture(),
		Temperature:   b.Temperature(),
		RunningTime:   b.RunningTime(),
	}
}
