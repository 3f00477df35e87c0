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

package hardware_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/environment"
	"github.com/jetsetilly/bitsim/hardware"
	"github.com/jetsetilly/bitsim/hardware/images"
	"github.com/jetsetilly/bitsim/hardware/music"
	"github.com/jetsetilly/bitsim/hardware/pins"
	"github.com/jetsetilly/bitsim/hardware/ports"
	"github.com/jetsetilly/bitsim/hardware/preferences"
	"github.com/jetsetilly/bitsim/hardware/spatial"
	"github.com/jetsetilly/bitsim/notifications"
	"github.com/jetsetilly/bitsim/test"
)

type notices []notifications.Notice

func (n *notices) Notify(notice notifications.Notice) error {
	*n = append(*n, notice)
	return nil
}

type recorder []ports.Event

func (r *recorder) RecordEvent(ev ports.Event, _ ports.EventData) error {
	*r = append(*r, ev)
	return nil
}

func newBoard(t *testing.T, n *notices) *hardware.Board {
	t.Helper()
	var notify notifications.Notify
	if n != nil {
		notify = n
	}
	env, err := environment.NewEnvironment(notify, preferences.NewDefaultPreferences())
	test.DemandSuccess(t, err)
	b, err := hardware.NewBoard(env)
	test.DemandSuccess(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	_, err := hardware.NewBoard(nil)
	test.ExpectFailure(t, err)

	b := newBoard(t, nil)
	test.ExpectSuccess(t, b.Display.IsOn())
	test.ExpectSuccess(t, b.Pins.ScreenMode())
	test.ExpectEquality(t, b.Temperature(), hardware.DefaultTemperature)

	p, err := b.MusicPin()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ID(), 0)
}

func TestHandleEvent(t *testing.T) {
	b := newBoard(t, nil)
	r := &recorder{}
	b.AddRecorder(r)

	test.ExpectSuccess(t, b.HandleEvent(ports.ButtonA, true))
	test.ExpectSuccess(t, b.HandleEvent(ports.ButtonA, false))
	test.ExpectSuccess(t, b.HandleEvent(ports.ButtonB, true))
	test.ExpectEquality(t, b.ButtonA.GetPresses(), 1)
	test.ExpectEquality(t, b.ButtonA.IsPressed(), false)
	test.ExpectSuccess(t, b.ButtonB.IsPressed())

	err := b.HandleEvent(ports.ButtonA, 1)
	test.ExpectSuccess(t, curated.Is(err, ports.BadEventData))
	err = b.HandleEvent(ports.Event("Jump"), nil)
	test.ExpectSuccess(t, curated.Is(err, ports.UnhandledEvent))

	test.ExpectSuccess(t, b.HandleEvent(ports.PinInput, ports.PinData{ID: 1, Level: 700}))
	p, _ := b.Pins.Pin(1)
	v, err := p.ReadAnalog()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 700)

	err = b.HandleEvent(ports.PinInput, ports.PinData{ID: 17, Level: 1})
	test.ExpectSuccess(t, curated.Is(err, pins.NoPin))

	test.ExpectSuccess(t, b.HandleEvent(ports.Gesture, spatial.Shake))
	test.ExpectSuccess(t, b.Accelerometer.IsGesture(spatial.Shake))

	test.ExpectSuccess(t, b.HandleEvent(ports.Tilt, ports.TiltData{X: 0.5}))
	test.ExpectInequality(t, b.Accelerometer.GetX(), 0)

	test.ExpectSuccess(t, b.HandleEvent(ports.Temperature, 150))
	test.ExpectEquality(t, b.Temperature(), 100)

	test.ExpectSuccess(t, b.HandleEvent(ports.Field, ports.FieldData{Strength: 100, Direction: 0}))
	s, _ := b.Spatial.Field()
	test.ExpectEquality(t, s, 100.0)

	// only successful events are recorded
	test.ExpectEquality(t, len(*r), 8)

	test.ExpectSuccess(t, b.HandleEvent(ports.Reset, nil))
	test.ExpectEquality(t, b.Temperature(), hardware.DefaultTemperature)
	test.ExpectEquality(t, b.ButtonB.IsPressed(), false)
	test.ExpectEquality(t, b.Accelerometer.GetX(), 0)
}

func TestCalibrateCompass(t *testing.T) {
	n := &notices{}
	b := newBoard(t, n)

	_, err := b.Compass.Heading()
	test.ExpectSuccess(t, curated.Is(err, spatial.NotCalibrated))

	start := time.Now()
	test.ExpectSuccess(t, b.CalibrateCompass())
	test.ExpectSuccess(t, time.Since(start) >= time.Second)
	test.ExpectSuccess(t, b.Compass.IsCalibrated())
	test.ExpectSuccess(t, b.Display.Image().Equal(images.MustParse("09090:09090:00000:90009:09990")))

	test.DemandEquality(t, len(*n), 2)
	test.ExpectEquality(t, (*n)[0], notifications.NotifyCalibrating)
	test.ExpectEquality(t, (*n)[1], notifications.NotifyCalibrated)
}

func TestPlayMusic(t *testing.T) {
	b := newBoard(t, nil)
	test.DemandSuccess(t, b.Music.SetTempo(4, 6000))
	test.ExpectSuccess(t, b.PlayMusic(music.JumpUp))
	test.ExpectEquality(t, len(b.Tones.Drain()), 5)

	test.DemandSuccess(t, b.Env.Prefs.MusicPin.Set(8))
	test.ExpectSuccess(t, b.PlayMusic(music.PowerUp, music.NoWait(), music.Loop()))
	p, _ := b.MusicPin()
	test.ExpectSuccess(t, b.Music.Busy(p))
	b.End()
	test.ExpectEquality(t, b.Music.Busy(p), false)
}

func TestState(t *testing.T) {
	b := newBoard(t, nil)
	test.ExpectSuccess(t, b.Display.SetPixel(2, 2, 9))
	b.ButtonA.Press()

	s := b.State()
	test.ExpectEquality(t, s.Frame.Pixels[2][2], uint8(9))
	test.ExpectSuccess(t, s.ButtonA)
	test.ExpectEquality(t, s.ButtonB, false)
	test.ExpectEquality(t, s.Accelerometer[2], -spatial.Gravity)
	test.ExpectEquality(t, s.Gesture, spatial.FaceUp)
	test.ExpectEquality(t, len(s.Pins), 19)
}
