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

package script_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/environment"
	"github.com/jetsetilly/bitsim/hardware"
	"github.com/jetsetilly/bitsim/hardware/images"
	"github.com/jetsetilly/bitsim/hardware/ports"
	"github.com/jetsetilly/bitsim/hardware/preferences"
	"github.com/jetsetilly/bitsim/hardware/spatial"
	"github.com/jetsetilly/bitsim/script"
	"github.com/jetsetilly/bitsim/test"
)

func newBoard(t *testing.T) *hardware.Board {
	t.Helper()
	env, err := environment.NewEnvironment(nil, preferences.NewDefaultPreferences())
	test.DemandSuccess(t, err)
	b, err := hardware.NewBoard(env)
	test.DemandSuccess(t, err)
	t.Cleanup(b.End)
	return b
}

func run(t *testing.T, b *hardware.Board, lines ...string) error {
	t.Helper()
	src := "bitsimscript\ntest\n" + strings.Join(lines, "\n")
	scr, err := script.Parse("test", strings.NewReader(src), b)
	test.DemandSuccess(t, err)
	return scr.Run(context.Background())
}

func TestHeader(t *testing.T) {
	b := newBoard(t)

	_, err := script.Parse("empty", strings.NewReader(""), b)
	test.ExpectSuccess(t, curated.Is(err, script.NotAScript))

	_, err = script.Parse("bad", strings.NewReader("macro\nv1\nPRESS A"), b)
	test.ExpectSuccess(t, curated.Is(err, script.NotAScript))

	_, err = script.NewScript(filepath.Join(t.TempDir(), "missing"), b)
	test.ExpectFailure(t, err)
}

func TestUserInstructions(t *testing.T) {
	b := newBoard(t)

	err := run(t, b,
		"-- a comment",
		"",
		"CLICK A",
		"PRESS B",
		"TEMP 30",
		"GESTURE face down",
		`PIN 1 1023`,
	)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, b.ButtonA.GetPresses(), 1)
	test.ExpectSuccess(t, !b.ButtonA.IsPressed())
	test.ExpectSuccess(t, b.ButtonB.IsPressed())
	test.ExpectEquality(t, b.Temperature(), 30)
	test.ExpectSuccess(t, b.Accelerometer.WasGesture(spatial.FaceDown))

	p, err := b.Pins.Pin(1)
	test.DemandSuccess(t, err)
	touched, err := p.IsTouched()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, touched)

	test.DemandSuccess(t, run(t, b, "TILT 90 0"))
	x, _, z := b.Accelerometer.GetValues()
	test.ExpectInequality(t, x, 0)
	test.ExpectEquality(t, z, 0)

	test.DemandSuccess(t, run(t, b, "RESET"))
	test.ExpectEquality(t, b.Temperature(), hardware.DefaultTemperature)
}

func TestDisplayInstructions(t *testing.T) {
	b := newBoard(t)

	test.DemandSuccess(t, run(t, b, "SHOW HEART"))
	test.ExpectSuccess(t, b.Display.Image().Equal(images.Heart))

	test.DemandSuccess(t, run(t, b, `IMAGE "90000:00000:00000:00000:00009"`))
	v, err := b.Display.GetPixel(4, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 9)

	test.DemandSuccess(t, run(t, b, "CLEAR", "PIXEL 2 2 5"))
	v, err = b.Display.GetPixel(2, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 5)

	test.DemandSuccess(t, run(t, b, `SCROLL "HI" 1 CLEAR`))
	test.ExpectSuccess(t, b.Display.Image().Equal(images.NewImage(5, 5)))

	test.DemandSuccess(t, run(t, b, "DISPLAY OFF"))
	test.ExpectSuccess(t, !b.Display.IsOn())
	test.ExpectFailure(t, run(t, b, "DISPLAY SIDEWAYS"))
}

func TestLoops(t *testing.T) {
	b := newBoard(t)

	err := run(t, b,
		"CLEAR",
		"DO 5 x",
		"  DO 2",
		"    PIXEL %x 0 9",
		"  LOOP",
		"LOOP",
	)
	test.DemandSuccess(t, err)

	for x := range 5 {
		v, err := b.Display.GetPixel(x, 0)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, 9)
	}

	test.ExpectFailure(t, run(t, b, "LOOP"))
	test.ExpectFailure(t, run(t, b, "DO 2"))
	test.ExpectFailure(t, run(t, b, "PIXEL %y 0 9"))
}

func TestMusicInstructions(t *testing.T) {
	b := newBoard(t)

	test.DemandSuccess(t, run(t, b, "TEMPO 4 6000", "PLAY JUMP_UP"))
	test.ExpectEquality(t, len(b.Tones.Drain()), 5)

	test.DemandSuccess(t, run(t, b, "PLAY c4:1 r e4:1"))
	test.ExpectEquality(t, len(b.Tones.Drain()), 2)

	test.DemandSuccess(t, run(t, b, "PITCH 440 10"))
	test.ExpectEquality(t, len(b.Tones.Drain()), 1)

	test.ExpectFailure(t, run(t, b, "PLAY X9"))
}

func TestErrors(t *testing.T) {
	b := newBoard(t)

	err := run(t, b, "PRESS A", "FROB")
	test.ExpectSuccess(t, curated.Is(err, script.LineError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "test: 4:"))

	test.ExpectFailure(t, run(t, b, "PRESS C"))
	test.ExpectFailure(t, run(t, b, "GESTURE sideways"))
	test.ExpectFailure(t, run(t, b, "TEMP hot"))
	test.ExpectFailure(t, run(t, b, "TILT 1"))
	test.ExpectFailure(t, run(t, b, `SCROLL "unterminated`))
}

func TestQuitAndCancel(t *testing.T) {
	b := newBoard(t)

	test.DemandSuccess(t, run(t, b, "TEMP 10", "QUIT", "TEMP 20"))
	test.ExpectEquality(t, b.Temperature(), 10)

	src := "bitsimscript\ntest\nWAIT 10000\nTEMP 40"
	scr, err := script.Parse("test", strings.NewReader(src), b)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	test.DemandSuccess(t, scr.Run(ctx))
	test.ExpectEquality(t, b.Temperature(), 10)
}

func TestMemviz(t *testing.T) {
	b := newBoard(t)
	fn := filepath.Join(t.TempDir(), "board.dot")

	test.DemandSuccess(t, run(t, b, "SHOW HAPPY", "MEMVIZ "+fn))

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Contains(d, []byte("digraph")))
}

func TestRecorder(t *testing.T) {
	b := newBoard(t)

	var buf bytes.Buffer
	rec, err := script.NewRecorder(&buf)
	test.DemandSuccess(t, err)
	b.AddRecorder(rec)

	test.DemandSuccess(t, b.HandleEvent(ports.ButtonA, true))
	test.DemandSuccess(t, b.HandleEvent(ports.ButtonA, false))
	test.DemandSuccess(t, b.HandleEvent(ports.Gesture, spatial.Shake))
	test.DemandSuccess(t, b.HandleEvent(ports.Temperature, 35))
	test.DemandSuccess(t, b.HandleEvent(ports.PinInput, ports.PinData{ID: 2, Level: 700}))
	test.DemandSuccess(t, b.HandleEvent(ports.Tilt, ports.TiltData{X: 0.5, Y: -0.25}))
	test.DemandSuccess(t, b.HandleEvent(ports.Field, ports.FieldData{Strength: 1000, Direction: 1}))
	b.RemoveRecorders()

	s := buf.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "bitsimscript\n"))
	test.ExpectSuccess(t, strings.Contains(s, "PRESS A\n"))
	test.ExpectSuccess(t, strings.Contains(s, "RELEASE A\n"))
	test.ExpectSuccess(t, strings.Contains(s, "GESTURE shake\n"))
	test.ExpectSuccess(t, strings.Contains(s, "TEMP 35\n"))
	test.ExpectSuccess(t, strings.Contains(s, "PIN 2 700\n"))

	// replaying the recording on a second board results in the same state
	replay := newBoard(t)
	scr, err := script.Parse("recording", strings.NewReader(s), replay)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, scr.Run(context.Background()))

	test.ExpectEquality(t, replay.ButtonA.GetPresses(), 1)
	test.ExpectEquality(t, replay.Temperature(), 35)
	test.ExpectSuccess(t, replay.Accelerometer.WasGesture(spatial.Shake))

	want := b.State()
	got := replay.State()
	for i := range 3 {
		test.ExpectEquality(t, got.Accelerometer[i], want.Accelerometer[i])
	}
	p, err := replay.Pins.Pin(2)
	test.DemandSuccess(t, err)
	level, err := p.ReadAnalog()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, level, 700)
}
