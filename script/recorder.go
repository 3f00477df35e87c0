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

package script

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/hardware/ports"
	"github.com/jetsetilly/bitsim/hardware/spatial"
	"github.com/jetsetilly/bitsim/logger"
	"github.com/jetsetilly/bitsim/version"
)

// RecordingError is returned when the recording cannot be written.
const RecordingError = "script: recording: %v"

// Recorder transcribes board events as script instructions. The time between
// events is recorded with the WAIT instruction.
//
// Recorder implements the ports.EventRecorder interface.
type Recorder struct {
	crit   sync.Mutex
	output io.Writer
	last   time.Time
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// The script header is written immediately.
func NewRecorder(output io.Writer) (*Recorder, error) {
	rec := &Recorder{
		output: output,
		last:   time.Now(),
	}

	ver, _, _ := version.Version()
	if err := rec.write(headerID, ver); err != nil {
		return nil, err
	}

	return rec, nil
}

func (rec *Recorder) write(lines ...string) error {
	_, err := io.WriteString(rec.output, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	return nil
}

func degrees(rad float64) string {
	return strconv.FormatFloat(rad*180/math.Pi, 'f', -1, 64)
}

func float(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RecordEvent implements the ports.EventRecorder interface.
func (rec *Recorder) RecordEvent(ev ports.Event, d ports.EventData) error {
	var ins string

	switch ev {
	case ports.NoEvent:
		return nil

	case ports.ButtonA, ports.ButtonB:
		bt := "A"
		if ev == ports.ButtonB {
			bt = "B"
		}
		if d.(bool) {
			ins = fmt.Sprintf("PRESS %s", bt)
		} else {
			ins = fmt.Sprintf("RELEASE %s", bt)
		}

	case ports.Tilt:
		t := d.(ports.TiltData)
		ins = fmt.Sprintf("TILT %s %s", degrees(t.X), degrees(t.Y))

	case ports.Orientation:
		m := d.(spatial.Matrix)
		s := make([]string, 0, 9)
		for _, r := range m {
			for _, v := range r {
				s = append(s, float(v))
			}
		}
		ins = fmt.Sprintf("ORIENT %s", strings.Join(s, " "))

	case ports.Gesture:
		ins = fmt.Sprintf("GESTURE %s", d.(spatial.Gesture))

	case ports.ClearGestures:
		ins = "CLEARGESTURES"

	case ports.PinInput:
		p := d.(ports.PinData)
		ins = fmt.Sprintf("PIN %d %d", p.ID, p.Level)

	case ports.Field:
		f := d.(ports.FieldData)
		ins = fmt.Sprintf("FIELD %s %s", float(f.Strength), degrees(f.Direction))

	case ports.Temperature:
		ins = fmt.Sprintf("TEMP %d", d.(int))

	case ports.Reset:
		ins = "RESET"

	default:
		logger.Logf(logger.Allow, "script", "cannot record %s event", ev)
		return nil
	}

	rec.crit.Lock()
	defer rec.crit.Unlock()

	now := time.Now()
	wait := now.Sub(rec.last).Milliseconds()
	rec.last = now

	if wait > 0 {
		return rec.write(fmt.Sprintf("WAIT %d", wait), ins)
	}
	return rec.write(ins)
}
