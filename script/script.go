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
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/google/shlex"
	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/hardware"
	"github.com/jetsetilly/bitsim/hardware/display"
	"github.com/jetsetilly/bitsim/hardware/images"
	"github.com/jetsetilly/bitsim/hardware/music"
	"github.com/jetsetilly/bitsim/hardware/pins"
	"github.com/jetsetilly/bitsim/hardware/ports"
	"github.com/jetsetilly/bitsim/hardware/spatial"
	"github.com/jetsetilly/bitsim/hardware/task"
	"github.com/jetsetilly/bitsim/logger"
)

// Sentinal errors.
const (
	NotAScript = "script: %s: not a script file"
	LineError  = "script: %s: %d: %v"
)

const (
	headerLineID = iota
	headerLineVersion
	headerNumLines
)

const headerID = "bitsimscript"

// the wait used by WAIT when no duration is given.
const defaultWait = time.Second

// Script is a type that allows control of a board from a series of
// instructions.
type Script struct {
	board *hardware.Board

	name         string
	instructions []string
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(filename string, board *hardware.Board) (*Script, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("script: %v", err)
	}
	defer f.Close()
	return Parse(filename, f, board)
}

// Parse reads a script from the io.Reader. The name is used in error messages.
func Parse(name string, r io.Reader, board *hardware.Board) (*Script, error) {
	scr := &Script{
		board: board,
		name:  name,
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		scr.instructions = append(scr.instructions, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("script: %v", err)
	}

	if len(scr.instructions) < headerNumLines {
		return nil, curated.Errorf(NotAScript, name)
	}
	if strings.TrimSpace(scr.instructions[headerLineID]) != headerID {
		return nil, curated.Errorf(NotAScript, name)
	}

	// ignore version string for now

	// we no longer need the header
	scr.instructions = scr.instructions[headerNumLines:]

	return scr, nil
}

type loop struct {
	line int

	// loop counters count upwards because it is more natural when referencing
	// the counter value to think of the counter as counting upwards
	count    int
	countEnd int

	// if loop counter has been named then we need to know it so that we can
	// update the entry in the variables table
	countName string
}

// Run the script to completion or until the context is done. Run returns nil
// if the context is done.
func (scr *Script) Run(ctx context.Context) error {
	var loops []loop
	variables := make(map[string]int)

	fail := func(ln int, err error) error {
		return curated.Errorf(LineError, scr.name, ln+headerNumLines+1, err)
	}

	for ln := 0; ln < len(scr.instructions); ln++ {
		if ctx.Err() != nil {
			return nil
		}

		s := strings.TrimSpace(scr.instructions[ln])
		if s == "" || strings.HasPrefix(s, "--") {
			continue // for loop
		}

		toks, err := shlex.Split(s)
		if err != nil {
			return fail(ln, err)
		}
		if len(toks) == 0 {
			continue // for loop
		}

		// substitute variables
		for i := 1; i < len(toks); i++ {
			if len(toks[i]) < 2 || toks[i][0] != '%' {
				continue
			}
			v, ok := variables[toks[i][1:]]
			if !ok {
				return fail(ln, fmt.Errorf("variable '%s' does not exist", toks[i][1:]))
			}
			toks[i] = strconv.Itoa(v)
		}

		switch toks[0] {
		case "DO":
			tl := len(toks)
			switch tl {
			case 1:
				return fail(ln, fmt.Errorf("too few arguments for DO"))
			case 2, 3:
				ct, err := strconv.Atoi(toks[1])
				if err != nil {
					return fail(ln, err)
				}
				lp := loop{
					line:     ln,
					countEnd: ct,
				}
				if tl == 3 {
					lp.countName = toks[2]
					variables[lp.countName] = lp.count
				}
				loops = append(loops, lp)
			default:
				return fail(ln, fmt.Errorf("too many arguments for DO"))
			}

		case "LOOP":
			if len(toks) > 1 {
				return fail(ln, fmt.Errorf("too many arguments for LOOP"))
			}

			idx := len(loops) - 1
			if idx == -1 {
				return fail(ln, fmt.Errorf("LOOP without a DO"))
			}

			lp := &loops[idx]
			lp.count++

			if lp.count < lp.countEnd {
				// loop is ongoing so return to start of loop
				ln = lp.line

				// update named variable
				if lp.countName != "" {
					variables[lp.countName] = lp.count
				}
			} else {
				// loop has ended. remove from loop stack and delete variable name
				loops = loops[:idx]
				delete(variables, lp.countName)
			}

		case "WAIT":
			w := defaultWait
			switch len(toks) {
			case 1:
			case 2:
				ms, err := strconv.Atoi(toks[1])
				if err != nil {
					return fail(ln, err)
				}
				w = time.Duration(ms) * time.Millisecond
			default:
				return fail(ln, fmt.Errorf("too many arguments for WAIT"))
			}
			if !task.Sleep(ctx, w) {
				return nil
			}

		case "QUIT":
			if len(toks) > 1 {
				return fail(ln, fmt.Errorf("too many arguments for QUIT"))
			}
			return nil

		default:
			if err := scr.instruction(toks[0], toks[1:]); err != nil {
				return fail(ln, err)
			}
		}
	}

	if len(loops) > 0 {
		return fail(len(scr.instructions)-1, fmt.Errorf("DO without a LOOP"))
	}

	return nil
}

// a negative most value means there is no upper limit.
func arguments(cmd string, args []string, least int, most int) error {
	if len(args) < least {
		return fmt.Errorf("too few arguments for %s", cmd)
	}
	if most >= 0 && len(args) > most {
		return fmt.Errorf("too many arguments for %s", cmd)
	}
	return nil
}

func integers(args []string) ([]int, error) {
	v := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		v[i] = n
	}
	return v, nil
}

func floats(args []string) ([]float64, error) {
	v := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func button(arg string) (ports.Event, error) {
	switch strings.ToUpper(arg) {
	case "A":
		return ports.ButtonA, nil
	case "B":
		return ports.ButtonB, nil
	}
	return ports.NoEvent, fmt.Errorf("unknown button: %s", arg)
}

// the options that can follow the arguments to SHOW and SCROLL
func displayOptions(args []string) ([]display.Option, error) {
	var opts []display.Option
	for _, a := range args {
		switch strings.ToUpper(a) {
		case "NOWAIT":
			opts = append(opts, display.NoWait())
		case "LOOP":
			opts = append(opts, display.Loop())
		case "CLEAR":
			opts = append(opts, display.ClearAfter())
		case "MONO":
			opts = append(opts, display.Monospace())
		default:
			ms, err := strconv.Atoi(a)
			if err != nil {
				return nil, fmt.Errorf("unknown option: %s", a)
			}
			opts = append(opts, display.WithDelay(time.Duration(ms)*time.Millisecond))
		}
	}
	return opts, nil
}

// the options that can follow the arguments to PLAY and PITCH
func musicOptions(args []string) ([]music.Option, []string) {
	var opts []music.Option
	n := len(args)
	for n > 0 {
		switch strings.ToUpper(args[n-1]) {
		case "NOWAIT":
			opts = append(opts, music.NoWait())
		case "LOOP":
			opts = append(opts, music.Loop())
		default:
			return opts, args[:n]
		}
		n--
	}
	return opts, args[:n]
}

func payload(arg string) display.Payload {
	if img, ok := images.Named[strings.ToUpper(arg)]; ok {
		return display.Image(img)
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return display.Int(n)
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return display.Float(f)
	}
	return display.Text(arg)
}

func (scr *Script) instruction(cmd string, args []string) error {
	b := scr.board

	switch cmd {
	case "PRESS", "RELEASE", "CLICK":
		if err := arguments(cmd, args, 1, 1); err != nil {
			return err
		}
		ev, err := button(args[0])
		if err != nil {
			return err
		}
		if cmd != "RELEASE" {
			if err := b.HandleEvent(ev, true); err != nil {
				return err
			}
		}
		if cmd != "PRESS" {
			return b.HandleEvent(ev, false)
		}

	case "TILT":
		if err := arguments(cmd, args, 2, 2); err != nil {
			return err
		}
		v, err := floats(args)
		if err != nil {
			return err
		}
		return b.HandleEvent(ports.Tilt, ports.TiltData{X: radians(v[0]), Y: radians(v[1])})

	case "ORIENT":
		if err := arguments(cmd, args, 9, 9); err != nil {
			return err
		}
		v, err := floats(args)
		if err != nil {
			return err
		}
		var m spatial.Matrix
		for i := range 9 {
			m[i/3][i%3] = v[i]
		}
		return b.HandleEvent(ports.Orientation, m)

	case "GESTURE":
		if err := arguments(cmd, args, 1, -1); err != nil {
			return err
		}
		g, err := spatial.ParseGesture(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return b.HandleEvent(ports.Gesture, g)

	case "CLEARGESTURES":
		if err := arguments(cmd, args, 0, 0); err != nil {
			return err
		}
		return b.HandleEvent(ports.ClearGestures, nil)

	case "PIN":
		if err := arguments(cmd, args, 2, 2); err != nil {
			return err
		}
		v, err := integers(args)
		if err != nil {
			return err
		}
		return b.HandleEvent(ports.PinInput, ports.PinData{ID: v[0], Level: v[1]})

	case "FIELD":
		if err := arguments(cmd, args, 2, 2); err != nil {
			return err
		}
		v, err := floats(args)
		if err != nil {
			return err
		}
		return b.HandleEvent(ports.Field, ports.FieldData{Strength: v[0], Direction: radians(v[1])})

	case "TEMP":
		if err := arguments(cmd, args, 1, 1); err != nil {
			return err
		}
		t, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		return b.HandleEvent(ports.Temperature, t)

	case "RESET":
		if err := arguments(cmd, args, 0, 0); err != nil {
			return err
		}
		return b.HandleEvent(ports.Reset, nil)

	case "SHOW":
		if err := arguments(cmd, args, 1, -1); err != nil {
			return err
		}
		opts, err := displayOptions(args[1:])
		if err != nil {
			return err
		}
		return b.Display.Show(payload(args[0]), opts...)

	case "SCROLL":
		if err := arguments(cmd, args, 1, -1); err != nil {
			return err
		}
		opts, err := displayOptions(args[1:])
		if err != nil {
			return err
		}
		return b.Display.Scroll(args[0], opts...)

	case "IMAGE":
		if err := arguments(cmd, args, 1, 1); err != nil {
			return err
		}
		img, err := images.Parse(args[0])
		if err != nil {
			return err
		}
		return b.Display.Show(display.Image(img))

	case "PIXEL":
		if err := arguments(cmd, args, 3, 3); err != nil {
			return err
		}
		v, err := integers(args)
		if err != nil {
			return err
		}
		return b.Display.SetPixel(v[0], v[1], v[2])

	case "CLEAR":
		if err := arguments(cmd, args, 0, 0); err != nil {
			return err
		}
		b.Display.Clear()

	case "DISPLAY":
		if err := arguments(cmd, args, 1, 1); err != nil {
			return err
		}
		switch strings.ToUpper(args[0]) {
		case "ON":
			b.Display.On()
		case "OFF":
			b.Display.Off()
		default:
			return fmt.Errorf("DISPLAY must be ON or OFF")
		}

	case "PLAY":
		if err := arguments(cmd, args, 1, -1); err != nil {
			return err
		}
		opts, notes := musicOptions(args)
		if len(notes) == 1 {
			if m, ok := music.Melodies[strings.ToUpper(notes[0])]; ok {
				notes = m
			}
		}
		return b.PlayMusic(notes, opts...)

	case "PITCH":
		if err := arguments(cmd, args, 2, 3); err != nil {
			return err
		}
		opts, rest := musicOptions(args)
		if len(rest) != 2 {
			return fmt.Errorf("PITCH requires a frequency and a duration")
		}
		v, err := integers(rest)
		if err != nil {
			return err
		}
		p, err := b.MusicPin()
		if err != nil {
			return err
		}
		return b.Music.Pitch(p, v[0], v[1], opts...)

	case "TEMPO":
		if err := arguments(cmd, args, 2, 2); err != nil {
			return err
		}
		v, err := integers(args)
		if err != nil {
			return err
		}
		return b.Music.SetTempo(v[0], v[1])

	case "STOP":
		if err := arguments(cmd, args, 0, 0); err != nil {
			return err
		}
		b.End()

	case "CALIBRATE":
		if err := arguments(cmd, args, 0, 0); err != nil {
			return err
		}
		return b.CalibrateCompass()

	case "ECHO":
		logger.Log(b.Env, "script", strings.Join(args, " "))

	case "MEMVIZ":
		if err := arguments(cmd, args, 1, 1); err != nil {
			return err
		}
		return scr.memviz(args[0])

	default:
		return fmt.Errorf("unrecognised command: %s", cmd)
	}

	return nil
}

// stateDump is the structure written by MEMVIZ. Pin states are reduced to the
// pins that are not spare so that the graph stays readable.
type stateDump struct {
	Display     string
	Pins        map[string]string
	ButtonA     bool
	ButtonB     bool
	Gesture     string
	Temperature int
	RunningTime int
}

func (scr *Script) memviz(filename string) error {
	s := scr.board.State()

	d := &stateDump{
		Display:     s.Frame.Image().String(),
		Pins:        make(map[string]string),
		ButtonA:     s.ButtonA,
		ButtonB:     s.ButtonB,
		Gesture:     string(s.Gesture),
		Temperature: s.Temperature,
		RunningTime: s.RunningTime,
	}
	for _, p := range s.Pins {
		if p.Occupancy != pins.Free || p.Level > 0 || p.Input > 0 {
			d.Pins[fmt.Sprintf("pin%d", p.ID)] = p.Summary()
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, d)

	return nil
}
