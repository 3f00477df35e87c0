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

// Package plainterm is a front end for plain terminals. The LED matrix and
// the state of the board are redrawn with goterm and keys are read with the
// terminal in cbreak mode.
package plainterm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tm "github.com/buger/goterm"
	"github.com/jetsetilly/bitsim/gui"
	"github.com/jetsetilly/bitsim/gui/easyterm"
	"github.com/jetsetilly/bitsim/hardware"
	"github.com/jetsetilly/bitsim/hardware/display"
	"github.com/jetsetilly/bitsim/hardware/pins"
	"github.com/jetsetilly/bitsim/logger"
	"github.com/jetsetilly/bitsim/userinput"
)

// how often the terminal is redrawn
const refresh = 50 * time.Millisecond

// PlainTerm implements the gui.GUI interface.
type PlainTerm struct {
	board  *hardware.Board
	screen *Screen
	mirror *display.Mirror
	term   easyterm.Terminal
}

var _ gui.GUI = (*PlainTerm)(nil)

// NewPlainTerm is the preferred method of initialisation for the PlainTerm
// type.
func NewPlainTerm(board *hardware.Board) *PlainTerm {
	pt := &PlainTerm{
		board:  board,
		screen: &Screen{},
	}
	pt.mirror = display.NewMirror(pt.screen)
	return pt
}

// Run implements the gui.GUI interface.
func (pt *PlainTerm) Run(ctx context.Context) error {
	if err := pt.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer pt.term.CleanUp()
	pt.term.CBreakMode()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pt.board.Display.AddFrameTrigger(pt.mirror)
	defer pt.board.Display.RemoveFrameTrigger(pt.mirror)
	if err := pt.mirror.NewFrame(pt.board.Display.Frame()); err != nil {
		return err
	}

	events := make(chan userinput.Event, 16)
	holder := userinput.NewHolder(events, userinput.DefaultHold)
	defer holder.Stop()

	go func() {
		if err := pt.term.ReadKeys(ctx, holder.Press); err != nil {
			logger.Log(logger.Allow, "plainterm", err)
		}
	}()

	go func() {
		if gui.Service(ctx, events, pt.board) {
			cancel()
		}
	}()

	tck := time.NewTicker(refresh)
	defer tck.Stop()

	var prev hardware.State
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tck.C:
		}

		leds, dirty := pt.screen.LEDs()
		s := pt.board.State()

		// running time is ignored when deciding whether to redraw
		s.RunningTime = prev.RunningTime
		if !dirty && equalState(s, prev) {
			continue
		}
		prev = s

		tm.Clear()
		tm.MoveCursor(1, 1)
		tm.Print(Render(leds, s))
		tm.Flush()
	}
}

func equalState(a, b hardware.State) bool {
	if a.ButtonA != b.ButtonA || a.ButtonB != b.ButtonB {
		return false
	}
	if a.Accelerometer != b.Accelerometer || a.Gesture != b.Gesture || a.Temperature != b.Temperature {
		return false
	}
	if len(a.Pins) != len(b.Pins) {
		return false
	}
	for i := range a.Pins {
		if a.Pins[i] != b.Pins[i] {
			return false
		}
	}
	return true
}

// the characters used for each LED lightness
func shade(v int) string {
	switch {
	case v <= 0:
		return " ·"
	case v <= 3:
		return "░░"
	case v <= 6:
		return "▒▒"
	case v <= 8:
		return "▓▓"
	}
	return "██"
}

func button(name string, down bool) string {
	if down {
		return fmt.Sprintf("[%s]", name)
	}
	return fmt.Sprintf(" %s ", name)
}

// Render returns the text drawn to the terminal for the LEDs and the board
// state.
func Render(leds [display.Width][display.Height]int, s hardware.State) string {
	var b strings.Builder

	b.WriteString("┌──────────┐\n")
	for y := range display.Height {
		b.WriteString("│")
		for x := range display.Width {
			v := leds[x][y]
			if v > 0 {
				b.WriteString(tm.Color(shade(v), tm.RED))
			} else {
				b.WriteString(shade(v))
			}
		}
		b.WriteString("│\n")
	}
	b.WriteString("└──────────┘\n")

	b.WriteString(fmt.Sprintf("%s %s\n\n", button("A", s.ButtonA), button("B", s.ButtonB)))
	b.WriteString(fmt.Sprintf("accelerometer: %d %d %d\n", s.Accelerometer[0], s.Accelerometer[1], s.Accelerometer[2]))
	b.WriteString(fmt.Sprintf("gesture: %s\n", s.Gesture))
	b.WriteString(fmt.Sprintf("temperature: %dC\n", s.Temperature))
	b.WriteString(fmt.Sprintf("running time: %dms\n\n", s.RunningTime))

	for _, p := range s.Pins {
		if p.Occupancy == pins.Free && p.Level == 0 && p.Input == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("pin%-2d %s\n", p.ID, p.Summary()))
	}

	b.WriteString("\nA B: buttons  arrows: tilt  0 1 2: touch  +/-: temperature  F2: reset  Esc: quit\n")

	return b.String()
}
