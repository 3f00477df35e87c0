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

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/bitsim/hardware"
	"github.com/jetsetilly/bitsim/hardware/display"
	"github.com/jetsetilly/bitsim/hardware/images"
	"github.com/jetsetilly/bitsim/hardware/pins"
)

var (
	boardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#404040"))
	offStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#303030"))
	buttonStyle  = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	pressedStyle = buttonStyle.Reverse(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// one style for each LED lightness
var ledStyles [images.MaxLightness + 1]lipgloss.Style

func init() {
	for v := range ledStyles {
		c := display.Color(v)
		ledStyles[v] = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
	}
}

func leds(f display.Frame) string {
	var b strings.Builder
	for y := range display.Height {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := range display.Width {
			v := int(f.Pixels[x][y])
			if !f.On || v == 0 {
				b.WriteString(offStyle.Render("··"))
			} else {
				b.WriteString(ledStyles[min(v, images.MaxLightness)].Render("██"))
			}
		}
	}
	return boardStyle.Render(b.String())
}

func buttons(s hardware.State) string {
	bt := func(name string, down bool) string {
		if down {
			return pressedStyle.Render(name)
		}
		return buttonStyle.Render(name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, bt("A", s.ButtonA), " ", bt("B", s.ButtonB))
}

func status(s hardware.State) string {
	var b strings.Builder
	line := func(label string, format string, args ...any) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf(format, args...))
		b.WriteString("\n")
	}

	line("accelerometer", "%d %d %d", s.Accelerometer[0], s.Accelerometer[1], s.Accelerometer[2])
	line("gesture", "%s", s.Gesture)
	line("temperature", "%dC", s.Temperature)
	line("running time", "%.1fs", float64(s.RunningTime)/1000)

	for _, p := range s.Pins {
		if p.Occupancy == pins.Free && p.Level == 0 && p.Input == 0 {
			continue
		}
		line(fmt.Sprintf("pin%d", p.ID), "%s", p.Summary())
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Render returns the view of the board state.
func Render(s hardware.State) string {
	board := lipgloss.JoinVertical(lipgloss.Center, leds(s.Frame), buttons(s))
	help := dimStyle.Render("A B: buttons  arrows: tilt  0 1 2: touch  U D L R F S 3 6 8 G H: gestures  +/-: temperature  F2: reset  Esc: quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", status(s)),
		"",
		help,
	)
}
