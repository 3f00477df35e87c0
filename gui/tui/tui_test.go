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

package tui_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jetsetilly/bitsim/environment"
	"github.com/jetsetilly/bitsim/gui/tui"
	"github.com/jetsetilly/bitsim/hardware"
	"github.com/jetsetilly/bitsim/hardware/display"
	"github.com/jetsetilly/bitsim/hardware/images"
	"github.com/jetsetilly/bitsim/hardware/preferences"
	"github.com/jetsetilly/bitsim/test"
	"github.com/jetsetilly/bitsim/userinput"
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

func TestKeyName(t *testing.T) {
	test.ExpectEquality(t, tui.KeyName(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}), "A")
	test.ExpectEquality(t, tui.KeyName(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}), "+")
	test.ExpectEquality(t, tui.KeyName(tea.KeyMsg{Type: tea.KeyLeft}), "Left")
	test.ExpectEquality(t, tui.KeyName(tea.KeyMsg{Type: tea.KeyEsc}), "Escape")
	test.ExpectEquality(t, tui.KeyName(tea.KeyMsg{Type: tea.KeyF2}), "F2")
	test.ExpectEquality(t, tui.KeyName(tea.KeyMsg{Type: tea.KeyTab}), "")
}

func TestMouseMotion(t *testing.T) {
	ev := tui.MouseMotion(1, 1)
	test.ExpectApproximate(t, ev.X, -0.9, 0.0001)
	test.ExpectApproximate(t, ev.Y, -0.8, 0.0001)

	ev = tui.MouseMotion(10, 5)
	test.ExpectApproximate(t, ev.X, 0.9, 0.0001)
	test.ExpectApproximate(t, ev.Y, 0.8, 0.0001)

	ev = tui.MouseMotion(100, -100)
	test.ExpectEquality(t, ev.X, 1.0)
	test.ExpectEquality(t, ev.Y, -1.0)
}

func TestRender(t *testing.T) {
	b := newBoard(t)
	test.DemandSuccess(t, b.Display.Show(display.Image(images.Heart)))

	r := tui.Render(b.State())
	test.ExpectSuccess(t, strings.Contains(r, "██"))
	test.ExpectSuccess(t, strings.Contains(r, "temperature 26C"))
	test.ExpectSuccess(t, strings.Contains(r, "gesture face up"))
	test.ExpectSuccess(t, strings.Contains(r, "occupied by LED screen"))
}

func TestModel(t *testing.T) {
	b := newBoard(t)
	events := make(chan userinput.Event, 16)
	holder := userinput.NewHolder(events, time.Second)
	defer holder.Stop()

	m := tui.NewModel(b, events, holder)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	test.ExpectSuccess(t, cmd == nil)
	test.ExpectEquality(t, (<-events).(userinput.EventKeyboard), userinput.EventKeyboard{Key: "B", Down: true})

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	test.ExpectEquality(t, (<-events).(userinput.EventMouseButton), userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true})

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	test.ExpectSuccess(t, cmd != nil)
	_, ok := (<-events).(userinput.EventQuit)
	test.ExpectSuccess(t, ok)

	// the view is updated on every tick
	b.SetTemperature(40)
	test.ExpectFailure(t, strings.Contains(m.View(), "40C"))
	msg := m.Init()()
	updated, cmd := m.Update(msg)
	test.ExpectSuccess(t, cmd != nil)
	test.ExpectSuccess(t, strings.Contains(updated.View(), "temperature 40C"))
}
