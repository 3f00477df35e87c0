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

// Package tui is the interactive terminal front end. It is built with
// bubbletea and draws the board with lipgloss.
//
// Terminals do not report key releases so a key is held down for a short time
// after it is pressed. See userinput.Holder for details.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/gui"
	"github.com/jetsetilly/bitsim/hardware"
	"github.com/jetsetilly/bitsim/userinput"
)

// how often the board state is polled
const refresh = 50 * time.Millisecond

// TUI implements the gui.GUI interface.
type TUI struct {
	board *hardware.Board
}

var _ gui.GUI = (*TUI)(nil)

// NewTUI is the preferred method of initialisation for the TUI type.
func NewTUI(board *hardware.Board) *TUI {
	return &TUI{board: board}
}

// Run implements the gui.GUI interface.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan userinput.Event, 16)
	holder := userinput.NewHolder(events, userinput.DefaultHold)
	defer holder.Stop()

	p := tea.NewProgram(NewModel(t.board, events, holder),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		if gui.Service(ctx, events, t.board) {
			p.Quit()
		}
	}()

	if _, err := p.Run(); err != nil {
		// the program is killed when the context is done
		if ctx.Err() != nil {
			return nil
		}
		return curated.Errorf("tui: %v", err)
	}

	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model for the board.
type Model struct {
	board  *hardware.Board
	events chan<- userinput.Event
	holder *userinput.Holder
	state  hardware.State
}

// NewModel is the preferred method of initialisation for the Model type. Key
// presses are passed to the holder and mouse events are sent on the channel.
func NewModel(board *hardware.Board, events chan<- userinput.Event, holder *userinput.Holder) Model {
	return Model{
		board:  board,
		events: events,
		holder: holder,
		state:  board.State(),
	}
}

// Init implements the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return tick()
}

// KeyName returns the name of the key in the form used by the userinput
// package. Keys that have no use return the empty string.
func KeyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyUp:
		return "Up"
	case tea.KeyDown:
		return "Down"
	case tea.KeyLeft:
		return "Left"
	case tea.KeyRight:
		return "Right"
	case tea.KeyEsc, tea.KeyCtrlC:
		return "Escape"
	case tea.KeyF2:
		return "F2"
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return strings.ToUpper(string(msg.Runes))
		}
	}
	return ""
}

// the position of the LEDs in the view, used for translating mouse motion
const (
	ledLeft   = 1
	ledTop    = 1
	ledWidth  = 10
	ledHeight = 5
)

// Update implements the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.events <- userinput.EventQuit{}
			return m, tea.Quit
		}
		if k := KeyName(msg); k != "" {
			m.holder.Press(k)
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress, tea.MouseActionRelease:
			down := msg.Action == tea.MouseActionPress
			switch msg.Button {
			case tea.MouseButtonLeft:
				m.events <- userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: down}
			case tea.MouseButtonRight:
				m.events <- userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: down}
			}
		case tea.MouseActionMotion:
			m.events <- MouseMotion(msg.X, msg.Y)
		}

	case tickMsg:
		m.state = m.board.State()
		return m, tick()
	}

	return m, nil
}

// MouseMotion converts a position in the view to a mouse motion event
// relative to the centre of the LEDs.
func MouseMotion(x, y int) userinput.EventMouseMotion {
	norm := func(v, origin, size int) float32 {
		f := (float32(v-origin) + 0.5) / float32(size)
		return min(max(f*2-1, -1), 1)
	}
	return userinput.EventMouseMotion{
		X: norm(x, ledLeft, ledWidth),
		Y: norm(y, ledTop, ledHeight),
	}
}

// View implements the tea.Model interface.
func (m Model) View() string {
	return Render(m.state)
}
