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

// Package buttons emulates the two push buttons on the board. Button state is
// driven from outside the board with Press() and Release(). The three queries
// are independent of one another: IsPressed() has no side effect,
// WasPressed() consumes the sticky pressed flag and GetPresses() consumes the
// press count.
package buttons

import (
	"sync"
)

// Button is a single push button.
type Button struct {
	crit sync.Mutex

	name string

	down       bool
	wasPressed bool
	presses    int
}

// NewButton is the preferred method of initialisation for the Button type.
func NewButton(name string) *Button {
	return &Button{name: name}
}

func (b *Button) String() string {
	return b.name
}

// Press is called by the input driver when the button goes down. Pressing a
// button that is already down has no effect.
func (b *Button) Press() {
	b.crit.Lock()
	defer b.crit.Unlock()

	if b.down {
		return
	}
	b.down = true
	b.wasPressed = true
	b.presses++
}

// Release is called by the input driver when the button goes up.
func (b *Button) Release() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.down = false
}

// IsPressed returns true if the button is currently down.
func (b *Button) IsPressed() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.down
}

// WasPressed returns true if the button has been pressed since the last call
// to WasPressed().
func (b *Button) WasPressed() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	w := b.wasPressed
	b.wasPressed = false
	return w
}

// GetPresses returns the number of presses since the last call to
// GetPresses().
func (b *Button) GetPresses() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	n := b.presses
	b.presses = 0
	return n
}

// Reset releases the button and forgets any presses.
func (b *Button) Reset() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.down = false
	b.wasPressed = false
	b.presses = 0
}
