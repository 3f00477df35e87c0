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

package userinput

import (
	"sync"
	"time"
)

// DefaultHold is how long a key is considered to be held down after a key
// press is received from a terminal.
const DefaultHold = 250 * time.Millisecond

// Holder turns key presses from a terminal, which has no notion of a key being
// released, into pairs of down and up events. A key is released when no press
// for the key has been seen for the hold duration. Further presses while the
// key is down are sent as repeats.
type Holder struct {
	crit   sync.Mutex
	events chan<- Event
	hold   time.Duration
	timers map[string]*time.Timer
}

// NewHolder is the preferred method of initialisation for the Holder type.
// Events are sent on the channel.
func NewHolder(events chan<- Event, hold time.Duration) *Holder {
	return &Holder{
		events: events,
		hold:   hold,
		timers: make(map[string]*time.Timer),
	}
}

// Press sends a down event for the key, or a repeat if the key is already
// down, and schedules the release.
func (h *Holder) Press(key string) {
	h.crit.Lock()
	defer h.crit.Unlock()

	if tmr, ok := h.timers[key]; ok {
		if tmr.Stop() {
			tmr.Reset(h.hold)
			h.events <- EventKeyboard{Key: key, Down: true, Repeat: true}
			return
		}
	}

	h.events <- EventKeyboard{Key: key, Down: true}

	var tmr *time.Timer
	tmr = time.AfterFunc(h.hold, func() {
		h.crit.Lock()
		defer h.crit.Unlock()

		// the key may have been pressed again after the timer fired but
		// before the release could happen
		if h.timers[key] != tmr {
			return
		}
		delete(h.timers, key)
		h.events <- EventKeyboard{Key: key, Down: false}
	})
	h.timers[key] = tmr
}

// Stop releases every key that is down.
func (h *Holder) Stop() {
	h.crit.Lock()
	defer h.crit.Unlock()
	for key, tmr := range h.timers {
		if tmr.Stop() {
			h.events <- EventKeyboard{Key: key, Down: false}
		}
	}
	clear(h.timers)
}
