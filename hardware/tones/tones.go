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

// Package tones is the boundary between the tone scheduler and any audio
// output. The scheduler pushes a Tone onto the Queue every time a note starts
// and an audio driver drains the queue at its own pace.
//
// The Pump type drains a queue on a regular cadence and passes the tones
// played on the music pin to one or more Mixer implementations.
package tones

import (
	"fmt"
	"sync"
	"time"
)

// Tone is a single note that has been scheduled on a pin. A frequency of zero
// is silence.
type Tone struct {
	Pin   int
	Freq  int
	Start time.Time
	End   time.Time
}

func (t Tone) String() string {
	if t.Freq == 0 {
		return fmt.Sprintf("pin%d: rest %dms", t.Pin, t.Duration().Milliseconds())
	}
	return fmt.Sprintf("pin%d: %dHz %dms", t.Pin, t.Freq, t.Duration().Milliseconds())
}

// Duration returns the length of the tone.
func (t Tone) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// Queue is a first-in first-out queue of tones. The zero value is ready to use.
type Queue struct {
	crit  sync.Mutex
	tones []Tone
}

// Push adds a tone to the end of the queue.
func (q *Queue) Push(t Tone) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.tones = append(q.tones, t)
}

// Drain removes and returns every tone in the queue, oldest first.
func (q *Queue) Drain() []Tone {
	q.crit.Lock()
	defer q.crit.Unlock()
	t := q.tones
	q.tones = nil
	return t
}

// Len returns the number of tones waiting in the queue.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.tones)
}
