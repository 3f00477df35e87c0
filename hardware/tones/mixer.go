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

package tones

import (
	"context"
	"time"

	"github.com/jetsetilly/bitsim/logger"
)

// Mixer implementations turn tones into sound of some sort.
type Mixer interface {
	SetTones(t []Tone) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the Mixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

// DefaultCadence is how often a Pump drains the queue.
const DefaultCadence = 20 * time.Millisecond

// Pump moves tones from a Queue to the attached mixers.
type Pump struct {
	queue  *Queue
	pin    func() int
	mixers []Mixer
}

// NewPump is the preferred method of initialisation for the Pump type. The
// pin function returns the pin that is connected to the speaker. Tones on
// other pins are discarded. A negative pin discards everything.
func NewPump(queue *Queue, pin func() int, mixers ...Mixer) *Pump {
	return &Pump{
		queue:  queue,
		pin:    pin,
		mixers: mixers,
	}
}

// AddMixer attaches another mixer to the pump.
func (p *Pump) AddMixer(m Mixer) {
	p.mixers = append(p.mixers, m)
}

// Once drains the queue and passes the tones for the music pin to every
// mixer. The first mixer error is returned but every mixer is still given the
// tones.
func (p *Pump) Once() error {
	drained := p.queue.Drain()
	if len(drained) == 0 || len(p.mixers) == 0 {
		return nil
	}

	pin := p.pin()
	t := drained[:0]
	for _, d := range drained {
		if d.Pin == pin {
			t = append(t, d)
		}
	}
	if len(t) == 0 {
		return nil
	}

	var err error
	for _, m := range p.mixers {
		if e := m.SetTones(t); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Run drains the queue every cadence until the context is cancelled. When the
// context is cancelled the queue is drained one last time and EndMixing() is
// called on every mixer.
func (p *Pump) Run(ctx context.Context, cadence time.Duration) error {
	tck := time.NewTicker(cadence)
	defer tck.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := p.Once(); err != nil {
				logger.Log(logger.Allow, "tones", err)
			}
			return p.end()
		case <-tck.C:
			if err := p.Once(); err != nil {
				logger.Log(logger.Allow, "tones", err)
			}
		}
	}
}

func (p *Pump) end() error {
	var err error
	for _, m := range p.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
