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

package music

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/environment"
	"github.com/jetsetilly/bitsim/hardware/task"
	"github.com/jetsetilly/bitsim/hardware/tones"
	"github.com/jetsetilly/bitsim/logger"
	"github.com/jetsetilly/bitsim/notifications"
)

// Sentinal errors.
const (
	InvalidArgument = "music: %s"
	InvalidNote     = "music: %q is not a valid note"
)

// The tempo at startup and after Reset().
const (
	DefaultTicks = 4
	DefaultBPM   = 120
)

// the output level while a note is sounding.
const noteLevel = 511

// indefinite pitches are played in chunks of this length.
const pitchChunk = 100 * time.Millisecond

// Output is the part of a pin that music is played on.
type Output interface {
	ID() int
	SetAnalogPeriodMicroseconds(int) error
	WriteAnalog(int) error
	WriteDigital(int) error
}

type options struct {
	wait bool
	loop bool
}

// Option changes how music is played.
type Option func(*options)

// NoWait returns from Play() or Pitch() immediately and leaves the music
// playing in the background.
func NoWait() Option {
	return func(o *options) {
		o.wait = false
	}
}

// Loop repeats the melody until it is stopped.
func Loop() Option {
	return func(o *options) {
		o.loop = true
	}
}

// Music plays melodies and pitches on the pins of the board. Each pin can play
// one thing at a time. Starting new music on a pin stops the music that was
// already playing on that pin but music playing on other pins continues.
type Music struct {
	env   *environment.Environment
	queue *tones.Queue

	crit  sync.Mutex
	ticks int
	bpm   int

	// keyed by pin ID
	slots map[int]*task.Slot
}

// NewMusic is the preferred method of initialisation for the Music type. Every
// note played is pushed onto the queue.
func NewMusic(env *environment.Environment, queue *tones.Queue) *Music {
	return &Music{
		env:   env,
		queue: queue,
		ticks: DefaultTicks,
		bpm:   DefaultBPM,
		slots: make(map[int]*task.Slot),
	}
}

// SetTempo sets the number of ticks in a beat and the number of beats per
// minute. Both values must be positive.
func (m *Music) SetTempo(ticks int, bpm int) error {
	if ticks <= 0 {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("ticks must be positive (%d)", ticks))
	}
	if bpm <= 0 {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("bpm must be positive (%d)", bpm))
	}

	m.crit.Lock()
	defer m.crit.Unlock()
	m.ticks = ticks
	m.bpm = bpm
	return nil
}

// Tempo returns the number of ticks in a beat and the number of beats per
// minute.
func (m *Music) Tempo() (int, int) {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.ticks, m.bpm
}

// TickLength returns the length of a single tick at the current tempo.
func (m *Music) TickLength() time.Duration {
	m.crit.Lock()
	defer m.crit.Unlock()
	return tickLength(m.ticks, m.bpm)
}

func tickLength(ticks int, bpm int) time.Duration {
	return time.Duration(float64(time.Millisecond) * 60000 / float64(ticks) / float64(bpm))
}

// Reset stops music on every pin and restores the default tempo.
func (m *Music) Reset() {
	m.StopAll()
	m.crit.Lock()
	defer m.crit.Unlock()
	m.ticks = DefaultTicks
	m.bpm = DefaultBPM
}

func (m *Music) slot(id int) *task.Slot {
	m.crit.Lock()
	defer m.crit.Unlock()
	s, ok := m.slots[id]
	if !ok {
		s = &task.Slot{}
		m.slots[id] = s
	}
	return s
}

// Busy returns true if music is playing on the pin.
func (m *Music) Busy(out Output) bool {
	return m.slot(out.ID()).Busy()
}

// Stop the music playing on the pin and set the output to zero.
func (m *Music) Stop(out Output) error {
	if m.slot(out.ID()).Stop() {
		logger.Logf(m.env, "music", "stopped on pin%d", out.ID())
	}
	return out.WriteDigital(0)
}

// StopAll stops music on every pin. The pin outputs are not changed.
func (m *Music) StopAll() {
	m.crit.Lock()
	slots := make([]*task.Slot, 0, len(m.slots))
	for _, s := range m.slots {
		slots = append(slots, s)
	}
	m.crit.Unlock()

	for _, s := range slots {
		s.Stop()
	}
}

// start runs the function in the pin's slot. if the wait option is set the
// error returned by the function is returned once it has finished. otherwise
// the error is logged.
func (m *Music) start(out Output, o options, f func(ctx context.Context) error) error {
	var err error

	t := m.slot(out.ID()).Start(func(ctx context.Context) {
		m.notify(notifications.NotifyMusicStarted)
		defer m.notify(notifications.NotifyMusicStopped)

		err = f(ctx)
		if err != nil && !o.wait {
			logger.Logf(m.env, "music", "pin%d: %v", out.ID(), err)
		}
	})

	if !o.wait {
		return nil
	}

	t.Wait()
	return err
}

func (m *Music) notify(n notifications.Notice) {
	if err := m.env.Notify(n); err != nil {
		logger.Log(m.env, "music", err)
	}
}

// Play the melody on the pin. Every note in the melody is parsed before any
// music is played so an invalid note means nothing is played at all. When the
// melody ends the pin output is set to zero.
func (m *Music) Play(out Output, melody []string, opts ...Option) error {
	notes, err := ParseMelody(melody)
	if err != nil {
		return err
	}

	o := options{wait: true}
	for _, f := range opts {
		f(&o)
	}

	if len(notes) == 0 {
		return nil
	}

	return m.start(out, o, func(ctx context.Context) error {
		for {
			for _, n := range notes {
				// the tempo can change while a melody is playing
				d := time.Duration(n.Duration) * m.TickLength()

				ok, err := m.note(ctx, out, n, d)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			if !o.loop {
				break
			}
		}

		return out.WriteDigital(0)
	})
}

// Pitch plays a single frequency on the pin for the duration in milliseconds.
// A duration of -1 plays the frequency until it is stopped. A frequency of
// zero or less stops any music playing on the pin and nothing is played.
func (m *Music) Pitch(out Output, freq int, duration int, opts ...Option) error {
	if duration < -1 {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("duration must be -1 or more (%d)", duration))
	}

	if freq <= 0 {
		m.slot(out.ID()).Stop()
		return nil
	}

	o := options{wait: true}
	for _, f := range opts {
		f(&o)
	}

	return m.start(out, o, func(ctx context.Context) error {
		if duration < 0 {
			for {
				ok, err := m.tone(ctx, out, float64(freq), pitchChunk)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
		}

		ok, err := m.tone(ctx, out, float64(freq), time.Duration(duration)*time.Millisecond)
		if err != nil || !ok {
			return err
		}
		return out.WriteDigital(0)
	})
}

// note plays a note or a rest. returns false if the context was cancelled.
func (m *Music) note(ctx context.Context, out Output, n Note, d time.Duration) (bool, error) {
	if !n.Rest {
		return m.tone(ctx, out, n.Frequency(), d)
	}
	if ctx.Err() != nil {
		return false, nil
	}
	if err := out.WriteAnalog(0); err != nil {
		return false, err
	}
	return task.Sleep(ctx, d), nil
}

// tone sets the pin to sound at the frequency and waits for the duration.
// returns false if the context was cancelled.
func (m *Music) tone(ctx context.Context, out Output, freq float64, d time.Duration) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}

	err := out.SetAnalogPeriodMicroseconds(int(1000000 / freq))
	if err != nil {
		return false, err
	}
	err = out.WriteAnalog(noteLevel)
	if err != nil {
		return false, err
	}

	now := time.Now()
	t := tones.Tone{
		Pin:   out.ID(),
		Freq:  int(freq),
		Start: now,
		End:   now.Add(d),
	}
	m.queue.Push(t)

	if m.env.Prefs != nil && m.env.Prefs.LogTones.Get().(bool) {
		logger.Log(m.env, "music", t)
	}

	return task.Sleep(ctx, d), nil
}
