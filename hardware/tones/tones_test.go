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

package tones_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/bitsim/hardware/tones"
	"github.com/jetsetilly/bitsim/test"
)

type mockMixer struct {
	tones []tones.Tone
	ended bool
}

func (m *mockMixer) SetTones(t []tones.Tone) error {
	m.tones = append(m.tones, t...)
	return nil
}

func (m *mockMixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestQueue(t *testing.T) {
	var q tones.Queue
	now := time.Now()

	q.Push(tones.Tone{Pin: 0, Freq: 440, Start: now, End: now.Add(500 * time.Millisecond)})
	q.Push(tones.Tone{Pin: 0, Freq: 0, Start: now, End: now.Add(125 * time.Millisecond)})
	test.ExpectEquality(t, q.Len(), 2)

	d := q.Drain()
	test.DemandEquality(t, len(d), 2)
	test.ExpectEquality(t, d[0].Freq, 440)
	test.ExpectEquality(t, d[0].String(), "pin0: 440Hz 500ms")
	test.ExpectEquality(t, d[1].String(), "pin0: rest 125ms")
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectEquality(t, len(q.Drain()), 0)
}

func TestPump(t *testing.T) {
	var q tones.Queue
	m := &mockMixer{}
	musicPin := 1
	p := tones.NewPump(&q, func() int { return musicPin }, m)

	q.Push(tones.Tone{Pin: 0, Freq: 100})
	q.Push(tones.Tone{Pin: 1, Freq: 200})
	q.Push(tones.Tone{Pin: 1, Freq: 300})
	test.ExpectSuccess(t, p.Once())
	test.DemandEquality(t, len(m.tones), 2)
	test.ExpectEquality(t, m.tones[0].Freq, 200)
	test.ExpectEquality(t, m.tones[1].Freq, 300)

	// every tone was drained whatever pin it was on
	test.ExpectEquality(t, q.Len(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- p.Run(ctx, time.Millisecond)
	}()

	q.Push(tones.Tone{Pin: 1, Freq: 400})
	cancel()
	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, m.ended, true)
	test.DemandEquality(t, len(m.tones), 3)
	test.ExpectEquality(t, m.tones[2].Freq, 400)
}
