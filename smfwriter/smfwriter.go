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

// Package smfwriter allows writing of tones to disk as a standard MIDI file.
// Like the wavwriter package, tones are buffered in memory and written to disk
// when mixing ends.
//
// Every tone becomes a note on a single track. The frequency of the tone is
// rounded to the nearest MIDI key.
package smfwriter

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/hardware/tones"
	"github.com/jetsetilly/bitsim/logger"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Resolution of the file in ticks per quarter note.
const Resolution = 960

// Tempo of the file. The tempo of the music played by the board is not known
// to the writer so tick values are calculated for this tempo.
const Tempo = 120.0

// the channel and velocity used for every note
const (
	channel  = 0
	velocity = 100
)

// Key returns the MIDI key nearest to the frequency. The key is clamped to the
// range of valid keys.
func Key(freq int) uint8 {
	if freq <= 0 {
		return 0
	}
	k := math.Round(69 + 12*math.Log2(float64(freq)/440))
	return uint8(max(0, min(127, k)))
}

// SmfWriter implements the tones.Mixer interface.
type SmfWriter struct {
	filename string

	crit  sync.Mutex
	tones []tones.Tone
}

// New is the preferred method of initialisation for the SmfWriter type.
func New(filename string) (*SmfWriter, error) {
	return &SmfWriter{
		filename: filename,
	}, nil
}

// SetTones implements the tones.Mixer interface.
func (mw *SmfWriter) SetTones(t []tones.Tone) error {
	mw.crit.Lock()
	defer mw.crit.Unlock()
	mw.tones = append(mw.tones, t...)
	return nil
}

type event struct {
	at  time.Time
	msg gomidi.Message
}

// track converts the buffered tones to a single track
func (mw *SmfWriter) track() smf.Track {
	var events []event
	for _, t := range mw.tones {
		if t.Freq <= 0 {
			continue
		}
		k := Key(t.Freq)
		events = append(events,
			event{at: t.Start, msg: gomidi.NoteOn(channel, k, velocity)},
			event{at: t.End, msg: gomidi.NoteOff(channel, k)},
		)
	}

	// a stable sort keeps the note off of a tone ahead of the note on of a tone
	// starting at the same moment
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].at.Before(events[j].at)
	})

	ticks := smf.MetricTicks(Resolution)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(Tempo))

	var prev time.Time
	if len(events) > 0 {
		prev = events[0].at
	}
	for _, e := range events {
		tr.Add(ticks.Ticks(Tempo, e.at.Sub(prev)), e.msg)
		prev = e.at
	}
	tr.Close(0)

	return tr
}

// EndMixing implements the tones.Mixer interface.
func (mw *SmfWriter) EndMixing() error {
	mw.crit.Lock()
	defer mw.crit.Unlock()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(Resolution)
	if err := s.Add(mw.track()); err != nil {
		return curated.Errorf("smfwriter: %v", err)
	}

	logger.Logf(logger.Allow, "smfwriter", "writing MIDI to %s", mw.filename)

	if err := s.WriteFile(mw.filename); err != nil {
		return curated.Errorf("smfwriter: %v", err)
	}

	return nil
}
