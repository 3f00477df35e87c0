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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
//
// Tones are rendered as square waves. The gaps between tones are silent.
package wavwriter

import (
	"os"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/hardware/tones"
	"github.com/jetsetilly/bitsim/logger"
)

// Format of the WAV file.
const (
	SampleRate = 44100
	BitDepth   = 16
	NumChans   = 1

	// PCM encoding
	audioFormat = 1
)

// the peak value of the square wave. a little under the maximum for 16 bit
// samples.
const amplitude = 0x6000

// WavWriter implements the tones.Mixer interface.
type WavWriter struct {
	filename string

	crit  sync.Mutex
	tones []tones.Tone
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
	}

	return aw, nil
}

// SetTones implements the tones.Mixer interface.
func (aw *WavWriter) SetTones(t []tones.Tone) error {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	aw.tones = append(aw.tones, t...)
	return nil
}

// render the buffered tones as samples. the first sample is the start of the
// first tone
func (aw *WavWriter) render() []int {
	if len(aw.tones) == 0 {
		return nil
	}

	origin := aw.tones[0].Start
	end := origin
	for _, t := range aw.tones {
		if t.End.After(end) {
			end = t.End
		}
	}

	sample := func(d time.Duration) int {
		return int(d.Nanoseconds() * SampleRate / int64(time.Second))
	}

	data := make([]int, sample(end.Sub(origin)))

	for _, t := range aw.tones {
		if t.Freq <= 0 {
			continue
		}

		s0 := max(sample(t.Start.Sub(origin)), 0)
		s1 := min(sample(t.End.Sub(origin)), len(data))

		for i := s0; i < s1; i++ {
			// position in the cycle of the square wave
			phase := (i - s0) * t.Freq * 2 / SampleRate
			if phase%2 == 0 {
				data[i] = amplitude
			} else {
				data[i] = -amplitude
			}
		}
	}

	return data
}

// EndMixing implements the tones.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, BitDepth, NumChans, audioFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChans,
			SampleRate:  SampleRate,
		},
		Data:           aw.render(),
		SourceBitDepth: BitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
