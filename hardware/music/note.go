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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/bitsim/curated"
)

// the number of semitones between A and each note in the same octave.
var semitones = map[byte]int{
	'C': -9,
	'D': -7,
	'E': -5,
	'F': -4,
	'G': -2,
	'A': 0,
	'B': 2,
}

// The initial octave and duration at the start of every melody.
const (
	DefaultOctave   = 4
	DefaultDuration = 4
)

// Note is a single parsed note of a melody.
type Note struct {
	Rest bool

	// semitones from A in the same octave. sharps and flats are included
	Semitone int
	Octave   int

	// length of note in ticks
	Duration int
}

// Frequency returns the frequency of the note in hertz. Rests have a
// frequency of zero.
func (n Note) Frequency() float64 {
	if n.Rest {
		return 0
	}
	return 440 * math.Pow(2, float64(n.Octave-4)+float64(n.Semitone)/12)
}

func (n Note) String() string {
	if n.Rest {
		return fmt.Sprintf("R:%d", n.Duration)
	}
	return fmt.Sprintf("%.1fHz:%d", n.Frequency(), n.Duration)
}

// ParseNote parses text in the form NOTE[OCTAVE][:DURATION]. NOTE is a letter
// from A to G, optionally followed by # for a sharp or b for a flat, or the
// letter R for a rest. The octave and duration are optional and if they are
// missing the values passed to the function are used instead.
func ParseNote(s string, octave int, duration int) (Note, error) {
	n := Note{
		Octave:   octave,
		Duration: duration,
	}

	name, dur, hasDur := strings.Cut(s, ":")
	if hasDur {
		if strings.Contains(dur, ":") {
			return n, curated.Errorf(InvalidNote, s)
		}
		d, err := strconv.Atoi(dur)
		if err != nil || d < 0 {
			return n, curated.Errorf(InvalidNote, s)
		}
		n.Duration = d
	}

	if l := len(name); l > 0 && name[l-1] >= '0' && name[l-1] <= '9' {
		n.Octave = int(name[l-1] - '0')
		name = name[:l-1]
	}

	if len(name) == 0 || len(name) > 2 {
		return n, curated.Errorf(InvalidNote, s)
	}

	letter := name[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}

	if letter == 'R' {
		if len(name) != 1 {
			return n, curated.Errorf(InvalidNote, s)
		}
		n.Rest = true
		return n, nil
	}

	semi, ok := semitones[letter]
	if !ok {
		return n, curated.Errorf(InvalidNote, s)
	}

	if len(name) == 2 {
		switch name[1] {
		case '#':
			semi++
		case 'b', 'B':
			semi--
		default:
			return n, curated.Errorf(InvalidNote, s)
		}
	}

	n.Semitone = semi
	return n, nil
}

// ParseMelody parses every note in the melody. The octave and duration of a
// note carry forward to the following notes unless they are specified.
func ParseMelody(melody []string) ([]Note, error) {
	notes := make([]Note, 0, len(melody))
	octave := DefaultOctave
	duration := DefaultDuration

	for _, s := range melody {
		n, err := ParseNote(s, octave, duration)
		if err != nil {
			return nil, err
		}
		octave = n.Octave
		duration = n.Duration
		notes = append(notes, n)
	}

	return notes, nil
}
