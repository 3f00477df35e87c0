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

import "strings"

func melody(s string) []string {
	return strings.Split(s, "|")
}

// Built-in melodies.
var (
	Dadadadum   = melody("R4:2|G|G|G|Eb:8|R:2|F|F|F|D:8")
	Entertainer = melody("D4:1|D#|E|C5:2|E4:1|C5:2|E4:1|C5:3|C:1|D|D#|E|C|D|E:2|B4:1|D5:2|C:4")
	Prelude     = melody("C4:1|E|G|C5|E|G4|C5|E|C4|E|G|C5|E|G4|C5|E|C4|D|G|D5|F|G4|D5|F|C4|D|G|D5|F|G4|D5|F|B3|D4|G|D5|F|G4|D5|F|B3|D4|G|D5|F|G4|D5|F|C4|E|G|C5|E|G4|C5|E|C4|E|G|C5|E|G4|C5|E")
	Ode         = melody("E4|E|F|G|G|F|E|D|C|C|D|E|E:6|D:2|D:8|E:4|E|F|G|G|F|E|D|C|C|D|E|D:6|C:2|C:8")
	Nyan        = melody("F#5:2|G#|C#:1|D#:2|B4:1|D5:1|C#|B4:2|B|C#5|D|D:1|C#|B4:1|C#5:1|D#|F#|G#|D#|F#|C#|D|B4|C#5|B4|D#5:2|F#|G#:1|D#|F#|C#|D#|B4|D5|D#|D|C#|B4|C#5|D:2|B4:1|C#5|D#|F#|C#|D|C#|B4|C#5:2|B4|C#5|B4|F#:1|G#|B:2|F#:1|G#|B|C#5|D#|B4|E5|D#|E|F#|B4:2|B|F#:1|G#|B|F#|E5|D#|C#|B4|F#|D#|E|F#|B:2|F#:1|G#|B:2|F#:1|G#|B|B|C#5|D#|B4|F#|G#|F#|B:2|B:1|A#|B|F#|G#|B|E5|D#|E|F#|B4:2|C#5")
	Ringtone    = melody("C4:1|D|E:2|G|D:1|E|F:2|A|E:1|F|G:2|B|C5:4")
	Funk        = melody("C2:2|C|D#|C:1|F:2|C:1|F:2|F#|G|C|C|G|C:1|F#:2|C:1|F#:2|F|D#")
	Blues       = melody("C2:2|E|G|A|A#|A|G|E|C2:2|E|G|A|A#|A|G|E|F|A|C3|D|D#|D|C|A2|C2:2|E|G|A|A#|A|G|E|G|B|D3|F|F2|A|C3|D#|C2:2|E|G|E|G|F|E|D")
	Birthday    = melody("C4:3|C:1|D:4|C:4|F|E:8|C:3|C:1|D:4|C:4|G|F:8|C:3|C:1|C5:4|A4|F|E|D|A#:3|A#:1|A:4|F|G|F:8")
	Wedding     = melody("C4:4|F:3|F:1|F:8|C:4|G:3|E:1|F:8|C:4|F:3|A:1|C5:4|A4:3|F:1|F:4|E:3|F:1|G:8")
	Funeral     = melody("C3:4|C:3|C:1|C:4|D#:3|D:1|D:3|C:1|C:3|B2:1|C3:4")
	Punchline   = melody("C4:3|G3:1|F#|G|G#:3|G|R|B|C4")
	Python      = melody("D5:1|B4|R|B|B|A#|B|G5|R|D|D|R|B4|C5|R|C|C|R|D|E:5|C:1|A4|R|A|A|G#|A|F#5|R|E|E|R|C|B4|R|B|B|R|C5|D:5|D:1|B4|R|B|B|A#|B|B5|R|G|G|R|D|C#|R|A|A|R|A|A:5|G:1|F#:2|A:1|A|G#|A|E:2|A:1|A|G#|A|D|R|C#|D|R|C#|D:2|R:3")
	Baddy       = melody("C3:3|R|D:2|D#|R|C|R|F#:8")
	Chase       = melody("A4:1|B|C5|B4|A:2|R|A:1|B|C5|B4|A:2|R|A:2|E5|D#|E|F|E|D#|E|B4:1|C5|D|C|B4:2|R|B:1|C5|D|C|B4:2|R|B:2|E5|D#|E|F|E|D#|E")
	BaDing      = melody("B5:1|E6:3")
	Wawawawaa   = melody("E3:3|R:1|D#:3|R:1|D:4|R:1|C#:8")
	JumpUp      = melody("C5:1|D|E|F|G")
	JumpDown    = melody("G5:1|F|E|D|C")
	PowerUp     = melody("G4:1|C5|E|G:2|E:1|G:3")
	PowerDown   = melody("G5:1|D#|C|G4:2|B:1|C5:3")
)

// Melodies maps the name of every built-in melody to the melody.
var Melodies = map[string][]string{
	"DADADADUM":    Dadadadum,
	"ENTERTAINER":  Entertainer,
	"PRELUDE":      Prelude,
	"ODE":          Ode,
	"NYAN":         Nyan,
	"RINGTONE":     Ringtone,
	"FUNK":         Funk,
	"BLUES":        Blues,
	"BIRTHDAY":     Birthday,
	"WEDDING":      Wedding,
	"FUNERAL":      Funeral,
	"PUNCHLINE":    Punchline,
	"PYTHON":       Python,
	"BADDY":        Baddy,
	"CHASE":        Chase,
	"BA_DING":      BaDing,
	"WAWAWAWAA":    Wawawawaa,
	"JUMP_UP":      JumpUp,
	"JUMP_DOWN":    JumpDown,
	"POWER_UP":     PowerUp,
	"POWER_DOWN":   PowerDown,
}
