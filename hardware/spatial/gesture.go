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

package spatial

import (
	"strings"

	"github.com/jetsetilly/bitsim/curated"
)

// Gesture is a named movement of the board.
type Gesture string

// List of valid Gesture values.
const (
	Up       Gesture = "up"
	Down     Gesture = "down"
	Left     Gesture = "left"
	Right    Gesture = "right"
	FaceUp   Gesture = "face up"
	FaceDown Gesture = "face down"
	Freefall Gesture = "freefall"
	ThreeG   Gesture = "3g"
	SixG     Gesture = "6g"
	EightG   Gesture = "8g"
	Shake    Gesture = "shake"
)

// AllGestures lists every gesture.
var AllGestures = []Gesture{Up, Down, Left, Right, FaceUp, FaceDown, Freefall, ThreeG, SixG, EightG, Shake}

// ParseGesture returns the gesture with the name. Letter case is ignored.
func ParseGesture(name string) (Gesture, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, g := range AllGestures {
		if string(g) == name {
			return g, nil
		}
	}
	return "", curated.Errorf(InvalidArgument, "unknown gesture: "+name)
}
