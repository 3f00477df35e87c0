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

package easyterm

import (
	"strings"
)

// List of control characters.
const (
	KeyInterrupt      = 3  // end-of-text character
	KeySuspend        = 26 // substitute character
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 127
)

// List of escape sequence bytes.
const (
	EscCursor   = '['
	EscFunction = 'O'
)

// List of cursor keys.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// DecodeKey returns the name of the first key in the input and the number of
// bytes used by that key. Printable characters are returned in upper case.
// Cursor keys are named Up, Down, Left and Right and function keys F1 to F4.
// An unrecognised sequence returns the empty string.
//
// An escape byte on its own, or followed by a byte that does not start an
// escape sequence, is the escape key.
func DecodeKey(b []byte) (string, int) {
	if len(b) == 0 {
		return "", 0
	}

	switch b[0] {
	case KeyInterrupt:
		return "Escape", 1
	case KeyTab:
		return "Tab", 1
	case KeyCarriageReturn, '\n':
		return "Return", 1
	case KeyBackspace, 8:
		return "Backspace", 1
	case KeyEsc:
		if len(b) < 3 || (b[1] != EscCursor && b[1] != EscFunction) {
			return "Escape", 1
		}
		switch b[2] {
		case CursorUp:
			return "Up", 3
		case CursorDown:
			return "Down", 3
		case CursorForward:
			return "Right", 3
		case CursorBackward:
			return "Left", 3
		case 'P':
			return "F1", 3
		case 'Q':
			return "F2", 3
		case 'R':
			return "F3", 3
		case 'S':
			return "F4", 3
		}

		// skip the remainder of an unknown CSI sequence. the sequence ends
		// with a byte in the range 0x40 to 0x7e
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				return "", i + 1
			}
		}
		return "", len(b)
	}

	if b[0] >= 0x20 && b[0] < 0x7f {
		return strings.ToUpper(string(b[0])), 1
	}

	return "", 1
}
