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

package easyterm_test

import (
	"testing"

	"github.com/jetsetilly/bitsim/gui/easyterm"
	"github.com/jetsetilly/bitsim/test"
)

func decodeAll(b []byte) []string {
	var keys []string
	for len(b) > 0 {
		k, n := easyterm.DecodeKey(b)
		if k != "" {
			keys = append(keys, k)
		}
		b = b[n:]
	}
	return keys
}

func TestDecodeKey(t *testing.T) {
	k, n := easyterm.DecodeKey([]byte("a"))
	test.ExpectEquality(t, k, "A")
	test.ExpectEquality(t, n, 1)

	k, n = easyterm.DecodeKey([]byte{27, '[', 'A'})
	test.ExpectEquality(t, k, "Up")
	test.ExpectEquality(t, n, 3)

	k, n = easyterm.DecodeKey([]byte{27, 'O', 'Q'})
	test.ExpectEquality(t, k, "F2")
	test.ExpectEquality(t, n, 3)

	k, n = easyterm.DecodeKey([]byte{27})
	test.ExpectEquality(t, k, "Escape")
	test.ExpectEquality(t, n, 1)

	k, _ = easyterm.DecodeKey([]byte{3})
	test.ExpectEquality(t, k, "Escape")

	k, n = easyterm.DecodeKey(nil)
	test.ExpectEquality(t, k, "")
	test.ExpectEquality(t, n, 0)
}

func TestDecodeSequence(t *testing.T) {
	// a, left cursor, an unknown sequence (delete key), +, b
	input := []byte{'a', 27, '[', 'D', 27, '[', '3', '~', '+', 'b'}
	keys := decodeAll(input)

	expected := []string{"A", "Left", "+", "B"}
	test.DemandEquality(t, len(keys), len(expected))
	for i := range expected {
		test.ExpectEquality(t, keys[i], expected[i])
	}
}
