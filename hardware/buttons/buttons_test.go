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

package buttons_test

import (
	"testing"

	"github.com/jetsetilly/bitsim/hardware/buttons"
	"github.com/jetsetilly/bitsim/test"
)

func TestPresses(t *testing.T) {
	b := buttons.NewButton("A")
	test.ExpectEquality(t, b.String(), "A")

	b.Press()
	b.Release()
	b.Press()
	b.Release()
	b.Press()

	test.ExpectEquality(t, b.GetPresses(), 3)
	test.ExpectEquality(t, b.GetPresses(), 0)

	// GetPresses() does not consume the sticky flag
	test.ExpectEquality(t, b.WasPressed(), true)
	test.ExpectEquality(t, b.WasPressed(), false)

	// and neither query changes the instantaneous state
	test.ExpectEquality(t, b.IsPressed(), true)
	b.Release()
	test.ExpectEquality(t, b.IsPressed(), false)
}

func TestHeldDown(t *testing.T) {
	b := buttons.NewButton("B")

	// repeated press events while the button is down are a single press
	b.Press()
	b.Press()
	b.Press()
	test.ExpectEquality(t, b.GetPresses(), 1)

	// WasPressed() does not consume the press count
	b.Release()
	b.Press()
	test.ExpectEquality(t, b.WasPressed(), true)
	test.ExpectEquality(t, b.GetPresses(), 1)
}

func TestReset(t *testing.T) {
	b := buttons.NewButton("A")
	b.Press()
	b.Reset()
	test.ExpectEquality(t, b.IsPressed(), false)
	test.ExpectEquality(t, b.WasPressed(), false)
	test.ExpectEquality(t, b.GetPresses(), 0)
}
