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

package mathx_test

import (
	"testing"

	"github.com/jetsetilly/bitsim/mathx"
	"github.com/jetsetilly/bitsim/test"
)

func TestClamp(t *testing.T) {
	test.ExpectEquality(t, mathx.Clamp(10, 0, 9), 9)
	test.ExpectEquality(t, mathx.Clamp(-1, 0, 9), 0)
	test.ExpectEquality(t, mathx.Clamp(5, 9, 0), 5)
	test.ExpectEquality(t, mathx.Clamp(1.5, 0.0, 1.0), 1.0)
}

func TestBetween(t *testing.T) {
	test.ExpectSuccess(t, mathx.Between(0, 0, 4))
	test.ExpectSuccess(t, mathx.Between(4, 4, 0))
	test.ExpectFailure(t, mathx.Between(5, 0, 4))
}

func TestMod(t *testing.T) {
	test.ExpectEquality(t, mathx.Mod(370, 360), 10)
	test.ExpectEquality(t, mathx.Mod(-10, 360), 350)
	test.ExpectEquality(t, mathx.Mod(-360, 360), 0)
}
