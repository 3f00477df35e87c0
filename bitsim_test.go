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

package main_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/bitsim/environment"
	"github.com/jetsetilly/bitsim/hardware"
	"github.com/jetsetilly/bitsim/hardware/display"
	"github.com/jetsetilly/bitsim/hardware/preferences"
)

func BenchmarkScroll(b *testing.B) {
	env, err := environment.NewEnvironment(nil, preferences.NewDefaultPreferences())
	if err != nil {
		b.Fatalf("error preparing environment: %s", err)
	}

	board, err := hardware.NewBoard(env)
	if err != nil {
		b.Fatalf("error preparing board: %s", err)
	}
	defer board.End()

	for b.Loop() {
		err = board.Display.Scroll("Hello, World!", display.WithDelay(time.Duration(0)))
		if err != nil {
			b.Fatal(err)
		}
	}
}
