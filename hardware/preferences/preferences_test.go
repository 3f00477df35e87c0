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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/hardware/preferences"
	"github.com/jetsetilly/bitsim/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectEquality(t, p.MusicPin.Get().(int), 0)
	test.ExpectEquality(t, p.LogTones.Get().(bool), false)
	test.ExpectEquality(t, p.ScrollDelay.Get().(int), 150)
	test.ExpectEquality(t, p.SequenceDelay.Get().(int), 400)

	// no disk so saving and loading is not an error
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestMusicPin(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectSuccess(t, p.MusicPin.Set(8))
	test.ExpectEquality(t, p.MusicPin.Get().(int), 8)

	err := p.MusicPin.Set(3)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidPreference))
	test.ExpectEquality(t, p.MusicPin.Get().(int), 8)

	p.SetDefaults()
	test.ExpectEquality(t, p.MusicPin.Get().(int), 0)
}

func TestDelays(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectFailure(t, p.ScrollDelay.Set(0))
	test.ExpectFailure(t, p.SequenceDelay.Set("-1"))
	test.ExpectSuccess(t, p.ScrollDelay.Set("10"))
	test.ExpectEquality(t, p.ScrollDelay.Get().(int), 10)
}
