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

package preferences

import (
	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/paths"
	"github.com/jetsetilly/bitsim/prefs"
)

// Sentinal error returned by the validation hooks.
const InvalidPreference = "preferences: invalid value for %s (%v)"

// the pins that can be designated as the music pin.
var musicPins = []int{0, 1, 2, 8}

// Preferences defines and collates all the preference values used by the
// board.
type Preferences struct {
	dsk *prefs.Disk

	// the pin an audio driver listens to. tones played on other pins are still
	// emulated but are not heard
	MusicPin prefs.Int

	// log every tone as it is played
	LogTones prefs.Bool

	// default frame delay (in milliseconds) for scrolling text
	ScrollDelay prefs.Int

	// default frame delay (in milliseconds) for sequences of images
	SequenceDelay prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := NewDefaultPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("music.pin", &p.MusicPin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("music.logtones", &p.LogTones)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.scrolldelay", &p.ScrollDelay)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.sequencedelay", &p.SequenceDelay)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// NewDefaultPreferences returns preferences that are not backed by a file.
// Load() and Save() do nothing. Useful for testing and for emulations that
// should not be affected by the user's preferences.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}

	p.MusicPin.SetDefault(0)
	p.LogTones.SetDefault(false)
	p.ScrollDelay.SetDefault(150)
	p.SequenceDelay.SetDefault(400)

	p.MusicPin.SetHookPre(func(v prefs.Value) error {
		for _, m := range musicPins {
			if v.(int) == m {
				return nil
			}
		}
		return curated.Errorf(InvalidPreference, "music pin", v)
	})

	positive := func(name string) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if v.(int) <= 0 {
				return curated.Errorf(InvalidPreference, name, v)
			}
			return nil
		}
	}
	p.ScrollDelay.SetHookPre(positive("scroll delay"))
	p.SequenceDelay.SetHookPre(positive("sequence delay"))

	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.MusicPin.Reset()
	_ = p.LogTones.Reset()
	_ = p.ScrollDelay.Reset()
	_ = p.SequenceDelay.Reset()
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
