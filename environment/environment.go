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

package environment

import (
	"github.com/jetsetilly/bitsim/hardware/preferences"
	"github.com/jetsetilly/bitsim/notifications"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label of the environment of the main emulation.
const MainEmulation Label = ""

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences

	// notifications are sent to the front end. can be nil
	Notifications notifications.Notify
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The notify argument can be nil. If the prefs argument is nil then a new
// Preferences instance will be created and loaded from disk. Providing a
// non-nil value allows the preferences of more than one emulation to be
// synchronised.
func NewEnvironment(notify notifications.Notify, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Notifications: notify,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// regression testing where the initial state must be the same for every run of
// the test.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}

// Notify forwards the notice to the front end if one has been specified.
func (env *Environment) Notify(notice notifications.Notice) error {
	if env.Notifications == nil {
		return nil
	}
	return env.Notifications.Notify(notice)
}
