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

// Package paths contains functions to prepare paths to bitsim resources.
//
// The ResourcePath() function returns the supplied resource prepended with
// the appropriate config directory, creating the directory if necessary. For
// example, the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the config directory is ".bitsim" in the current
// directory. For builds made with the "release" tag the user's config
// directory is used (see os.UserConfigDir()). On a modern Linux system that
// will be:
//
//	/home/user/.config/bitsim/preferences
package paths
