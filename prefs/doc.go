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

// Package prefs facilitates the storing of preference values on disk. The
// Bool, Int, Float and String types hold live values that can be read safely
// from any goroutine. Values are associated with a key with Disk.Add() and
// are then loaded and saved as a group.
//
// Values pushed onto the command line stack with PushCommandLineStack() take
// priority over values in the file. The stack is consulted when Disk.Load()
// is called and any used values are removed from the top of the stack.
package prefs
