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

package logger

// Permission decides whether a log request is turned into a log entry. The
// Environment type is the usual implementation. Background tasks of a board
// created for testing are typically not permitted to log.
type Permission interface {
	AllowLogging() bool
}

type permit bool

func (p permit) AllowLogging() bool {
	return bool(p)
}

// Allow and Deny are fixed permissions for log requests that do not come from
// an environment.
var (
	Allow Permission = permit(true)
	Deny  Permission = permit(false)
)
