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

//go:build !release

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/jetsetilly/bitsim/paths"
	"github.com/jetsetilly/bitsim/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".bitsim/foo/bar/baz")

	// directory has been created
	_, err = os.Stat(".bitsim/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".bitsim/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".bitsim/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".bitsim")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("tones", "ode", "wav")
	test.ExpectSuccess(t, regexp.MustCompile(`^tones_ode_\d{8}_\d{6}\.wav$`).MatchString(fn))

	fn = paths.UniqueFilename("tones", " ", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^tones_\d{8}_\d{6}$`).MatchString(fn))
}
