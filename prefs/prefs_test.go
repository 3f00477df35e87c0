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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/prefs"
	"github.com/jetsetilly/bitsim/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "bitsim_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("-20"))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectEquality(t, w.Get().(int), -20)

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: -20\n")
}

func TestFloatAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var f prefs.Float
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("float", &f))
	test.ExpectSuccess(t, dsk.Add("string", &s))

	test.ExpectSuccess(t, f.Set("0.5"))
	s.SetMaxLen(5)
	test.ExpectSuccess(t, s.Set("hello world"))
	test.ExpectEquality(t, s.String(), "hello")

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "float :: 0.500\nstring :: hello\n")
}

func TestDefaultsAndReset(t *testing.T) {
	var v prefs.Int
	v.SetDefault(150)
	test.ExpectEquality(t, v.Get().(int), 150)
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 150)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the update
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestBadKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	err = dsk.Add("bad key", &v)
	test.ExpectSuccess(t, curated.Is(err, prefs.BadKey))
}

// more than one Disk can use the same file and entries not belonging to a
// Disk instance survive a save
func TestSharedFile(t *testing.T) {
	fn := getTmpPrefFile(t)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.Int
	var b prefs.Int
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))

	test.ExpectSuccess(t, a.Set(1))
	test.ExpectSuccess(t, b.Set(2))
	test.ExpectSuccess(t, dskA.Save())
	test.ExpectSuccess(t, dskB.Save())
	cmpTmpFile(t, fn, "a :: 1\nb :: 2\n")

	// load into a fresh value
	dskC, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var c prefs.Int
	test.ExpectSuccess(t, dskC.Add("a", &c))
	test.ExpectSuccess(t, dskC.Load(false))
	test.ExpectEquality(t, c.Get().(int), 1)
}

func TestMissingFile(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("v", &v))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// file is created when saveOnFail is true
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "v :: 0\n")
}

func TestCommandLineOverride(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("music.pin", &v))
	test.ExpectSuccess(t, v.Set(1))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("music.pin::8")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 8)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
