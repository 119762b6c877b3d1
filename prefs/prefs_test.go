// This file is part of GopherPCE.
//
// GopherPCE is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPCE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPCE.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/prefs"
	"github.com/gopherpce/gopherpce/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))
	test.ExpectFailure(t, dsk.Add("test", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, v.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestIntAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("number", &n))
	test.ExpectSuccess(t, dsk.Add("name", &s))

	test.ExpectSuccess(t, n.Set("99"))
	test.ExpectEquality(t, n.Get().(int), 99)
	test.ExpectFailure(t, n.Set("---"))
	test.ExpectFailure(t, n.Set(1.0))

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("foobar"))
	test.ExpectEquality(t, s.String(), "foo")

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "name :: foo\nnumber :: 99\n")

	// reload into fresh values
	dsk2, _ := prefs.NewDisk(fn)
	var n2 prefs.Int
	test.ExpectSuccess(t, dsk2.Add("number", &n2))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, n2.Get().(int), 99)

	// saving the second disk must not lose the name entry
	test.ExpectSuccess(t, n2.Set(7))
	test.DemandSuccess(t, dsk2.Save())
	cmpFile(t, fn, "name :: foo\nnumber :: 7\n")
}

func TestMissingFile(t *testing.T) {
	dsk, _ := prefs.NewDisk(filepath.Join(t.TempDir(), "missing"))
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("b", &b))
	err := dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
}

func TestHooks(t *testing.T) {
	var b prefs.Bool
	var seen bool
	b.SetHookPost(func(v prefs.Value) error {
		seen = v.(bool)
		return nil
	})
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, seen)
	test.ExpectSuccess(t, b.AllowLogging())
	test.ExpectSuccess(t, b.Reset())
	test.ExpectFailure(t, b.AllowLogging())
}
