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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/gopherpce/gopherpce/test"
)

func TestLocal(t *testing.T) {
	inf := fromSettings(nil)
	test.ExpectEquality(t, inf.Number, "local")
	test.ExpectEquality(t, inf.Release, false)
	test.ExpectEquality(t, inf.String(), "GopherPCE local (no revision information)")
}

func TestUnreleased(t *testing.T) {
	inf := fromSettings([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectEquality(t, inf.Number, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abc123+dirty")
}

func TestRelease(t *testing.T) {
	number = "v0.1.0"
	defer func() { number = "" }()

	inf := fromSettings([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
	})
	test.ExpectEquality(t, inf.Release, true)
	test.ExpectEquality(t, inf.String(), "GopherPCE v0.1.0")
}
