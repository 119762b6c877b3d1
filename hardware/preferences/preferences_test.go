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

package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/prefs"
	"github.com/gopherpce/gopherpce/test"
)

func TestDefaults(t *testing.T) {
	p := NewDefaultPreferences()
	test.ExpectEquality(t, p.FrameSkip.Get().(int), 0)
	test.ExpectEquality(t, p.IdleSkip.Get().(int), 500)
	test.ExpectEquality(t, p.VRAMIncrementReset.Get().(int), 1)
	test.ExpectFailure(t, p.Trace.CPU.AllowLogging())

	// no backing file
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.IdleSkip.Get().(int), 500)

	test.ExpectSuccess(t, p.IdleSkip.Set(100))
	test.ExpectSuccess(t, p.Trace.VDC.Set(true))
	test.ExpectSuccess(t, p.Save())

	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)

	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.IdleSkip.Get().(int), 100)

	var perm logger.Permission = &q.Trace.VDC
	test.ExpectSuccess(t, perm.AllowLogging())
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("hardware.frameskip::2")
	defer prefs.PopCommandLineStack()

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.FrameSkip.Get().(int), 2)
}
