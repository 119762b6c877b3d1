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

// Package version reports the version of the program. The version number is
// set by the linker when building a release:
//
//	go build -ldflags "-X github.com/gopherpce/gopherpce/version.number=v0.1.0"
//
// Otherwise the version is taken from the build information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherPCE"

// set by the linker for release builds
var number string

// Info describes the build of the program.
type Info struct {
	// the version number. "unreleased" if the program was built from a
	// repository without a version number. "local" if there is no version
	// control information at all
	Number string

	// the vcs revision. suffixed with "+dirty" if the source had been
	// modified
	Revision string

	// whether this is a numbered release
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Number)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Number, inf.Revision)
}

// Version returns build information for the running program.
func Version() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fromSettings(nil)
	}
	return fromSettings(info.Settings)
}

func fromSettings(settings []debug.BuildSetting) Info {
	var vcs bool
	var modified bool
	var inf Info

	for _, v := range settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			inf.Revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Number = number
		inf.Release = true
	case vcs:
		inf.Number = "unreleased"
	default:
		inf.Number = "local"
	}

	return inf
}
