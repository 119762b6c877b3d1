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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and are then parsed
// with Parse(). Flags for the current mode are added before the call to
// Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MONITOR", "PERFORMANCE", "DISASM")
//	verbose := md.AddBool("verbose", false, "echo log to stdout")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default mode. It is selected when the first
// non-flag argument is not one of the named sub-modes. Sub-mode comparisons
// are case insensitive and Mode() always returns the upper case name.
//
// Once a mode has been selected, NewMode() starts a new set of flags for that
// mode and Parse() is called again to process the arguments that follow the
// mode name:
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		from := md.AddAddress("from", 0xe000, "first address")
//		_, _ = md.Parse()
//		disassemble(*from, md.RemainingArgs())
//	}
//
// Modes can be nested to any depth. Path() returns every mode encountered so
// far, separated by a forward slash.
//
// A -help flag is handled automatically. Help is written to the Output field
// and Parse() returns ParseHelp.
package modalflag
