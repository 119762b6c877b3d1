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

// Package test contains helper functions that remove common boilerplate from
// the package tests in the emulator.
//
// The Expect*() functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand*() functions report with t.Fatalf() and should
// be used when later parts of the test depend on the value being correct.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. The supported types are:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> always success
//
// The nil case is not obvious. Because of how errors work in Go (nil to
// indicate no error) an untyped nil must be interpreted as success.
//
// Each function takes an optional list of tags. The tags are printed as a
// prefix to any failure message and are useful for identifying which
// iteration of a table driven test has failed.
package test
