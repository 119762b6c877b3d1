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

package cpu

// Triggers are debugging aids that stop the Step() loop when a condition is
// met. A description of the CPU state is written to the log when a trigger
// fires.
type Triggers struct {
	// stop when the opcode has been fetched FindOccurrences times
	FindEnabled     bool
	FindOpcode      uint8
	FindOccurrences int
	found           int

	// stop when BreakAfter instructions have executed after the PC reached
	// BreakAddress
	BreakEnabled bool
	BreakAddress uint16
	BreakAfter   int
	breaking     bool
	breakLeft    int
}

// SetFind enables the opcode trigger.
func (t *Triggers) SetFind(opcode uint8, occurrences int) {
	t.FindEnabled = true
	t.FindOpcode = opcode
	t.FindOccurrences = occurrences
	t.found = 0
}

// SetBreak enables the address trigger.
func (t *Triggers) SetBreak(address uint16, after int) {
	t.BreakEnabled = true
	t.BreakAddress = address
	t.BreakAfter = after
	t.breaking = false
	t.breakLeft = after
}

// Clear disables all triggers.
func (t *Triggers) Clear() {
	*t = Triggers{}
}

// check is called with every fetched opcode. returns true if a trigger has
// fired. a trigger that has fired is disabled.
func (t *Triggers) check(address uint16, opcode uint8) bool {
	if t.BreakEnabled {
		if t.breaking || address == t.BreakAddress {
			t.breaking = true
			if t.breakLeft <= 0 {
				t.BreakEnabled = false
				t.breaking = false
				return true
			}
			t.breakLeft--
		}
	}

	if t.FindEnabled && opcode == t.FindOpcode {
		t.found++
		if t.found >= t.FindOccurrences {
			t.FindEnabled = false
			return true
		}
	}

	return false
}
