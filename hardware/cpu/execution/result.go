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

package execution

import (
	"github.com/gopherpce/gopherpce/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read from memory during the decoding of the
	// instruction. should be the same as Defn.Bytes once the instruction has
	// completed
	ByteCount int

	// the actual data read for the instruction. for instructions with more
	// than one operand (BBR, BBS, TST and the block transfers) this is the
	// first operand
	InstructionData uint16

	// the second operand, where there is one. the relative offset for BBR and
	// BBS, the address for TST and the destination for block transfers
	SecondaryData uint16

	// the length operand for the block transfer instructions
	BlockLength uint16

	// the effective address of the memory access, for those instructions that
	// access memory
	EffectiveAddress uint16

	// the number of cycles taken by the instruction. block transfers take a
	// variable number of cycles
	Cycles int

	// whether the branch was taken, for branch instructions
	BranchSuccess bool

	// whether this data has been finalised. the values of the other fields in
	// this struct may be undefined unless Final is true
	Final bool

	// any memory errors encountered during the instruction. these do not halt
	// execution
	Error string
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
