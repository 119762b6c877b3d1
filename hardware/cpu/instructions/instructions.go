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

package instructions

import "fmt"

// AddressingMode describes the method by which data for the instruction is
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	ZeroPage         // zp
	ZeroPageIndexedX // zp,X
	ZeroPageIndexedY // zp,Y
	ZeroPageIndirect // (zp)
	IndexedIndirect  // (zp,X)
	IndirectIndexed  // (zp),Y

	Absolute                // abs
	AbsoluteIndexedX        // abs,X
	AbsoluteIndexedY        // abs,Y
	AbsoluteIndirect        // (abs)
	AbsoluteIndexedIndirect // (abs,X)

	// BBR and BBS take a zero page address and a relative branch
	ZeroPageRelative

	// TII, TDD, TIN, TIA and TAI take three 16 bit operands: source,
	// destination and length
	BlockTransfer

	// TST takes an immediate value and a memory address
	ImmediateZeroPage
	ImmediateZeroPageIndexedX
	ImmediateAbsolute
	ImmediateAbsoluteIndexedX
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPage,X"
	case ZeroPageIndexedY:
		return "ZeroPage,Y"
	case ZeroPageIndirect:
		return "(ZeroPage)"
	case IndexedIndirect:
		return "(ZeroPage,X)"
	case IndirectIndexed:
		return "(ZeroPage),Y"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "Absolute,X"
	case AbsoluteIndexedY:
		return "Absolute,Y"
	case AbsoluteIndirect:
		return "(Absolute)"
	case AbsoluteIndexedIndirect:
		return "(Absolute,X)"
	case ZeroPageRelative:
		return "ZeroPage,Relative"
	case BlockTransfer:
		return "BlockTransfer"
	case ImmediateZeroPage:
		return "Immediate,ZeroPage"
	case ImmediateZeroPageIndexedX:
		return "Immediate,ZeroPage,X"
	case ImmediateAbsolute:
		return "Immediate,Absolute"
	case ImmediateAbsoluteIndexedX:
		return "Immediate,Absolute,X"
	}
	return "unknown addressing mode"
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// flow consists of the branch instructions (including BBR and BBS) and
	// JMP. branch instructions can be distinguished by the AddressingMode
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a conditional or unconditional
// branch. This includes BBR and BBS but not BSR.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Flow && (defn.AddressingMode == Relative || defn.AddressingMode == ZeroPageRelative)
}

// BitNumber returns the bit tested or changed by the BBR, BBS, RMB and SMB
// instructions. It is encoded in bits 4 to 6 of the opcode.
func (defn Definition) BitNumber() uint8 {
	return (defn.OpCode >> 4) & 0x07
}

// Lookup returns the definition for the opcode. Returns false if the opcode is
// undefined.
func Lookup(opcode uint8) (*Definition, bool) {
	defn := Definitions[opcode]
	return defn, defn != nil
}
