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

package disassembly

import (
	"fmt"
	"io"

	"github.com/gopherpce/gopherpce/hardware/cpu/execution"
	"github.com/gopherpce/gopherpce/hardware/cpu/instructions"
)

// Peeker is the memory used for disassembly. Peek() must not have side
// effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// Decode the instruction at the address without executing it. The Final field
// of the result is false. The Defn field will be nil if the opcode is not
// recognised.
func Decode(mem Peeker, address uint16) execution.Result {
	result := execution.Result{
		Address:   address,
		ByteCount: 1,
	}

	defn, ok := instructions.Lookup(mem.Peek(address))
	if !ok {
		return result
	}
	result.Defn = defn
	result.Cycles = defn.Cycles

	pc := address + 1

	read := func() uint8 {
		v := mem.Peek(pc)
		pc++
		result.ByteCount++
		return v
	}

	read16 := func() uint16 {
		lo := read()
		hi := read()
		return uint16(hi)<<8 | uint16(lo)
	}

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
	case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY,
		instructions.AbsoluteIndirect, instructions.AbsoluteIndexedIndirect:
		result.InstructionData = read16()
	case instructions.ZeroPageRelative:
		result.InstructionData = uint16(read())
		result.SecondaryData = uint16(read())
	case instructions.BlockTransfer:
		result.InstructionData = read16()
		result.SecondaryData = read16()
		result.BlockLength = read16()
		result.Cycles += 6 * int(result.BlockLength)
	case instructions.ImmediateZeroPage, instructions.ImmediateZeroPageIndexedX:
		result.InstructionData = uint16(read())
		result.SecondaryData = uint16(read())
	case instructions.ImmediateAbsolute, instructions.ImmediateAbsoluteIndexedX:
		result.InstructionData = uint16(read())
		result.SecondaryData = read16()
	default:
		result.InstructionData = uint16(read())
	}

	return result
}

// FromMemory disassembles count instructions starting at the address.
// Unrecognised opcodes are disassembled as a single byte.
func FromMemory(mem Peeker, address uint16, count int) []*Entry {
	entries := make([]*Entry, 0, count)
	for i := 0; i < count; i++ {
		r := Decode(mem, address)
		entries = append(entries, FormatResult(r))
		address += uint16(r.ByteCount)
	}
	return entries
}

// Write the entries to the io.Writer, one per line.
func Write(w io.Writer, entries []*Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}
