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
	"strings"

	"github.com/gopherpce/gopherpce/hardware/cpu/execution"
	"github.com/gopherpce/gopherpce/hardware/cpu/instructions"
)

// Entry is a disassembled instruction. The string fields are formatted and
// ready for display.
type Entry struct {
	// the result the entry was formatted from
	Result execution.Result

	Address  string
	Bytes    string
	Operator string
	Operand  string
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s  %-20s %s", e.Address, e.Bytes, e.Operator)
	}
	return fmt.Sprintf("%s  %-20s %-4s %s", e.Address, e.Bytes, e.Operator, e.Operand)
}

// FormatResult creates an Entry for the result. The result can be from an
// executed instruction or from Decode().
func FormatResult(result execution.Result) *Entry {
	e := &Entry{
		Result:  result,
		Address: fmt.Sprintf("$%04x", result.Address),
	}

	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Bytes = formatBytes(result)

	switch result.Defn.Operator {
	case instructions.BBR, instructions.BBS, instructions.RMB, instructions.SMB:
		e.Operator = fmt.Sprintf("%s%d", result.Defn.Operator, result.Defn.BitNumber())
	default:
		e.Operator = result.Defn.Operator.String()
	}

	e.Operand = formatOperand(result)

	return e
}

// the bytes of the instruction are recreated from the operand data in the
// result.
func formatBytes(result execution.Result) string {
	b := []uint8{result.Defn.OpCode}

	lohi := func(v uint16) {
		b = append(b, uint8(v), uint8(v>>8))
	}

	switch result.Defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
	case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY,
		instructions.AbsoluteIndirect, instructions.AbsoluteIndexedIndirect:
		lohi(result.InstructionData)
	case instructions.ZeroPageRelative:
		b = append(b, uint8(result.InstructionData), uint8(result.SecondaryData))
	case instructions.BlockTransfer:
		lohi(result.InstructionData)
		lohi(result.SecondaryData)
		lohi(result.BlockLength)
	case instructions.ImmediateZeroPage, instructions.ImmediateZeroPageIndexedX:
		b = append(b, uint8(result.InstructionData), uint8(result.SecondaryData))
	case instructions.ImmediateAbsolute, instructions.ImmediateAbsoluteIndexedX:
		b = append(b, uint8(result.InstructionData))
		lohi(result.SecondaryData)
	default:
		b = append(b, uint8(result.InstructionData))
	}

	s := strings.Builder{}
	for i, v := range b {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", v))
	}
	return s.String()
}

// branch destinations are relative to the address of the next instruction.
func branchTarget(result execution.Result, offset uint16) uint16 {
	return result.Address + uint16(result.Defn.Bytes) + uint16(int8(offset))
}

func formatOperand(result execution.Result) string {
	data := result.InstructionData
	secondary := result.SecondaryData

	switch result.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", data)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", branchTarget(result, data))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", data)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", data)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", data)
	case instructions.ZeroPageIndirect:
		return fmt.Sprintf("($%02x)", data)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", data)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", data)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", data)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", data)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", data)
	case instructions.AbsoluteIndirect:
		return fmt.Sprintf("($%04x)", data)
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04x,X)", data)
	case instructions.ZeroPageRelative:
		return fmt.Sprintf("$%02x,$%04x", data, branchTarget(result, secondary))
	case instructions.BlockTransfer:
		return fmt.Sprintf("$%04x,$%04x,$%04x", data, secondary, result.BlockLength)
	case instructions.ImmediateZeroPage:
		return fmt.Sprintf("#$%02x,$%02x", data, secondary)
	case instructions.ImmediateZeroPageIndexedX:
		return fmt.Sprintf("#$%02x,$%02x,X", data, secondary)
	case instructions.ImmediateAbsolute:
		return fmt.Sprintf("#$%02x,$%04x", data, secondary)
	case instructions.ImmediateAbsoluteIndexedX:
		return fmt.Sprintf("#$%02x,$%04x,X", data, secondary)
	}

	return ""
}
