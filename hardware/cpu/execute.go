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

import (
	"strings"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/disassembly"
	"github.com/gopherpce/gopherpce/hardware/cpu/instructions"
	"github.com/gopherpce/gopherpce/hardware/memory/memorymap"
	"github.com/gopherpce/gopherpce/logger"
)

// ExecuteInstruction repays cycles of the cycle debt. If there is no debt
// remaining then the next instruction is executed and its cost becomes the new
// debt.
//
// No instruction is executed if the CPU is in an error state, if a trigger
// fires or if the CPU is idle.
func (mc *CPU) ExecuteInstruction(cycles int) {
	mc.ticks += cycles
	mc.cycleDebt -= cycles
	if mc.cycleDebt > 0 {
		return
	}
	mc.cycleDebt = 0

	if mc.errored {
		return
	}

	address := mc.PC.Address()
	opcode, err := mc.mem.Read(address)

	if mc.Triggers.check(address, opcode) {
		mc.abort = true
		mc.logDump()
		return
	}

	if mc.idle {
		mc.cycleDebt += mc.prefs.IdleSkip.Get().(int)
		return
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = address
	mc.memError(err)
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		mc.errored = true
		mc.abort = true
		mc.LastResult.Final = true
		mc.log.Log(logger.Allow, "cpu", curated.Errorf(IllegalOpcode, opcode, address))
		mc.logDump()
		return
	}

	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles
	mc.execute(defn)
	mc.LastResult.Final = true
	mc.cycleDebt += mc.LastResult.Cycles

	// an instruction that ends where the previous instruction ended has
	// jumped to itself
	pc := int(mc.PC.Address())
	if pc == mc.lastPC {
		mc.idle = true
	}
	mc.lastPC = pc

	if mc.prefs.Trace.CPU.AllowLogging() {
		mc.log.Logf(logger.Allow, "cpu", "%s [%s]", disassembly.FormatResult(mc.LastResult), mc.String())
	}
}

// write the result of Dump() to the log.
func (mc *CPU) logDump() {
	s := &strings.Builder{}
	mc.Dump(s)
	mc.log.Log(logger.Allow, "cpu", s.String())
}

// zero page addresses are offsets into the second segment.
func zeroPage(offset uint8) uint16 {
	return memorymap.ZeroPage + uint16(offset)
}

func (mc *CPU) branch(flag bool, offset uint8) {
	mc.LastResult.BranchSuccess = flag
	if flag {
		mc.PC.Add(uint16(int8(offset)))
	}
}

func (mc *CPU) compare(reg uint8, value uint8) {
	mc.acc8.Load(reg)
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.Status.SetNZ(mc.acc8.Value())
}

// execute the instruction. the opcode has already been read.
func (mc *CPU) execute(defn *instructions.Definition) {
	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is read from the program for immediate mode and from memory for
	// other modes. for read-modify-write instructions the value will change
	// during execution and is written back to memory (or the accumulator)
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:

	case instructions.Immediate:
		value = mc.readPC()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		mc.LastResult.InstructionData = uint16(mc.readPC())

	case instructions.ZeroPage:
		zp := mc.readPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = zeroPage(zp)

	case instructions.ZeroPageIndexedX:
		zp := mc.readPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = zeroPage(zp + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		zp := mc.readPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = zeroPage(zp + mc.Y.Value())

	case instructions.ZeroPageIndirect:
		zp := mc.readPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = mc.read16(zeroPage(zp))

	case instructions.IndexedIndirect:
		zp := mc.readPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = mc.read16(zeroPage(zp + mc.X.Value()))

	case instructions.IndirectIndexed:
		zp := mc.readPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = mc.read16(zeroPage(zp)) + mc.Y.Address()

	case instructions.Absolute:
		address = mc.readPC16()
		mc.LastResult.InstructionData = address

	case instructions.AbsoluteIndexedX:
		mc.LastResult.InstructionData = mc.readPC16()
		address = mc.LastResult.InstructionData + mc.X.Address()

	case instructions.AbsoluteIndexedY:
		mc.LastResult.InstructionData = mc.readPC16()
		address = mc.LastResult.InstructionData + mc.Y.Address()

	case instructions.AbsoluteIndirect:
		mc.LastResult.InstructionData = mc.readPC16()
		address = mc.read16(mc.LastResult.InstructionData)

	case instructions.AbsoluteIndexedIndirect:
		mc.LastResult.InstructionData = mc.readPC16()
		address = mc.read16(mc.LastResult.InstructionData + mc.X.Address())

	case instructions.ZeroPageRelative:
		zp := mc.readPC()
		mc.LastResult.InstructionData = uint16(zp)
		mc.LastResult.SecondaryData = uint16(mc.readPC())
		address = zeroPage(zp)

	case instructions.BlockTransfer:
		mc.LastResult.InstructionData = mc.readPC16()
		mc.LastResult.SecondaryData = mc.readPC16()
		mc.LastResult.BlockLength = mc.readPC16()

	case instructions.ImmediateZeroPage:
		mc.LastResult.InstructionData = uint16(mc.readPC())
		zp := mc.readPC()
		mc.LastResult.SecondaryData = uint16(zp)
		address = zeroPage(zp)

	case instructions.ImmediateZeroPageIndexedX:
		mc.LastResult.InstructionData = uint16(mc.readPC())
		zp := mc.readPC()
		mc.LastResult.SecondaryData = uint16(zp)
		address = zeroPage(zp + mc.X.Value())

	case instructions.ImmediateAbsolute:
		mc.LastResult.InstructionData = uint16(mc.readPC())
		mc.LastResult.SecondaryData = mc.readPC16()
		address = mc.LastResult.SecondaryData

	case instructions.ImmediateAbsoluteIndexedX:
		mc.LastResult.InstructionData = uint16(mc.readPC())
		mc.LastResult.SecondaryData = mc.readPC16()
		address = mc.LastResult.SecondaryData + mc.X.Address()
	}

	mc.LastResult.EffectiveAddress = address

	// read value from memory using the address found above. the value for
	// immediate mode instructions has already been read
	switch defn.Effect {
	case instructions.Read:
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Immediate, instructions.Relative:
		default:
			value = mc.read(address)
		}
	case instructions.RMW:
		if defn.AddressingMode == instructions.Accumulator {
			value = mc.A.Value()
		} else {
			value = mc.read(address)
		}
	}

	switch defn.Operator {
	case instructions.NOP:
		// does nothing

	case instructions.CLC:
		mc.Status.Carry = false

	case instructions.CLD:
		mc.Status.DecimalMode = false

	case instructions.CLI:
		mc.Status.InterruptDisable = false

	case instructions.CLV:
		mc.Status.Overflow = false

	case instructions.SEC:
		mc.Status.Carry = true

	case instructions.SED:
		mc.Status.DecimalMode = true

	case instructions.SEI:
		mc.Status.InterruptDisable = true

	case instructions.SET:
		mc.Status.MemoryOperation = true

	case instructions.CSH:
		mc.clockSpeed = ClockSpeedHigh

	case instructions.CSL:
		mc.clockSpeed = ClockSpeedLow

	case instructions.CLA:
		mc.A.Load(0)

	case instructions.CLX:
		mc.X.Load(0)

	case instructions.CLY:
		mc.Y.Load(0)

	case instructions.SAX:
		a := mc.A.Value()
		mc.A.Load(mc.X.Value())
		mc.X.Load(a)

	case instructions.SAY:
		a := mc.A.Value()
		mc.A.Load(mc.Y.Value())
		mc.Y.Load(a)

	case instructions.SXY:
		x := mc.X.Value()
		mc.X.Load(mc.Y.Value())
		mc.Y.Load(x)

	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.Status.SetNZ(mc.X.Value())

	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.Status.SetNZ(mc.A.Value())

	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetNZ(mc.A.Value())

	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetNZ(mc.X.Value())

	case instructions.TXS:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.PHA:
		mc.push(mc.A.Value())

	case instructions.PHX:
		mc.push(mc.X.Value())

	case instructions.PHY:
		mc.push(mc.Y.Value())

	case instructions.PHP:
		mc.push(mc.Status.Value())

	case instructions.PLA:
		mc.A.Load(mc.pull())
		mc.Status.SetNZ(mc.A.Value())

	case instructions.PLX:
		mc.X.Load(mc.pull())
		mc.Status.SetNZ(mc.X.Value())

	case instructions.PLY:
		mc.Y.Load(mc.pull())
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.PLP:
		mc.Status.Load(mc.pull())

	case instructions.LDA:
		mc.A.Load(value)
		mc.Status.SetNZ(value)

	case instructions.LDX:
		mc.X.Load(value)
		mc.Status.SetNZ(value)

	case instructions.LDY:
		mc.Y.Load(value)
		mc.Status.SetNZ(value)

	case instructions.STA:
		mc.write(address, mc.A.Value())

	case instructions.STX:
		mc.write(address, mc.X.Value())

	case instructions.STY:
		mc.write(address, mc.Y.Value())

	case instructions.STZ:
		mc.write(address, 0)

	case instructions.ST0:
		mc.vdc.Write(0, value)

	case instructions.ST1:
		mc.vdc.Write(2, value)

	case instructions.ST2:
		mc.vdc.Write(3, value)

	case instructions.INX:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.SetNZ(mc.X.Value())

	case instructions.INY:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.DEX:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.SetNZ(mc.X.Value())

	case instructions.DEY:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.INC:
		value++
		mc.Status.SetNZ(value)

	case instructions.DEC:
		value--
		mc.Status.SetNZ(value)

	case instructions.ADC:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.SBC:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.AND:
		mc.A.AND(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.ORA:
		mc.A.ORA(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.EOR:
		mc.A.EOR(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.ASL:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		value = mc.acc8.Value()
		mc.Status.SetNZ(value)

	case instructions.LSR:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		value = mc.acc8.Value()
		mc.Status.SetNZ(value)

	case instructions.ROL:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.Status.SetNZ(value)

	case instructions.ROR:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.Status.SetNZ(value)

	case instructions.CMP:
		mc.compare(mc.A.Value(), value)

	case instructions.CPX:
		mc.compare(mc.X.Value(), value)

	case instructions.CPY:
		mc.compare(mc.Y.Value(), value)

	case instructions.BIT:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.TST:
		mc.Status.Zero = uint8(mc.LastResult.InstructionData)&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.TRB:
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40
		value &^= mc.A.Value()
		mc.Status.Zero = value == 0

	case instructions.TSB:
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40
		value |= mc.A.Value()
		mc.Status.Zero = value == 0

	case instructions.RMB:
		value &^= 1 << defn.BitNumber()

	case instructions.SMB:
		value |= 1 << defn.BitNumber()

	case instructions.TAM:
		for i := 0; i < memorymap.NumSegments; i++ {
			if value&(1<<i) != 0 {
				mc.mem.SetMPR(i, mc.A.Value())
			}
		}

	case instructions.TMA:
		for i := 0; i < memorymap.NumSegments; i++ {
			if value&(1<<i) != 0 {
				mc.A.Load(mc.mem.MPR(i))
			}
		}

	case instructions.BCC:
		mc.branch(!mc.Status.Carry, uint8(mc.LastResult.InstructionData))

	case instructions.BCS:
		mc.branch(mc.Status.Carry, uint8(mc.LastResult.InstructionData))

	case instructions.BEQ:
		mc.branch(mc.Status.Zero, uint8(mc.LastResult.InstructionData))

	case instructions.BNE:
		mc.branch(!mc.Status.Zero, uint8(mc.LastResult.InstructionData))

	case instructions.BMI:
		mc.branch(mc.Status.Sign, uint8(mc.LastResult.InstructionData))

	case instructions.BPL:
		mc.branch(!mc.Status.Sign, uint8(mc.LastResult.InstructionData))

	case instructions.BVC:
		mc.branch(!mc.Status.Overflow, uint8(mc.LastResult.InstructionData))

	case instructions.BVS:
		mc.branch(mc.Status.Overflow, uint8(mc.LastResult.InstructionData))

	case instructions.BRA:
		mc.branch(true, uint8(mc.LastResult.InstructionData))

	case instructions.BBR:
		value = mc.read(address)
		mc.branch(value&(1<<defn.BitNumber()) == 0, uint8(mc.LastResult.SecondaryData))

	case instructions.BBS:
		value = mc.read(address)
		mc.branch(value&(1<<defn.BitNumber()) != 0, uint8(mc.LastResult.SecondaryData))

	case instructions.JMP:
		mc.PC.Load(address)

	case instructions.JSR:
		// the address pushed to the stack is the address of the last byte of
		// the JSR instruction
		ret := mc.PC.Address() - 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.PC.Load(address)

	case instructions.BSR:
		ret := mc.PC.Address() - 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.branch(true, uint8(mc.LastResult.InstructionData))

	case instructions.RTS:
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))
		mc.PC.Add(1)

	case instructions.RTI:
		mc.Status.Load(mc.pull())
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	case instructions.BRK:
		// the byte after the BRK opcode is skipped
		mc.PC.Add(1)
		mc.push(mc.PC.Hi())
		mc.push(mc.PC.Lo())
		mc.push(mc.Status.Value())
		mc.PC.Load(mc.read16(memorymap.IRQ2))
		mc.Status.MemoryOperation = false
		mc.Status.Break = true
		mc.Status.DecimalMode = false
		mc.Status.InterruptDisable = true

	case instructions.TII, instructions.TDD, instructions.TIN, instructions.TIA, instructions.TAI:
		mc.blockTransfer(defn.Operator)
	}

	// write back the result of read-modify-write instructions
	if defn.Effect == instructions.RMW {
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(value)
		} else {
			mc.write(address, value)
		}
	}

	// the T flag only lasts for the instruction following SET
	switch defn.Operator {
	case instructions.SET, instructions.RTI, instructions.PLP:
	default:
		mc.Status.MemoryOperation = false
	}
}

// blockTransfer copies BlockLength bytes. A length of zero transfers
// nothing. each byte transferred costs six cycles.
func (mc *CPU) blockTransfer(op instructions.Operator) {
	src := mc.LastResult.InstructionData
	dest := mc.LastResult.SecondaryData
	length := mc.LastResult.BlockLength

	for i := uint16(0); i < length; i++ {
		switch op {
		case instructions.TII:
			mc.write(dest, mc.read(src))
			src++
			dest++
		case instructions.TDD:
			mc.write(dest, mc.read(src))
			src--
			dest--
		case instructions.TIN:
			mc.write(dest, mc.read(src))
			src++
		case instructions.TIA:
			mc.write(dest+(i&1), mc.read(src))
			src++
		case instructions.TAI:
			mc.write(dest, mc.read(src+(i&1)))
			dest++
		}
	}

	mc.LastResult.Cycles += 6 * int(length)
}
