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

// Package cpu emulates the HuC6280 processor. The HuC6280 is a 65C02 with
// additional instructions for block transfers, memory paging and direct
// writes to the video display controller.
//
// Like all 8-bit processors of the era, the HuC6280 executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table (see the instructions package).
//
// Timing is not cycle accurate. Each instruction charges its cycle cost to a
// debt. The Step() function repays the debt by advancing the rest of the
// console (through the Environment interface) by the same number of cycles
// before executing the next instruction.
//
//	mc := cpu.NewCPU(log, prefs, mem, vdc, env)
//	mc.Reset()
//	mc.Step(1000)
//
// Memory errors do not stop execution. They are noted in the LastResult field.
// An illegal opcode stops the CPU until the next Reset(). The Error() function
// should be checked after every call to Step().
//
// Programs that wait in a tight loop (an instruction that jumps to itself) are
// detected and the CPU is put into an idle state. In the idle state each call
// to ExecuteInstruction() adds the idle skip number of cycles to the debt,
// without executing anything. Only an interrupt ends the idle state.
package cpu
