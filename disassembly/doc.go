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

// Package disassembly formats HuC6280 instructions for display.
//
// Instructions can be disassembled from memory with the Decode() function,
// which reads an instruction without executing it, or from the result of an
// executed instruction. In both cases the FormatResult() function produces an
// Entry, which has separate fields for each part of the instruction.
//
// For quick disassemblies of an address range the FromMemory() function can be
// used. Range disassembly is linear. Data bytes between instructions will be
// disassembled as though they were instructions.
package disassembly
