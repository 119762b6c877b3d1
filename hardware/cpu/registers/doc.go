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

// Package registers implements the three types of register found in the
// HuC6280. The 8 bit general purpose registers (A, X and Y) are of type
// Register. The program counter is of type ProgramCounter, the stack pointer is
// of type StackPointer and the status register (the flags) of type
// StatusRegister.
//
// The Register type implements the arithmetic and logical operations of the
// CPU. Arithmetic is always binary. The HuC6280 decimal flag is recorded but
// does not affect Add() or Subtract().
package registers
