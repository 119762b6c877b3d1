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

// Package memorymap facilitates the translation of logical addresses, as seen
// by the CPU, to physical banks.
//
// The CPU has a 16 bit logical address space divided into eight segments of
// 8KB. Each segment is mapped to one of 256 physical banks by the eight memory
// page registers (MPR). Bank numbers below 0x80 select ROM, 0xf7 selects the
// battery backed RAM, 0xf8 selects the work RAM and 0xff selects the hardware
// page. All other banks are unmapped.
package memorymap
