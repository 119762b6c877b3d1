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

// Package memory implements the memory map of the console as seen by the CPU.
//
// The logical 16 bit address space of the CPU is divided into eight segments.
// The memory page registers (MPR) map each segment to a physical bank. The
// memorymap package describes the banks and the Map type in this package
// dispatches accesses to the correct physical memory:
//
//	CPU ---- cpubus ---- Map ---- MPR ----+---- ROM      (banks 0x00 to 0x7f)
//	                                      |
//	                                      +---- Battery  (bank 0xf7)
//	                                      |
//	                                      +---- RAM      (bank 0xf8)
//	                                      |
//	                                      +---- hwbank   (bank 0xff)
//
// Accesses to unmapped banks, and writes to ROM, set the error flag of the
// Map and are logged. They are returned to the CPU as an error wrapping the
// cpubus.AddressError pattern. Reads from unmapped banks return zero.
package memory
