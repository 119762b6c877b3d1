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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The System type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can be run for
// a period of emulated time or stepped cycle by cycle.
//
// The System also implements the cpu.Environment interface. Before each
// instruction the CPU ticks the System by the cost of the previous
// instruction, which advances the video and timer counters and delivers any
// interrupts.
package hardware
