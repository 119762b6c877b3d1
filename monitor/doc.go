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

// Package monitor is an interactive front end for the emulation. Each key
// press is a command. There is no line editing and no command history.
//
// Commands:
//
//	.	step one instruction
//	,	run one frame
//	space	start or stop continuous running
//	D	dump CPU, VDC and PSG state
//	L	disassemble from the PC
//	V	write a memviz graph of the console state
//	R	reset the console
//	h	help
//	q	quit
//
// The gamepad buttons of the first player are toggled with w a s d (up left
// down right) and j k n m (B A select start).
//
// Input is read in a separate goroutine. The emulation is only ever touched
// by the goroutine that calls Run().
package monitor
