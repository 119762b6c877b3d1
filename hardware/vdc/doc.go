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

// Package vdc implements the video display controller. The VDC holds 32K words
// of video memory, a bank of twenty registers addressed indirectly through a
// register select port, and the sprite attribute table.
//
// Registers are written through a pair of latches. Writing the low byte
// commits the register immediately except for the VRAM data register (2) and
// the DMA length register (18), which commit when the high byte is written.
//
// Once per vertical sync the contents of video memory are decoded into a
// bitmap of palette indices. The bitmap is the size of the virtual screen
// (as set by the memory width register) and is drawn in the following order:
// background sprites, tiles, foreground sprites. Palette indexes with bit 8
// set refer to the sprite half of the palette.
package vdc
