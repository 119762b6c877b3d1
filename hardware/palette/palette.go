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

// Package palette implements the video colour encoder. The palette holds 512
// nine-bit colours which are written through a sequence of port writes:
// address low, address high, colour low and finally colour high. Writing the
// colour high byte commits the colour and advances the address.
package palette

import (
	"fmt"

	"github.com/gopherpce/gopherpce/logger"
)

// Size is the number of entries in the palette.
const Size = 512

// Color is a single palette entry. Each component is the three bit value
// from the hardware shifted into the upper bits of the byte.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return r, g, b, a
}

func (c Color) String() string {
	return fmt.Sprintf("R%d G%d B%d", c.R, c.G, c.B)
}

// Palette is the colour encoder peripheral.
type Palette struct {
	log  *logger.Logger
	perm logger.Permission

	entries [Size]Color

	addrLo  uint8
	addrHi  uint8
	addr    uint16
	colorLo uint8
	colorHi uint8

	ColorBurst uint8
	Filter     uint8
	Frequency  uint8
}

// NewPalette is the preferred method of initialisation for the Palette type.
func NewPalette(log *logger.Logger, perm logger.Permission) *Palette {
	pal := &Palette{
		log:  log,
		perm: perm,
	}
	pal.Reset()
	return pal
}

// Reset clears all palette entries and the address latch.
func (pal *Palette) Reset() {
	pal.addrLo = 0
	pal.addrHi = 0
	pal.addr = 0
	pal.colorLo = 0
	pal.colorHi = 0
	clear(pal.entries[:])
}

// Color returns the palette entry. The index is masked to the palette size.
func (pal *Palette) Color(idx uint16) Color {
	return pal.entries[idx&(Size-1)]
}

// Address returns the entry that will be written by the next commit.
func (pal *Palette) Address() uint16 {
	return pal.addr
}

// Read implements the hwbank.Port interface. The palette is write-only.
func (pal *Palette) Read(_ uint16) uint8 {
	return 0
}

// Write implements the hwbank.Port interface.
func (pal *Palette) Write(port uint16, data uint8) {
	switch port {
	case 0:
		if data == 0 {
			pal.Reset()
		}
		pal.ColorBurst = (data & 0x08) >> 3
		pal.Filter = (data & 0x04) >> 2
		pal.Frequency = data & 0x03
		pal.log.Logf(pal.perm, "palette", "burst %d filter %d freq %d", pal.ColorBurst, pal.Filter, pal.Frequency)
	case 2:
		pal.addrLo = data
		pal.addr = (uint16(pal.addrHi)<<8 | uint16(pal.addrLo)) & (Size - 1)
	case 3:
		pal.addrHi = data
		pal.addr = (uint16(pal.addrHi)<<8 | uint16(pal.addrLo)) & (Size - 1)
	case 4:
		// GGRRRBBB
		pal.colorLo = data
	case 5:
		// xxxxxxxG
		pal.colorHi = data
		c := Color{
			R: ((pal.colorLo & 0x38) >> 3) << 5,
			G: (((pal.colorHi & 0x01) << 2) | ((pal.colorLo & 0xc0) >> 6)) << 5,
			B: (pal.colorLo & 0x07) << 5,
		}
		pal.entries[pal.addr] = c
		pal.log.Logf(pal.perm, "palette", "writing %s @%d", c, pal.addr)
		pal.addr = (pal.addr + 1) & (Size - 1)
	}
}
