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

package palette_test

import (
	"image/color"
	"testing"

	"github.com/gopherpce/gopherpce/hardware/palette"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/test"
)

func write(pal *palette.Palette, addr uint16, lo, hi uint8) {
	pal.Write(2, uint8(addr))
	pal.Write(3, uint8(addr>>8))
	pal.Write(4, lo)
	pal.Write(5, hi)
}

func TestCommit(t *testing.T) {
	pal := palette.NewPalette(logger.NewLogger(10), logger.Allow)

	// every component at full intensity
	write(pal, 0x10, 0xff, 0x01)
	test.ExpectEquality(t, pal.Color(0x10), palette.Color{R: 0xe0, G: 0xe0, B: 0xe0})
	test.ExpectEquality(t, pal.Address(), 0x11)

	// green is split between the two bytes
	write(pal, 0x20, 0x40, 0x00)
	test.ExpectEquality(t, pal.Color(0x20), palette.Color{G: 0x20})
	write(pal, 0x21, 0x00, 0x01)
	test.ExpectEquality(t, pal.Color(0x21), palette.Color{G: 0x80})

	// red and blue
	write(pal, 0x22, 0x08|0x01, 0x00)
	test.ExpectEquality(t, pal.Color(0x22), palette.Color{R: 0x20, B: 0x20})
}

func TestAutoIncrement(t *testing.T) {
	pal := palette.NewPalette(logger.NewLogger(10), logger.Allow)

	write(pal, 0x1ff, 0x07, 0x00)
	test.ExpectEquality(t, pal.Address(), 0x000)

	// a second commit without setting the address
	pal.Write(4, 0x38)
	pal.Write(5, 0x00)
	test.ExpectEquality(t, pal.Color(0), palette.Color{R: 0xe0})
	test.ExpectEquality(t, pal.Color(0x1ff), palette.Color{B: 0xe0})
}

func TestControl(t *testing.T) {
	pal := palette.NewPalette(logger.NewLogger(10), logger.Allow)

	pal.Write(0, 0x0e)
	test.ExpectEquality(t, pal.ColorBurst, 1)
	test.ExpectEquality(t, pal.Filter, 1)
	test.ExpectEquality(t, pal.Frequency, 2)

	write(pal, 0x05, 0xff, 0xff)
	pal.Write(0, 0x00)
	test.ExpectEquality(t, pal.Color(0x05), palette.Color{})
	test.ExpectEquality(t, pal.Read(4), 0)
}

func TestRGBA(t *testing.T) {
	var c color.Color = palette.Color{R: 0xe0, G: 0x20, B: 0x00}
	r, g, b, a := c.RGBA()
	test.ExpectEquality(t, r, 0xe0e0)
	test.ExpectEquality(t, g, 0x2020)
	test.ExpectEquality(t, b, 0)
	test.ExpectEquality(t, a, 0xffff)
}
