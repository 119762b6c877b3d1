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

package vdc

import "fmt"

// NumSprites is the number of entries in the sprite attribute table.
const NumSprites = 64

// Sprite is a decoded entry of the sprite attribute table.
type Sprite struct {
	Y       int
	X       int
	Pattern uint16

	YFlip bool
	XFlip bool

	// number of 16x16 cells, less one
	YSize int
	XSize int

	Foreground bool

	// palette page, already shifted into position
	Palette uint16
}

func (s Sprite) String() string {
	return fmt.Sprintf("y=%d x=%d pattern=%04x size=%dx%d flip=%v/%v fg=%v pal=%02x",
		s.Y, s.X, s.Pattern, s.XSize+1, s.YSize+1, s.XFlip, s.YFlip, s.Foreground, s.Palette)
}

// decodeSprite from the four words of the attribute table.
func decodeSprite(w [4]uint16) Sprite {
	s := Sprite{
		Y:          int(w[0] & 0x3ff),
		X:          int(w[1] & 0x3ff),
		Pattern:    (w[2] & 0x7ff) << 5,
		YFlip:      w[3]&0x8000 != 0,
		YSize:      int((w[3] & 0x3000) >> 12),
		XFlip:      w[3]&0x0800 != 0,
		XSize:      int((w[3] & 0x0100) >> 8),
		Foreground: w[3]&0x0080 != 0,
		Palette:    (w[3] & 0x0f) << 4,
	}

	// a height of two cells is not possible. the hardware treats it as four
	if s.YSize == 2 {
		s.YSize = 3
	}

	return s
}
