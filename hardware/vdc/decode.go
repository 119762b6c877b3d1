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

// spritePalette is the bit that distinguishes sprite pixels from tile pixels
// in the bitmap.
const spritePalette = 0x100

// Width returns the width of the virtual screen in pixels.
func (vdc *VDC) Width() int {
	return vdc.Geometry.MWRWidth * 8
}

// Height returns the height of the virtual screen in pixels.
func (vdc *VDC) Height() int {
	return vdc.Geometry.MWRHeight * 8
}

// Index returns the palette index of the pixel at x and y. The coordinates are
// not wrapped to the screen size.
func (vdc *VDC) Index(x int, y int) uint16 {
	return vdc.bitmap[(y*vdc.Width()+x)&(BitmapSize-1)]
}

// Decode video memory into the bitmap. Returns false if the frame was skipped
// because of the frame skip preference.
func (vdc *VDC) Decode() bool {
	if vdc.skipLeft > 0 {
		vdc.skipLeft--
		return false
	}
	vdc.skipLeft = vdc.prefs.FrameSkip.Get().(int)

	clear(vdc.bitmap[:])
	vdc.decodeSATB()
	vdc.drawSprites(false)
	vdc.drawTiles()
	vdc.drawSprites(true)
	vdc.frames++

	return true
}

func (vdc *VDC) decodeSATB() {
	addr := vdc.satbAddr
	for i := range vdc.sprites {
		var w [4]uint16
		for j := range w {
			w[j] = vdc.vram[addr&vramMask]
			addr++
		}
		vdc.sprites[i] = decodeSprite(w)
	}
}

// drawTiles decodes the background attribute table (the tile map at the start
// of video memory) into the bitmap. pixels with a value of zero are
// transparent and are not drawn.
func (vdc *VDC) drawTiles() {
	line := vdc.Width()
	taddr := 0

	for ty := 0; ty < vdc.Geometry.MWRHeight; ty++ {
		for tx := 0; tx < vdc.Geometry.MWRWidth; tx++ {
			entry := vdc.vram[taddr&vramMask]
			taddr++

			pal := (entry & 0xf000) >> 8
			def := int(entry&0x0fff) << 4

			for y := 0; y < 8; y++ {
				lo := vdc.vram[(def+y)&vramMask]
				hi := vdc.vram[(def+y+8)&vramMask]
				row := (ty*8+y)*line + tx*8

				for x := 0; x < 8; x++ {
					b := 7 - x
					plane := (lo>>b)&1 | ((lo>>(b+8))&1)<<1 | ((hi>>b)&1)<<2 | ((hi>>(b+8))&1)<<3
					if plane != 0 {
						vdc.bitmap[(row+x)&(BitmapSize-1)] = pal | plane
					}
				}
			}
		}
	}
}

// drawSprites draws every sprite with the matching priority. sprites are drawn
// in reverse order so that lower numbered sprites are drawn on top.
func (vdc *VDC) drawSprites(foreground bool) {
	width := vdc.Width()
	height := vdc.Height()
	wrap := width*height - 1

	bxr := vdc.Geometry.BXR
	byr := vdc.Geometry.BYR

	for i := NumSprites - 1; i >= 0; i-- {
		s := vdc.sprites[i]
		if s.Foreground != foreground {
			continue
		}

		xsign, xoffset := 1, 0
		if s.XFlip {
			xsign, xoffset = -1, (s.XSize+1)*16-1
		}
		ysign, yoffset := 1, 0
		if s.YFlip {
			ysign, yoffset = -1, (s.YSize+1)*16-1
		}

		maddr := int(s.Pattern)
		for cy := 0; cy <= s.YSize; cy++ {
			for cx := 0; cx <= s.XSize; cx++ {
				for y := 0; y < 16; y++ {
					p0 := vdc.vram[maddr&vramMask]
					p1 := vdc.vram[(maddr+16)&vramMask]
					p2 := vdc.vram[(maddr+32)&vramMask]
					p3 := vdc.vram[(maddr+48)&vramMask]

					for x := 0; x < 16; x++ {
						b := 15 - x
						plane := (p0>>b)&1 | ((p1>>b)&1)<<1 | ((p2>>b)&1)<<2 | ((p3>>b)&1)<<3
						if plane == 0 {
							continue
						}

						dx := s.X - 32 + bxr + xoffset + (x+cx*16)*xsign
						dy := s.Y - 64 + byr + yoffset + (y+cy*16)*ysign
						if dx >= bxr && dx < width+bxr && dy >= byr && dy < height+byr {
							vdc.bitmap[(dy*width+dx)&wrap] = spritePalette | s.Palette | plane
						}
					}
					maddr++
				}

				// skip the remaining three planes of the cell
				maddr += 48
			}
		}
	}
}
