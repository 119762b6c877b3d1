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

import (
	"fmt"
	"io"
)

// NumRegisters is the number of addressable registers.
const NumRegisters = 20

// register indexes that require special handling.
const (
	regWriteAddr = 0
	regReadAddr  = 1
	regVRAMData  = 2
	regDMALength = 18
)

// Control is the decoded value of the control register (5).
type Control struct {
	Increment         uint16
	Background        bool
	Sprites           bool
	IntVBlank         bool
	IntHBlank         bool
	IntSpriteOverflow bool
	IntSprite0        bool
}

// Geometry is the decoded value of the screen registers (6 to 14).
type Geometry struct {
	RCR int
	BXR int
	BYR int

	// virtual screen size in tiles
	MWRWidth  int
	MWRHeight int

	HSRStart int
	HSRWidth int
	HDREnd   int
	HDRWidth int
	VPRStart int
	VPRWidth int
	VDW      int
	VCR      int
}

// DMAControl is the decoded value of the DMA control register (15).
type DMAControl struct {
	SATBAuto      bool
	DestDecrement bool
	SrcDecrement  bool
	IntVDMA       bool
	IntSATB       bool
}

// Status is the status register. Reading the register with Read(0) clears
// the VBlank, HBlank, SATB and VDMA bits.
type Status struct {
	DMA            bool
	VBlank         bool
	VDMA           bool
	SATB           bool
	HBlank         bool
	SpriteOverflow bool
	Sprite0        bool
}

// Value returns the status as it is read from port 0.
func (s Status) Value() uint8 {
	var v uint8
	for i, b := range []bool{s.Sprite0, s.SpriteOverflow, s.HBlank, s.SATB, s.VDMA, s.VBlank, s.DMA} {
		if b {
			v |= 1 << i
		}
	}
	return v
}

// virtual screen sizes selected by bits 4 to 6 of the MWR register.
var mwrSizes = [8][2]int{
	{32, 32}, {64, 32}, {128, 32}, {128, 32},
	{32, 64}, {64, 64}, {128, 64}, {128, 64},
}

// commit the latched value for the currently selected register. the high
// argument indicates that the commit is the result of a high byte write.
func (vdc *VDC) commit(high bool) {
	reg := vdc.selected
	v := uint16(vdc.latchHi[reg])<<8 | uint16(vdc.latchLo[reg])

	switch reg {
	case regWriteAddr:
		vdc.writeAddr = v & vramMask
	case regReadAddr:
		vdc.readAddr = v & vramMask
	case regVRAMData:
		vdc.vram[vdc.writeAddr] = v
		vdc.log.Logf(vdc.perm, "vdc", "vram write %04x @ %04x", v, vdc.writeAddr)
		if high {
			vdc.writeAddr = (vdc.writeAddr + vdc.Control.Increment) & vramMask
		}
	case 5:
		switch (v & 0x1800) >> 11 {
		case 0:
			vdc.Control.Increment = 1
		case 1:
			vdc.Control.Increment = 32
		case 2:
			vdc.Control.Increment = 64
		case 3:
			vdc.Control.Increment = 128
		}
		vdc.Control.Background = v&0x0080 != 0
		vdc.Control.Sprites = v&0x0040 != 0
		vdc.Control.IntVBlank = v&0x0008 != 0
		vdc.Control.IntHBlank = v&0x0004 != 0
		vdc.Control.IntSpriteOverflow = v&0x0002 != 0
		vdc.Control.IntSprite0 = v&0x0001 != 0
		vdc.log.Logf(vdc.perm, "vdc", "control %+v", vdc.Control)
	case 6:
		vdc.Geometry.RCR = int(v & 0x3ff)
	case 7:
		vdc.Geometry.BXR = int(v & 0x3ff)
	case 8:
		vdc.Geometry.BYR = int(v & 0x1ff)
	case 9:
		sz := mwrSizes[(v&0x0070)>>4]
		vdc.Geometry.MWRWidth = sz[0]
		vdc.Geometry.MWRHeight = sz[1]
		vdc.log.Logf(vdc.perm, "vdc", "mwr %dx%d", sz[0], sz[1])
	case 10:
		vdc.Geometry.HSRStart = int((v & 0x7f00) >> 8)
		vdc.Geometry.HSRWidth = int(v & 0x001f)
	case 11:
		vdc.Geometry.HDREnd = int((v & 0x7f00) >> 8)
		vdc.Geometry.HDRWidth = int(v & 0x003f)
	case 12:
		vdc.Geometry.VPRStart = int((v & 0x7f00) >> 8)
		vdc.Geometry.VPRWidth = int(v & 0x001f)
	case 13:
		vdc.Geometry.VDW = int(v & 0x01ff)
	case 14:
		vdc.Geometry.VCR = int(v & 0x00ff)
	case 15:
		vdc.DMAControl.SATBAuto = v&0x0010 != 0
		vdc.DMAControl.DestDecrement = v&0x0008 != 0
		vdc.DMAControl.SrcDecrement = v&0x0004 != 0
		vdc.DMAControl.IntVDMA = v&0x0002 != 0
		vdc.DMAControl.IntSATB = v&0x0001 != 0
		vdc.log.Logf(vdc.perm, "vdc", "dcr %+v", vdc.DMAControl)
	case 16:
		vdc.dmaSrc = v
	case 17:
		vdc.dmaDest = v
	case regDMALength:
		vdc.dmaLen = v
		vdc.dma()
	case 19:
		vdc.satbAddr = v
	default:
		vdc.log.Logf(vdc.perm, "vdc", "write to unused register %d (%04x)", reg, v)
	}
}

// dma copies dmaLen words from the source to the destination address. the
// direction of each address is set by the DMA control register.
func (vdc *VDC) dma() {
	srcIncr := uint16(1)
	if vdc.DMAControl.SrcDecrement {
		srcIncr = 0xffff
	}
	destIncr := uint16(1)
	if vdc.DMAControl.DestDecrement {
		destIncr = 0xffff
	}

	vdc.log.Logf(vdc.perm, "vdc", "dma %04x -> %04x (%d words)", vdc.dmaSrc, vdc.dmaDest, vdc.dmaLen)

	src := vdc.dmaSrc
	dest := vdc.dmaDest
	for i := 0; i < int(vdc.dmaLen); i++ {
		vdc.vram[dest&vramMask] = vdc.vram[src&vramMask]
		src += srcIncr
		dest += destIncr
	}
}

// Dump writes the screen registers to the io.Writer.
func (vdc *VDC) Dump(w io.Writer) {
	g := vdc.Geometry
	io.WriteString(w, fmt.Sprintf("VDC\nRCR %4d BXR %4d BYR %4d MWR %4dx%4d\n", g.RCR, g.BXR, g.BYR, g.MWRWidth, g.MWRHeight))
	io.WriteString(w, fmt.Sprintf("HSR %4d/ %4d HDR %4d/ %4d VPR %4d/ %4d VDW %4d VCR %4d\n",
		g.HSRStart, g.HSRWidth, g.HDREnd, g.HDRWidth, g.VPRStart, g.VPRWidth, g.VDW, g.VCR))
}
