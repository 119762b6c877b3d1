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
	"github.com/gopherpce/gopherpce/hardware/preferences"
	"github.com/gopherpce/gopherpce/logger"
)

// VRAMSize is the number of 16 bit words in video memory.
const VRAMSize = 0x8000

const vramMask = VRAMSize - 1

// Dimensions of the palette index bitmap. The largest virtual screen is
// 128x64 tiles.
const (
	BitmapWidth  = 1024
	BitmapHeight = 512
	BitmapSize   = BitmapWidth * BitmapHeight
)

// FrameLength is the number of CPU cycles between each vertical sync.
const FrameLength = 3579545 * 2 / 60

// VDC is the video display controller.
type VDC struct {
	log   *logger.Logger
	perm  logger.Permission
	prefs *preferences.Preferences

	vram [VRAMSize]uint16

	// register selected by a write to port 0
	selected uint8

	latchLo [NumRegisters]uint8
	latchHi [NumRegisters]uint8

	writeAddr uint16
	readAddr  uint16

	Status     Status
	Control    Control
	Geometry   Geometry
	DMAControl DMAControl

	dmaSrc   uint16
	dmaDest  uint16
	dmaLen   uint16
	satbAddr uint16

	sprites [NumSprites]Sprite
	bitmap  [BitmapSize]uint16

	vsyncCounter int

	// number of decodes still to skip before the next bitmap is drawn
	skipLeft int

	// number of times the bitmap has been drawn
	frames int
}

// NewVDC is the preferred method of initialisation for the VDC type.
func NewVDC(log *logger.Logger, prefs *preferences.Preferences) *VDC {
	vdc := &VDC{
		log:   log,
		perm:  &prefs.Trace.VDC,
		prefs: prefs,
	}
	vdc.Reset()
	return vdc
}

// Reset the VDC. Video memory and the bitmap are cleared.
func (vdc *VDC) Reset() {
	clear(vdc.vram[:])
	clear(vdc.latchLo[:])
	clear(vdc.latchHi[:])
	clear(vdc.sprites[:])
	clear(vdc.bitmap[:])

	vdc.selected = 0
	vdc.writeAddr = 0
	vdc.readAddr = 0
	vdc.Status = Status{}
	vdc.Control = Control{
		Increment: uint16(vdc.prefs.VRAMIncrementReset.Get().(int)),
	}
	vdc.Geometry = Geometry{
		MWRWidth:  mwrSizes[0][0],
		MWRHeight: mwrSizes[0][1],
	}
	vdc.DMAControl = DMAControl{}
	vdc.dmaSrc = 0
	vdc.dmaDest = 0
	vdc.dmaLen = 0
	vdc.satbAddr = 0
	vdc.vsyncCounter = 0
	vdc.skipLeft = 0
	vdc.frames = 0
}

// Read implements the hwbank.Port interface.
func (vdc *VDC) Read(port uint16) uint8 {
	switch port {
	case 0:
		v := vdc.Status.Value()
		vdc.Status.VBlank = false
		vdc.Status.HBlank = false
		vdc.Status.SATB = false
		vdc.Status.VDMA = false
		vdc.log.Logf(vdc.perm, "vdc", "status read %02x", v)
		return v
	case 2:
		return uint8(vdc.vram[vdc.readAddr])
	case 3:
		v := vdc.vram[vdc.readAddr]
		vdc.log.Logf(vdc.perm, "vdc", "vram read %04x @ %04x", v, vdc.readAddr)
		vdc.readAddr = (vdc.readAddr + vdc.Control.Increment) & vramMask
		return uint8(v >> 8)
	}
	return 0
}

// Write implements the hwbank.Port and cpubus.VideoPorts interfaces.
func (vdc *VDC) Write(port uint16, data uint8) {
	switch port {
	case 0:
		vdc.selected = data & 0x1f
		if vdc.selected >= NumRegisters {
			vdc.log.Logf(vdc.perm, "vdc", "selected unused register %d", vdc.selected)
		}
	case 2:
		if vdc.selected >= NumRegisters {
			return
		}
		vdc.latchLo[vdc.selected] = data
		if vdc.selected != regVRAMData && vdc.selected != regDMALength {
			vdc.commit(false)
		}
	case 3:
		if vdc.selected >= NumRegisters {
			return
		}
		vdc.latchHi[vdc.selected] = data
		vdc.commit(true)
	}
}

// VSyncCount advances the vertical sync counter by the number of cycles.
// Returns true if a vertical sync occurred. The VBlank, SATB and VDMA status
// bits are set on vertical sync.
func (vdc *VDC) VSyncCount(cycles int) bool {
	vdc.vsyncCounter += cycles
	if vdc.vsyncCounter >= FrameLength {
		vdc.vsyncCounter -= FrameLength
		vdc.Status.VBlank = true
		vdc.Status.SATB = true
		vdc.Status.VDMA = true
		return true
	}
	return false
}

// SetVBlank sets the VBlank status bit.
func (vdc *VDC) SetVBlank() {
	vdc.Status.VBlank = true
}

// WriteAddress returns the current VRAM write pointer.
func (vdc *VDC) WriteAddress() uint16 {
	return vdc.writeAddr
}

// ReadAddress returns the current VRAM read pointer.
func (vdc *VDC) ReadAddress() uint16 {
	return vdc.readAddr
}

// Selected returns the register index selected by the last write to port 0.
func (vdc *VDC) Selected() uint8 {
	return vdc.selected
}

// Peek returns the word in video memory without side effect.
func (vdc *VDC) Peek(addr uint16) uint16 {
	return vdc.vram[addr&vramMask]
}

// Poke writes a word to video memory without side effect.
func (vdc *VDC) Poke(addr uint16, data uint16) {
	vdc.vram[addr&vramMask] = data
}

// SATB returns the sprite list as it was decoded by the most recent call to
// Decode().
func (vdc *VDC) SATB() [NumSprites]Sprite {
	return vdc.sprites
}

// Frames returns the number of times the bitmap has been drawn.
func (vdc *VDC) Frames() int {
	return vdc.frames
}
