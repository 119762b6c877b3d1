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

// Package hwbank implements the hardware page. The hardware page is the
// physical bank 0xff and it routes accesses to the peripheral chips.
//
//	0x0000, 0x0002, 0x0003   video display controller
//	0x0400 - 0x0407          palette (colour table)
//	0x0800 - 0x0809          sound generator
//	0x0c00 - 0x0c01          timer
//	0x1000                   gamepad
//	0x1402 - 0x1403          interrupt mask and status
//
// All other offsets read zero and ignore writes.
package hwbank

import (
	"github.com/gopherpce/gopherpce/logger"
)

// Port is implemented by all peripherals reachable through the hardware page.
// The port argument is the offset of the access masked to the size of the
// peripheral's register window.
type Port interface {
	Read(port uint16) uint8
	Write(port uint16, data uint8)
}

// Timer is a Port with the additional ability to have its interrupt
// acknowledged. Writing to the interrupt status register acknowledges the
// timer interrupt.
type Timer interface {
	Port
	Acknowledge()
}

// Interrupts is the interrupt controller as seen by the hardware page.
// Reading the VDC status register acknowledges the VDC interrupt.
type Interrupts interface {
	Port
	AcknowledgeVDC()
}

// Router maps hardware page offsets to peripherals.
type Router struct {
	log  *logger.Logger
	perm logger.Permission

	VDC     Port
	Palette Port
	PSG     Port
	Timer   Timer
	GamePad Port
	IRQ     Interrupts
}

// NewRouter is the preferred method of initialisation for the Router type.
func NewRouter(log *logger.Logger, perm logger.Permission) *Router {
	return &Router{
		log:  log,
		perm: perm,
	}
}

// Read routes a read from the hardware page.
func (hw *Router) Read(offset uint16) uint8 {
	switch {
	case offset == 0x0000:
		v := hw.VDC.Read(0)
		hw.IRQ.AcknowledgeVDC()
		return v
	case offset == 0x0002 || offset == 0x0003:
		return hw.VDC.Read(offset & 0x03)
	case offset >= 0x0400 && offset <= 0x0407:
		return hw.Palette.Read(offset & 0x07)
	case offset >= 0x0800 && offset <= 0x0809:
		return hw.PSG.Read(offset & 0x0f)
	case offset == 0x0c00 || offset == 0x0c01:
		return hw.Timer.Read(offset & 0x03)
	case offset == 0x1000:
		return hw.GamePad.Read(0)
	case offset == 0x1402 || offset == 0x1403:
		return hw.IRQ.Read(offset & 0x0f)
	}
	hw.log.Logf(hw.perm, "hardware", "read from unmapped offset %04x", offset)
	return 0
}

// Write routes a write to the hardware page.
func (hw *Router) Write(offset uint16, data uint8) {
	switch {
	case offset == 0x0000 || offset == 0x0002 || offset == 0x0003:
		hw.VDC.Write(offset&0x03, data)
	case offset >= 0x0400 && offset <= 0x0407:
		hw.Palette.Write(offset&0x07, data)
	case offset >= 0x0800 && offset <= 0x0809:
		hw.PSG.Write(offset&0x0f, data)
	case offset == 0x0c00 || offset == 0x0c01:
		hw.Timer.Write(offset&0x03, data)
	case offset == 0x1000:
		hw.GamePad.Write(0, data)
	case offset == 0x1402 || offset == 0x1403:
		hw.IRQ.Write(offset&0x03, data)
		if offset == 0x1403 {
			hw.Timer.Acknowledge()
		}
	default:
		hw.log.Logf(hw.perm, "hardware", "write to unmapped offset %04x (%02x)", offset, data)
	}
}
