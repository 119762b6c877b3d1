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

// Package irq implements the interrupt mask and status registers of the
// HuC6280.
//
// There are three maskable interrupt lines: IRQ2, IRQ1 (the video display
// controller) and the timer. A set bit in the mask disables the line.
package irq

import (
	"fmt"

	"github.com/gopherpce/gopherpce/logger"
)

// Line identifies an interrupt line. The value is the bit used in the mask and
// status registers.
type Line uint8

// List of valid Line values.
const (
	IRQ2  Line = 0x01
	IRQ1  Line = 0x02
	Timer Line = 0x04
)

func (l Line) String() string {
	switch l {
	case IRQ2:
		return "IRQ2"
	case IRQ1:
		return "IRQ1"
	case Timer:
		return "TIMER"
	}
	return "unknown"
}

// Mask is the interrupt controller. Port 2 is the mask (control) register and
// port 3 is the status (pending) register.
type Mask struct {
	log  *logger.Logger
	perm logger.Permission

	mask    uint8
	pending uint8
}

// NewMask is the preferred method of initialisation for the Mask type.
func NewMask(log *logger.Logger, perm logger.Permission) *Mask {
	return &Mask{
		log:  log,
		perm: perm,
	}
}

// Reset the interrupt controller.
func (m *Mask) Reset() {
	m.mask = 0
	m.pending = 0
}

func (m *Mask) String() string {
	return fmt.Sprintf("mask=%03b pending=%03b", m.mask, m.pending)
}

// Read implements the hwbank.Port interface.
func (m *Mask) Read(port uint16) uint8 {
	switch port {
	case 2:
		return m.mask
	case 3:
		return m.pending
	}
	return 0
}

// Write implements the hwbank.Port interface. Writing to the status register
// acknowledges the timer interrupt.
func (m *Mask) Write(port uint16, data uint8) {
	switch port {
	case 2:
		m.mask = data & 0x07
		m.log.Logf(m.perm, "irq", "irq2=%d irq1=%d timer=%d", m.mask&0x01, (m.mask&0x02)>>1, (m.mask&0x04)>>2)
	case 3:
		m.Acknowledge(Timer)
	}
}

// Disabled returns true if the interrupt line is masked.
func (m *Mask) Disabled(line Line) bool {
	return m.mask&uint8(line) != 0
}

// Raise sets the pending bit for the line.
func (m *Mask) Raise(line Line) {
	m.pending |= uint8(line)
}

// Acknowledge clears the pending bit for the line.
func (m *Mask) Acknowledge(line Line) {
	m.pending &^= uint8(line)
}

// AcknowledgeVDC clears the pending bit of the IRQ1 line. Implements the
// hwbank.Interrupts interface.
func (m *Mask) AcknowledgeVDC() {
	m.Acknowledge(IRQ1)
}

// Pending returns true if the pending bit for the line is set.
func (m *Mask) Pending(line Line) bool {
	return m.pending&uint8(line) != 0
}
