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

// Package timer implements the programmable timer of the HuC6280.
//
// The timer counts CPU cycles. When the count exceeds 1023 times the period
// the timer fires and the count is reduced by the same amount. A period of
// zero is treated as a period of one.
package timer

import (
	"fmt"

	"github.com/gopherpce/gopherpce/logger"
)

// cycles counted for each unit of the period.
const periodUnit = 1023

// Timer is the timer peripheral. It is addressed through two ports. Port 0 is
// the period (7 bits) and port 1 is the enable bit.
type Timer struct {
	log  *logger.Logger
	perm logger.Permission

	period  uint8
	enable  uint8
	counter int
	max     int

	// set when the timer fires. cleared by Acknowledge()
	pending bool
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(log *logger.Logger, perm logger.Permission) *Timer {
	tmr := &Timer{
		log:  log,
		perm: perm,
	}
	tmr.Reset()
	return tmr
}

// Reset the timer to its power on state.
func (tmr *Timer) Reset() {
	tmr.period = 0
	tmr.enable = 0
	tmr.counter = 0
	tmr.max = periodUnit
	tmr.pending = false
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("period=%d enable=%d counter=%d/%d pending=%v", tmr.period, tmr.enable, tmr.counter, tmr.max, tmr.pending)
}

// Read implements the hwbank.Port interface.
func (tmr *Timer) Read(port uint16) uint8 {
	switch port {
	case 0:
		return tmr.period
	case 1:
		return tmr.enable
	}
	return 0
}

// Write implements the hwbank.Port interface.
func (tmr *Timer) Write(port uint16, data uint8) {
	switch port {
	case 0:
		tmr.period = data & 0x7f
		tmr.max = periodUnit * int(tmr.period)
		if tmr.max == 0 {
			tmr.max = periodUnit
		}
		tmr.log.Logf(tmr.perm, "timer", "period=%d", tmr.period)
	case 1:
		tmr.enable = data & 0x01
		tmr.log.Logf(tmr.perm, "timer", "enable=%d", tmr.enable)
	}
}

// Step advances the timer by the number of cycles. Returns true if the timer
// fired during this step.
func (tmr *Timer) Step(cycles int) bool {
	if tmr.enable == 0 {
		return false
	}

	tmr.counter += cycles
	if tmr.counter > tmr.max {
		tmr.counter -= tmr.max
		tmr.pending = true
		return true
	}

	return false
}

// Pending returns true if the timer has fired and not yet been acknowledged.
func (tmr *Timer) Pending() bool {
	return tmr.pending
}

// Acknowledge the timer interrupt. Implements the hwbank.Timer interface.
func (tmr *Timer) Acknowledge() {
	tmr.pending = false
}

// Counter returns the current count.
func (tmr *Timer) Counter() int {
	return tmr.counter
}

// Max returns the count at which the timer fires.
func (tmr *Timer) Max() int {
	return tmr.max
}
