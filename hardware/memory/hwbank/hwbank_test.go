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

package hwbank_test

import (
	"testing"

	"github.com/gopherpce/gopherpce/hardware/memory/hwbank"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/test"
)

// mockPort records the most recent access
type mockPort struct {
	readPort  uint16
	writePort uint16
	data      uint8
	reads     int
	writes    int
	acks      int
	vdcAcks   int
}

func (m *mockPort) Read(port uint16) uint8 {
	m.readPort = port
	m.reads++
	return 0x5a
}

func (m *mockPort) Write(port uint16, data uint8) {
	m.writePort = port
	m.data = data
	m.writes++
}

func (m *mockPort) Acknowledge() {
	m.acks++
}

func (m *mockPort) AcknowledgeVDC() {
	m.vdcAcks++
}

func newRouter() (*hwbank.Router, map[string]*mockPort) {
	hw := hwbank.NewRouter(logger.NewLogger(10), logger.Allow)
	m := map[string]*mockPort{
		"vdc": {}, "pal": {}, "psg": {}, "timer": {}, "pad": {}, "irq": {},
	}
	hw.VDC = m["vdc"]
	hw.Palette = m["pal"]
	hw.PSG = m["psg"]
	hw.Timer = m["timer"]
	hw.GamePad = m["pad"]
	hw.IRQ = m["irq"]
	return hw, m
}

func TestRouting(t *testing.T) {
	hw, m := newRouter()

	hw.Write(0x0003, 0x11)
	test.ExpectEquality(t, m["vdc"].writePort, 3)
	test.ExpectEquality(t, m["vdc"].data, 0x11)

	// 0x0001 is not a VDC port
	hw.Write(0x0001, 0x11)
	test.ExpectEquality(t, m["vdc"].writes, 1)

	hw.Write(0x0405, 0x22)
	test.ExpectEquality(t, m["pal"].writePort, 5)

	hw.Write(0x0809, 0x33)
	test.ExpectEquality(t, m["psg"].writePort, 9)
	hw.Write(0x080a, 0x33)
	test.ExpectEquality(t, m["psg"].writes, 1)

	hw.Write(0x0c01, 0x01)
	test.ExpectEquality(t, m["timer"].writePort, 1)

	hw.Write(0x1000, 0x01)
	test.ExpectEquality(t, m["pad"].writePort, 0)

	test.ExpectEquality(t, hw.Read(0x1000), 0x5a)
	test.ExpectEquality(t, hw.Read(0x0c00), 0x5a)
	test.ExpectEquality(t, hw.Read(0x0802), 0x5a)
	test.ExpectEquality(t, m["psg"].readPort, 2)
	test.ExpectEquality(t, hw.Read(0x0002), 0x5a)
	test.ExpectEquality(t, m["vdc"].readPort, 2)

	// unmapped
	test.ExpectEquality(t, hw.Read(0x1800), 0)
}

func TestInterruptStatusAcknowledgesTimer(t *testing.T) {
	hw, m := newRouter()

	hw.Write(0x1402, 0x07)
	test.ExpectEquality(t, m["irq"].writePort, 2)
	test.ExpectEquality(t, m["timer"].acks, 0)

	hw.Write(0x1403, 0x00)
	test.ExpectEquality(t, m["irq"].writePort, 3)
	test.ExpectEquality(t, m["timer"].acks, 1)

	hw.Read(0x1403)
	test.ExpectEquality(t, m["irq"].readPort, 3)
}

func TestVDCStatusAcknowledgesIRQ1(t *testing.T) {
	hw, m := newRouter()

	test.ExpectEquality(t, hw.Read(0x0002), 0x5a)
	test.ExpectEquality(t, m["irq"].vdcAcks, 0)

	test.ExpectEquality(t, hw.Read(0x0000), 0x5a)
	test.ExpectEquality(t, m["vdc"].readPort, 0)
	test.ExpectEquality(t, m["irq"].vdcAcks, 1)

	// writing to the status register offset is a register select and does
	// not acknowledge anything
	hw.Write(0x0000, 0x05)
	test.ExpectEquality(t, m["irq"].vdcAcks, 1)
}
