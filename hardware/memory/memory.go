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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/hardware/memory/cartridge"
	"github.com/gopherpce/gopherpce/hardware/memory/cpubus"
	"github.com/gopherpce/gopherpce/hardware/memory/hwbank"
	"github.com/gopherpce/gopherpce/hardware/memory/memorymap"
	"github.com/gopherpce/gopherpce/hardware/memory/ram"
	"github.com/gopherpce/gopherpce/logger"
)

// Sentinel error patterns.
const (
	IllegalBank = "illegal access of bank %02x (%s)"
	ROMWrite    = "write to ROM bank %02x"
)

// Map is the memory map of the console.
type Map struct {
	log *logger.Logger

	ROM *cartridge.ROM
	RAM *ram.RAM
	HW  *hwbank.Router

	mpr [memorymap.NumSegments]uint8

	err bool
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap(log *logger.Logger, rom *cartridge.ROM, ram *ram.RAM, hw *hwbank.Router) *Map {
	mem := &Map{
		log: log,
		ROM: rom,
		RAM: ram,
		HW:  hw,
	}
	mem.Reset()
	return mem
}

// Reset the memory page registers to the boot bank table.
func (mem *Map) Reset() {
	mem.mpr = memorymap.BootBanks
}

// MPR returns the bank mapped to the segment. Implements the cpubus.Memory
// interface.
func (mem *Map) MPR(segment int) uint8 {
	return mem.mpr[segment&(memorymap.NumSegments-1)]
}

// SetMPR maps a bank to the segment. Implements the cpubus.Memory interface.
func (mem *Map) SetMPR(segment int, bank uint8) {
	mem.mpr[segment&(memorymap.NumSegments-1)] = bank
}

// Error returns true if an illegal memory access has occurred since the last
// call to ClearError().
func (mem *Map) Error() bool {
	return mem.err
}

// ClearError resets the error flag.
func (mem *Map) ClearError() {
	mem.err = false
}

// illegal sets the error flag, logs the problem and returns an error suitable
// for returning to the CPU.
func (mem *Map) illegal(pattern string, values ...any) error {
	mem.err = true
	err := curated.Errorf(pattern, values...)
	mem.log.Log(logger.Allow, "memory", err)
	return curated.Errorf(cpubus.AddressError, err)
}

// Read implements the cpubus.Memory interface.
func (mem *Map) Read(address uint16) (uint8, error) {
	bank := mem.mpr[memorymap.Segment(address)]
	offset := memorymap.Offset(address)

	switch memorymap.MapBank(bank) {
	case memorymap.ROM:
		return mem.ROM.Read(memorymap.ROMAddress(bank, offset)), nil
	case memorymap.Battery:
		return 0, nil
	case memorymap.RAM:
		return mem.RAM.Read(offset), nil
	case memorymap.Hardware:
		return mem.HW.Read(offset), nil
	}

	return 0, mem.illegal(IllegalBank, bank, "read")
}

// Write implements the cpubus.Memory interface.
func (mem *Map) Write(address uint16, data uint8) error {
	bank := mem.mpr[memorymap.Segment(address)]
	offset := memorymap.Offset(address)

	switch memorymap.MapBank(bank) {
	case memorymap.ROM:
		return mem.illegal(ROMWrite, bank)
	case memorymap.Battery:
		// battery backed RAM is not emulated. writes are dropped
		return nil
	case memorymap.RAM:
		mem.RAM.Write(offset, data)
		return nil
	case memorymap.Hardware:
		mem.HW.Write(offset, data)
		return nil
	}

	return mem.illegal(IllegalBank, bank, "write")
}

// Peek returns the value at the logical address without side effects. The
// hardware page and unmapped banks peek as zero.
func (mem *Map) Peek(address uint16) uint8 {
	bank := mem.mpr[memorymap.Segment(address)]
	offset := memorymap.Offset(address)

	switch memorymap.MapBank(bank) {
	case memorymap.ROM:
		v, _ := mem.ROM.Peek(memorymap.ROMAddress(bank, offset))
		return v
	case memorymap.RAM:
		return mem.RAM.Peek(offset)
	}
	return 0
}

// Poke writes to RAM without side effects. Returns false if the logical
// address is not mapped to RAM.
func (mem *Map) Poke(address uint16, data uint8) bool {
	bank := mem.mpr[memorymap.Segment(address)]
	if memorymap.MapBank(bank) != memorymap.RAM {
		return false
	}
	mem.RAM.Poke(memorymap.Offset(address), data)
	return true
}

// String returns the memory page registers.
func (mem *Map) String() string {
	s := strings.Builder{}
	s.WriteString("MPR")
	for _, b := range mem.mpr {
		s.WriteString(fmt.Sprintf(" %02x", b))
	}
	return s.String()
}

// Dump writes the sizes of ROM and RAM, the memory page registers and a hex
// dump of length bytes starting at the logical address. The dump peeks so the
// state of the console is unchanged. The hardware page dumps as zero.
func (mem *Map) Dump(w io.Writer, address uint16, length int) {
	fmt.Fprintf(w, "Rom Size:%08x Ram size: %04x\n", mem.ROM.Size(), mem.RAM.Len())
	fmt.Fprintf(w, "%s\nMem\n", mem.String())

	a := address
	for i := 0; i < length; i++ {
		if i%16 == 0 {
			fmt.Fprintf(w, "\n%04x", a)
		}
		fmt.Fprintf(w, " %02x", mem.Peek(a))
		a++
	}
	fmt.Fprintln(w)
}
