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

package memorymap

// Segment geometry.
const (
	NumSegments  = 8
	SegmentSize  = 0x2000
	SegmentMask  = uint16(SegmentSize - 1)
	SegmentShift = 13
)

// Physical bank numbers.
const (
	MaxROMBank   = uint8(0x7f)
	BankBattery  = uint8(0xf7)
	BankRAM      = uint8(0xf8)
	BankHardware = uint8(0xff)
)

// Logical addresses of the zero page and of the stack. Both live in the
// segment that the boot bank table maps to RAM.
const (
	ZeroPage = uint16(0x2000)
	Stack    = uint16(0x2100)
)

// Interrupt vectors. Each vector is a little-endian address.
const (
	Reset = uint16(0xfffe)
	NMI   = uint16(0xfffc)
	Timer = uint16(0xfffa)
	IRQ1  = uint16(0xfff8)
	IRQ2  = uint16(0xfff6)
)

// BootBanks is the content of the memory page registers at power on. Segment
// 0 is the hardware page, segment 1 is RAM and all other segments see the
// first ROM bank. Segment 7 therefore contains the interrupt vectors of the
// first ROM bank.
var BootBanks = [NumSegments]uint8{BankHardware, BankRAM, 0, 0, 0, 0, 0, 0}

// Segment returns the segment number of a logical address.
func Segment(address uint16) int {
	return int(address>>SegmentShift) & (NumSegments - 1)
}

// Offset returns the offset of a logical address within its segment.
func Offset(address uint16) uint16 {
	return address & SegmentMask
}

// Area represents the different kinds of physical bank.
type Area int

// List of valid Area values.
const (
	Unmapped Area = iota
	ROM
	Battery
	RAM
	Hardware
)

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case Battery:
		return "Battery"
	case RAM:
		return "RAM"
	case Hardware:
		return "Hardware"
	}
	return "Unmapped"
}

// MapBank returns the area of a physical bank.
func MapBank(bank uint8) Area {
	switch {
	case bank <= MaxROMBank:
		return ROM
	case bank == BankBattery:
		return Battery
	case bank == BankRAM:
		return RAM
	case bank == BankHardware:
		return Hardware
	}
	return Unmapped
}

// ROMAddress returns the address in the ROM image of an offset in a ROM
// bank.
func ROMAddress(bank uint8, offset uint16) int {
	return int(bank)*SegmentSize + int(offset)
}
