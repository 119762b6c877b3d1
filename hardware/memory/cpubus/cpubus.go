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

// Package cpubus defines the interfaces through which the CPU sees the rest
// of the console.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are logical addresses and are translated to physical banks by
// the memory page registers.
//
// Errors wrapping the AddressError pattern are not fatal. The CPU records them
// and continues.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error

	// access to the memory page registers for the TAM and TMA instructions
	MPR(segment int) uint8
	SetMPR(segment int, bank uint8)
}

// VideoPorts is the direct connection between the CPU and the video display
// controller used by the ST0, ST1 and ST2 instructions.
type VideoPorts interface {
	Write(port uint16, data uint8)
}

// AddressError is the pattern for errors caused by accessing an address that
// is not backed by anything (or is backed by something read-only).
const AddressError = "address error: %v"
