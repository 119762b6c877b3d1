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

// Package ram implements the 8KB work RAM of the console.
package ram

import (
	"fmt"
	"io"
	"strings"
)

// Size of the work RAM.
const Size = 0x2000

// RAM is the work RAM. Addresses are masked to the size of the RAM.
type RAM struct {
	data [Size]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Len returns the size of the RAM.
func (r *RAM) Len() int {
	return Size
}

// Reset clears the contents of RAM.
func (r *RAM) Reset() {
	clear(r.data[:])
}

// Read a value from RAM.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address&(Size-1)]
}

// Write a value to RAM.
func (r *RAM) Write(address uint16, data uint8) {
	r.data[address&(Size-1)] = data
}

// Peek is an alias for Read. There are no side effects of reading RAM.
func (r *RAM) Peek(address uint16) uint8 {
	return r.Read(address)
}

// Poke is an alias for Write.
func (r *RAM) Poke(address uint16, data uint8) {
	r.Write(address, data)
}

func (r *RAM) String() string {
	s := &strings.Builder{}
	r.Dump(s)
	return s.String()
}

// Dump writes a hex dump of the RAM to io.Writer. Rows that are entirely zero
// are skipped.
func (r *RAM) Dump(w io.Writer) {
	for i := 0; i < Size; i += 16 {
		row := r.data[i : i+16]
		zero := true
		for _, v := range row {
			if v != 0 {
				zero = false
				break
			}
		}
		if zero {
			continue
		}
		fmt.Fprintf(w, "%04x", i)
		for _, v := range row {
			fmt.Fprintf(w, " %02x", v)
		}
		fmt.Fprintln(w)
	}
}
