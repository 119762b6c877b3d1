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

// Package cartridge implements the ROM card. The ROM is a read-only image
// addressed in physical space, that is bank*0x2000+offset.
package cartridge

import (
	"crypto/sha1"
	"fmt"

	"github.com/gopherpce/gopherpce/logger"
)

// some images are dumped with a header in front of the ROM data. the size of
// the header is the remainder of the image size modulo 4KB.
const headerMask = 0x0fff

// ROM is the read only memory of the card.
type ROM struct {
	log  *logger.Logger
	perm logger.Permission

	data   []uint8
	offset int
	hash   string
}

// NewROM is the preferred method of initialisation for the ROM type.
func NewROM(log *logger.Logger, perm logger.Permission) *ROM {
	return &ROM{
		log:  log,
		perm: perm,
	}
}

func (r *ROM) String() string {
	if r.IsEjected() {
		return "ejected"
	}
	return fmt.Sprintf("%d bytes (header %d) %s", len(r.data), r.offset, r.hash)
}

// Attach an image to the ROM. The image is copied.
func (r *ROM) Attach(data []uint8) {
	r.data = make([]uint8, len(data))
	copy(r.data, data)
	r.offset = len(data) & headerMask
	r.hash = fmt.Sprintf("%x", sha1.Sum(data))
}

// Eject removes the image.
func (r *ROM) Eject() {
	r.data = nil
	r.offset = 0
	r.hash = ""
}

// IsEjected returns true if there is no image attached.
func (r *ROM) IsEjected() bool {
	return r.data == nil
}

// Size returns the size of the attached image, including any header.
func (r *ROM) Size() int {
	return len(r.data)
}

// HeaderSize returns the number of bytes skipped at the start of the image.
func (r *ROM) HeaderSize() int {
	return r.offset
}

// Hash returns the sha1 hash of the attached image.
func (r *ROM) Hash() string {
	return r.hash
}

// Read a value from the physical ROM address. Reading when no image is attached
// or beyond the end of the image returns zero.
func (r *ROM) Read(address int) uint8 {
	if r.IsEjected() {
		r.log.Log(logger.Allow, "rom", "ROM not loaded")
		return 0
	}
	v, ok := r.Peek(address)
	if !ok {
		r.log.Logf(r.perm, "rom", "read beyond end of image (%06x)", address)
	}
	return v
}

// Peek returns the value at the physical ROM address without side effects.
func (r *ROM) Peek(address int) (uint8, bool) {
	idx := address + r.offset
	if idx < 0 || idx >= len(r.data) {
		return 0, false
	}
	return r.data[idx], true
}
