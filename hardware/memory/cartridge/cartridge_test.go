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

package cartridge_test

import (
	"strings"
	"testing"

	"github.com/gopherpce/gopherpce/hardware/memory/cartridge"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/test"
)

func TestEjected(t *testing.T) {
	log := logger.NewLogger(10)
	rom := cartridge.NewROM(log, logger.Allow)
	test.ExpectSuccess(t, rom.IsEjected())
	test.ExpectEquality(t, rom.Read(0), 0)

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "rom: ROM not loaded\n")
}

func TestHeaderSkip(t *testing.T) {
	rom := cartridge.NewROM(logger.NewLogger(10), logger.Allow)

	// an image with a 512 byte header
	data := make([]uint8, 0x2000+512)
	data[512] = 0x12
	data[513] = 0x34
	rom.Attach(data)

	test.ExpectFailure(t, rom.IsEjected())
	test.ExpectEquality(t, rom.HeaderSize(), 512)
	test.ExpectEquality(t, rom.Read(0), 0x12)
	test.ExpectEquality(t, rom.Read(1), 0x34)
	test.ExpectEquality(t, len(rom.Hash()), 40)

	// image without header
	data = make([]uint8, 0x2000)
	data[0] = 0x56
	rom.Attach(data)
	test.ExpectEquality(t, rom.HeaderSize(), 0)
	test.ExpectEquality(t, rom.Read(0), 0x56)

	// beyond the end of the image
	test.ExpectEquality(t, rom.Read(0x2000), 0)
	_, ok := rom.Peek(0x2000)
	test.ExpectFailure(t, ok)

	rom.Eject()
	test.ExpectSuccess(t, rom.IsEjected())
}
