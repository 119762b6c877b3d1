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

package hardware_test

import (
	"strings"
	"testing"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/hardware"
	"github.com/gopherpce/gopherpce/hardware/gamepad"
	"github.com/gopherpce/gopherpce/hardware/irq"
	"github.com/gopherpce/gopherpce/hardware/memory/memorymap"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/test"
)

// the boot bank table maps bank zero of the ROM to the last segment
const origin = 0xe000

func newImage() []uint8 {
	return make([]uint8, memorymap.SegmentSize)
}

func put(img []uint8, address uint16, bytes ...uint8) {
	copy(img[address-origin:], bytes)
}

func vector(img []uint8, vec uint16, address uint16) {
	put(img, vec, uint8(address), uint8(address>>8))
}

func newSystem(t *testing.T, img []uint8) *hardware.System {
	t.Helper()
	sys := hardware.NewSystem(nil, logger.NewLogger(100))
	if img != nil {
		test.DemandSuccess(t, sys.Load(img))
	}
	return sys
}

func TestLoad(t *testing.T) {
	sys := newSystem(t, nil)
	test.ExpectEquality(t, sys.IsReady(), false)
	test.ExpectFailure(t, sys.Run(1))
	test.ExpectFailure(t, sys.Load([]uint8{}))

	img := newImage()
	vector(img, memorymap.Reset, 0xe010)
	test.ExpectSuccess(t, sys.Load(img))
	test.ExpectEquality(t, sys.IsReady(), true)
	test.ExpectEquality(t, sys.CPU.PC.Address(), uint16(0xe010))

	sys.Unload()
	test.ExpectEquality(t, sys.IsReady(), false)
}

func TestLoadPreservesRAM(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, 0xe010)
	sys := newSystem(t, img)

	sys.RAM.Poke(0x0100, 0x5a)
	sys.CPU.A.Load(0x33)
	sys.Mem.SetMPR(2, 0x01)

	vector(img, memorymap.Reset, 0xe020)
	test.ExpectSuccess(t, sys.Load(img))
	test.ExpectEquality(t, sys.CPU.PC.Address(), uint16(0xe020))
	test.ExpectEquality(t, sys.CPU.A.Value(), uint8(0x00))
	test.ExpectEquality(t, sys.Mem.MPR(2), memorymap.BootBanks[2])
	test.ExpectEquality(t, sys.RAM.Peek(0x0100), uint8(0x5a))

	// a full reset clears RAM
	sys.Reset()
	test.ExpectEquality(t, sys.RAM.Peek(0x0100), uint8(0x00))
}

func TestRun(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)

	// LDA #$42; STA $2000; JMP $e005
	put(img, origin, 0xa9, 0x42, 0x8d, 0x00, 0x20, 0x4c, 0x05, 0xe0)

	sys := newSystem(t, img)
	test.ExpectSuccess(t, sys.Run(1))
	test.ExpectEquality(t, sys.RAM.Peek(0x0000), uint8(0x42))
	test.ExpectEquality(t, sys.CPU.Idle(), true)
	test.ExpectEquality(t, sys.Error(), false)
}

func TestVSyncInterrupt(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)
	vector(img, memorymap.IRQ1, 0xe100)

	// JMP $e000
	put(img, origin, 0x4c, 0x00, 0xe0)

	// INC $2001; RTI
	put(img, 0xe100, 0xee, 0x01, 0x20, 0x40)

	sys := newSystem(t, img)
	test.ExpectSuccess(t, sys.Run(20))
	test.ExpectEquality(t, sys.Frames(), 1)
	test.ExpectEquality(t, sys.RAM.Peek(0x0001), uint8(1))
	test.ExpectEquality(t, sys.VDC.Status.VBlank, true)

	// SEI; JMP $e001
	put(img, origin, 0x78, 0x4c, 0x01, 0xe0)
	sys = newSystem(t, img)
	test.ExpectSuccess(t, sys.Run(20))
	test.ExpectEquality(t, sys.Frames(), 1)
	test.ExpectEquality(t, sys.RAM.Peek(0x0001), uint8(0))
}

func TestVSyncAcknowledge(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)
	vector(img, memorymap.IRQ1, 0xe100)

	// JMP $e000
	put(img, origin, 0x4c, 0x00, 0xe0)

	// INC $2001; RTI
	put(img, 0xe100, 0xee, 0x01, 0x20, 0x40)

	// the handler does not read the VDC status so IRQ1 remains pending
	sys := newSystem(t, img)
	test.ExpectSuccess(t, sys.Run(20))
	test.ExpectEquality(t, sys.Frames(), 1)
	v, err := sys.Mem.Read(0x1403)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x02))

	// LDA $0000; RTI
	put(img, 0xe100, 0xad, 0x00, 0x00, 0x40)

	sys = newSystem(t, img)
	test.ExpectSuccess(t, sys.Run(20))
	test.ExpectEquality(t, sys.Frames(), 1)
	test.ExpectEquality(t, sys.CPU.A.Value()&0x20, uint8(0x20))
	v, err = sys.Mem.Read(0x1403)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))
	test.ExpectEquality(t, sys.IRQ.Pending(irq.IRQ1), false)
}

func TestTimerInterrupt(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)
	vector(img, memorymap.Timer, 0xe100)

	// mask the vsync interrupt and start the timer with the shortest period
	put(img, origin,
		0xa9, 0x02,       // LDA #$02
		0x8d, 0x02, 0x14, // STA $1402
		0xa9, 0x01,       // LDA #$01
		0x8d, 0x00, 0x0c, // STA $0c00
		0x8d, 0x01, 0x0c, // STA $0c01
		0x4c, 0x0d, 0xe0, // JMP $e00d
	)

	// INC $2002; RTI
	put(img, 0xe100, 0xee, 0x02, 0x20, 0x40)

	sys := newSystem(t, img)
	test.ExpectSuccess(t, sys.Step(5000))
	test.ExpectInequality(t, sys.RAM.Peek(0x0002), uint8(0))
	test.ExpectEquality(t, sys.IRQ.Disabled(irq.IRQ1), true)
	test.ExpectEquality(t, sys.Timer.Pending(), false)
}

func TestIllegalMemoryAccess(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)

	// STA $e000; JMP $e003
	put(img, origin, 0x8d, 0x00, 0xe0, 0x4c, 0x03, 0xe0)

	sys := newSystem(t, img)
	test.ExpectSuccess(t, sys.Run(1))
	test.ExpectEquality(t, sys.Error(), true)
	test.ExpectEquality(t, sys.CPU.Error(), false)
	v, _ := sys.ROM.Peek(0)
	test.ExpectEquality(t, v, uint8(0x8d))
}

func TestIllegalOpcode(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)
	put(img, origin, 0x33)

	sys := newSystem(t, img)
	err := sys.Run(1)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, hardware.CPUHalted), true)
	test.ExpectEquality(t, sys.Error(), true)

	// reloading the image clears the error
	test.ExpectSuccess(t, sys.Load(img))
	test.ExpectEquality(t, sys.Error(), false)
}

func TestFillScreen(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)
	sys := newSystem(t, img)

	// colour zero is red. written through the hardware page
	test.ExpectSuccess(t, sys.Mem.Write(0x0404, 0x38))
	test.ExpectSuccess(t, sys.Mem.Write(0x0405, 0x00))

	buf := make([]uint8, 2*2*4)
	test.ExpectSuccess(t, sys.FillScreen(0, 0, 2, 2, buf))
	for i := 0; i < len(buf); i += 4 {
		test.ExpectEquality(t, buf[i], uint8(0xe0), i)
		test.ExpectEquality(t, buf[i+1], uint8(0x00), i)
		test.ExpectEquality(t, buf[i+2], uint8(0x00), i)
		test.ExpectEquality(t, buf[i+3], uint8(0xff), i)
	}

	// coordinates outside the virtual screen wrap
	test.ExpectSuccess(t, sys.FillScreen(1000, 1000, 2, 2, buf))
	test.ExpectEquality(t, buf[0], uint8(0xe0))

	test.ExpectFailure(t, sys.FillScreen(0, 0, 3, 3, buf))

	test.ExpectEquality(t, sys.Pixel(0, 0).R, uint8(0xe0))
}

func TestButtons(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)
	sys := newSystem(t, img)

	read := func() uint8 {
		v, err := sys.Mem.Read(0x1000)
		test.ExpectSuccess(t, err)
		return v
	}

	test.ExpectEquality(t, read(), uint8(0x0f))
	sys.AOn(0)
	test.ExpectEquality(t, read(), uint8(0x0d))
	sys.StartOn(0)
	test.ExpectEquality(t, read(), uint8(0x05))
	sys.AOff(0)
	sys.StartOff(0)
	test.ExpectEquality(t, read(), uint8(0x0f))

	// select the direction buttons
	test.ExpectSuccess(t, sys.Mem.Write(0x1000, 0x01))
	sys.UpOn(0)
	sys.LeftOn(0)
	test.ExpectEquality(t, read(), uint8(0x06))

	// other players do not affect the selected player
	sys.DownOn(1)
	test.ExpectEquality(t, read(), uint8(0x06))
	test.ExpectEquality(t, sys.GamePad.IsPressed(1, gamepad.Down), true)
}

func TestDump(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)
	sys := newSystem(t, img)

	s := &strings.Builder{}
	sys.Dump(s)
	test.ExpectEquality(t, strings.Contains(s.String(), "Regs :"), true)
	test.ExpectEquality(t, strings.Contains(s.String(), "VDC"), true)
	test.ExpectEquality(t, strings.Contains(s.String(), "PSG"), true)
}

func TestDumpHardwarePage(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, 0xffe0)
	sys := newSystem(t, img)
	test.ExpectEquality(t, sys.CPU.PC.Address(), uint16(0xffe0))

	sys.VDC.SetVBlank()
	addr := sys.VDC.ReadAddress()

	// the dump runs from the PC and wraps into the hardware page
	s := &strings.Builder{}
	sys.CPU.Dump(s)
	test.ExpectEquality(t, strings.Contains(s.String(), "\n0000 "), true)

	test.ExpectEquality(t, sys.VDC.Status.VBlank, true)
	test.ExpectEquality(t, sys.VDC.ReadAddress(), addr)
	test.ExpectEquality(t, sys.Error(), false)
}

func TestRunForFrameCount(t *testing.T) {
	img := newImage()
	vector(img, memorymap.Reset, origin)
	put(img, origin, 0x4c, 0x00, 0xe0)
	sys := newSystem(t, img)

	frames := 0
	test.ExpectSuccess(t, sys.RunForFrameCount(3, func(frame int) bool {
		frames++
		return true
	}))
	test.ExpectEquality(t, frames, 3)
	test.ExpectEquality(t, sys.Frames(), 3)

	test.ExpectSuccess(t, sys.RunForFrameCount(5, func(frame int) bool {
		return frame < 4
	}))
	test.ExpectEquality(t, sys.Frames(), 4)
}
