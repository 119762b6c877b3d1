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

package hardware

import (
	"io"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/hardware/cpu"
	"github.com/gopherpce/gopherpce/hardware/gamepad"
	"github.com/gopherpce/gopherpce/hardware/irq"
	"github.com/gopherpce/gopherpce/hardware/memory"
	"github.com/gopherpce/gopherpce/hardware/memory/cartridge"
	"github.com/gopherpce/gopherpce/hardware/memory/hwbank"
	"github.com/gopherpce/gopherpce/hardware/memory/memorymap"
	"github.com/gopherpce/gopherpce/hardware/memory/ram"
	"github.com/gopherpce/gopherpce/hardware/palette"
	"github.com/gopherpce/gopherpce/hardware/preferences"
	"github.com/gopherpce/gopherpce/hardware/psg"
	"github.com/gopherpce/gopherpce/hardware/timer"
	"github.com/gopherpce/gopherpce/hardware/vdc"
	"github.com/gopherpce/gopherpce/logger"
)

// BaseClock is the master clock of the console in Hz. The CPU is stepped at
// twice this rate.
const BaseClock = 3579545

// Sentinel error patterns.
const (
	EmptyImage  = "system: image is empty"
	NotReady    = "system: no image loaded"
	CPUHalted   = "system: cpu halted at %04x"
	ShortBuffer = "system: buffer too small (%d bytes for %dx%d pixels)"
)

// System is the root of the emulation and contains references to all the
// sub-systems of the console.
type System struct {
	log   *logger.Logger
	Prefs *preferences.Preferences

	CPU     *cpu.CPU
	Mem     *memory.Map
	VDC     *vdc.VDC
	PSG     *psg.PSG
	Palette *palette.Palette
	Timer   *timer.Timer
	IRQ     *irq.Mask
	GamePad *gamepad.GamePad
	ROM     *cartridge.ROM
	RAM     *ram.RAM

	// number of vertical syncs since the last reset
	vsyncs int
}

// NewSystem creates a new console and everything associated with it. If
// prefs is nil then the default preferences are used.
func NewSystem(prefs *preferences.Preferences, log *logger.Logger) *System {
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}

	sys := &System{
		log:   log,
		Prefs: prefs,
	}

	sys.VDC = vdc.NewVDC(log, prefs)
	sys.PSG = psg.NewPSG(log, &prefs.Trace.PSG)
	sys.Palette = palette.NewPalette(log, &prefs.Trace.Palette)
	sys.Timer = timer.NewTimer(log, &prefs.Trace.Timer)
	sys.IRQ = irq.NewMask(log, &prefs.Trace.IRQ)
	sys.GamePad = gamepad.NewGamePad(log, &prefs.Trace.GamePad)
	sys.ROM = cartridge.NewROM(log, &prefs.Trace.Memory)
	sys.RAM = ram.NewRAM()

	hw := hwbank.NewRouter(log, &prefs.Trace.Memory)
	hw.VDC = sys.VDC
	hw.Palette = sys.Palette
	hw.PSG = sys.PSG
	hw.Timer = sys.Timer
	hw.GamePad = sys.GamePad
	hw.IRQ = sys.IRQ

	sys.Mem = memory.NewMap(log, sys.ROM, sys.RAM, hw)
	sys.CPU = cpu.NewCPU(log, prefs, sys.Mem, sys.VDC, sys)

	return sys
}

// Load attaches a ROM image and resets the processor. The memory page
// registers return to the boot table but RAM and the peripherals are
// unchanged. Use Reset() for a full reset of the console.
func (sys *System) Load(data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf(EmptyImage)
	}
	sys.ROM.Attach(data)
	sys.Mem.ClearError()
	sys.CPU.Reset()
	return nil
}

// Unload removes the ROM image. The console cannot run until another image
// is loaded.
func (sys *System) Unload() {
	sys.ROM.Eject()
}

// IsReady returns true if a ROM image is loaded.
func (sys *System) IsReady() bool {
	return !sys.ROM.IsEjected()
}

// Reset the console. The ROM image remains attached.
func (sys *System) Reset() {
	sys.RAM.Reset()
	sys.VDC.Reset()
	sys.PSG.Reset()
	sys.Palette.Reset()
	sys.Timer.Reset()
	sys.IRQ.Reset()
	sys.GamePad.Reset()
	sys.Mem.Reset()
	sys.Mem.ClearError()
	sys.CPU.Reset()
	sys.vsyncs = 0
}

// Run the emulation for the number of milliseconds of emulated time.
func (sys *System) Run(ms float64) error {
	if !sys.IsReady() {
		return curated.Errorf(NotReady)
	}
	sys.CPU.Step(int(BaseClock * 2 * ms / 1000))
	return sys.halted()
}

// Step the emulation forward by n cycles.
func (sys *System) Step(n int) error {
	if !sys.IsReady() {
		return curated.Errorf(NotReady)
	}
	sys.CPU.Step(n)
	return sys.halted()
}

// RunForFrameCount runs the emulation for the specified number of vertical
// syncs. Useful for performance measurement and regression tests. The
// continueCheck function is called after every frame and can be nil.
func (sys *System) RunForFrameCount(numFrames int, continueCheck func(frame int) bool) error {
	if !sys.IsReady() {
		return curated.Errorf(NotReady)
	}

	target := sys.vsyncs + numFrames
	for sys.vsyncs < target {
		// step one instruction at a time so that no vertical sync is missed
		frame := sys.vsyncs
		for frame == sys.vsyncs {
			sys.CPU.Step(1)
			if err := sys.halted(); err != nil {
				return err
			}
		}
		if continueCheck != nil && !continueCheck(sys.vsyncs) {
			return nil
		}
	}

	return nil
}

// returns an error if the CPU has stopped because of an illegal opcode.
// aborts caused by debugging triggers are not errors.
func (sys *System) halted() error {
	if sys.CPU.Error() {
		return curated.Errorf(CPUHalted, sys.CPU.LastResult.Address)
	}
	return nil
}

// Log returns the logger used by the System.
func (sys *System) Log() *logger.Logger {
	return sys.log
}

// Frames returns the number of vertical syncs since the last reset.
func (sys *System) Frames() int {
	return sys.vsyncs
}

// Tick implements the cpu.Environment interface. The video and timer
// counters are advanced and any resulting interrupts are delivered to the
// CPU.
func (sys *System) Tick(cycles int) {
	if sys.VDC.VSyncCount(cycles) {
		sys.vsyncs++
		sys.VDC.Decode()
		if !sys.CPU.Status.InterruptDisable && !sys.IRQ.Disabled(irq.IRQ1) {
			sys.VDC.SetVBlank()
			sys.IRQ.Raise(irq.IRQ1)
			sys.CPU.Interrupt(memorymap.IRQ1)
		}
	}

	if sys.Timer.Step(cycles) {
		if !sys.CPU.Status.InterruptDisable && !sys.IRQ.Disabled(irq.Timer) {
			sys.IRQ.Raise(irq.Timer)
			sys.CPU.Interrupt(memorymap.Timer)
		}
		sys.Timer.Acknowledge()
	}
}

// Error returns true if the CPU has halted or if an illegal memory access has
// occurred.
func (sys *System) Error() bool {
	return sys.CPU.Error() || sys.Mem.Error()
}

// FillScreen writes the rectangle of the virtual screen at x and y as RGBA
// bytes. Coordinates are offset by the background scroll registers and wrap
// at the edges of the virtual screen.
func (sys *System) FillScreen(x int, y int, w int, h int, buf []uint8) error {
	if len(buf) < w*h*4 {
		return curated.Errorf(ShortBuffer, len(buf), w, h)
	}

	wx := sys.VDC.Width() - 1
	wy := sys.VDC.Height() - 1

	idx := 0
	for j := 0; j < h; j++ {
		dy := (sys.VDC.Geometry.BYR + y + j) & wy
		dx := sys.VDC.Geometry.BXR + x
		for i := 0; i < w; i++ {
			c := sys.Palette.Color(sys.VDC.Index(dx&wx, dy))
			buf[idx] = c.R
			buf[idx+1] = c.G
			buf[idx+2] = c.B
			buf[idx+3] = 0xff
			idx += 4
			dx++
		}
	}

	return nil
}

// Pixel returns the colour of the pixel in the virtual screen. The scroll
// registers are not applied.
func (sys *System) Pixel(x int, y int) palette.Color {
	return sys.Palette.Color(sys.VDC.Index(x, y))
}

// Dump writes the state of the CPU, VDC and PSG.
func (sys *System) Dump(w io.Writer) {
	sys.CPU.Dump(w)
	io.WriteString(w, "\n")
	sys.VDC.Dump(w)
	io.WriteString(w, "\n\n")
	sys.PSG.Dump(w)
}
