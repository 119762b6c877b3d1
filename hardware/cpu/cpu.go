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

package cpu

import (
	"fmt"
	"io"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/hardware/cpu/execution"
	"github.com/gopherpce/gopherpce/hardware/cpu/registers"
	"github.com/gopherpce/gopherpce/hardware/memory/cpubus"
	"github.com/gopherpce/gopherpce/hardware/memory/memorymap"
	"github.com/gopherpce/gopherpce/hardware/preferences"
	"github.com/gopherpce/gopherpce/logger"
)

// Clock speeds selected by the CSH and CSL instructions.
const (
	ClockSpeedHigh = 7159090
	ClockSpeedLow  = ClockSpeedHigh / 4
)

// Sentinel error patterns. These are logged and are never returned.
const (
	IllegalOpcode = "cpu: illegal opcode (%02x) at (%04x)"
)

// Environment is the rest of the console as seen by the CPU. Tick() is called
// by Step() before each instruction with the number of cycles consumed by the
// previous instruction.
type Environment interface {
	Tick(cycles int)
}

// CPU implements the HuC6280. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	log   *logger.Logger
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory
	vdc cpubus.VideoPorts
	env Environment

	// LastResult describes the most recently executed instruction
	LastResult execution.Result

	Triggers Triggers

	// cycles still to be consumed by the rest of the console
	cycleDebt int

	// total number of cycles consumed since the CPU was created
	ticks int

	clockSpeed int

	// idle is set when the CPU is found to be in a tight loop. lastPC is
	// the value of the PC at the end of the previous instruction, or -1
	idle   bool
	lastPC int

	// errored is set when an illegal opcode is encountered and is cleared
	// only by Reset()
	errored bool

	// abort stops the Step() loop early. it is reset at the start of every
	// call to Step()
	abort bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The env
// argument can be nil.
func NewCPU(log *logger.Logger, prefs *preferences.Preferences, mem cpubus.Memory, vdc cpubus.VideoPorts, env Environment) *CPU {
	mc := &CPU{
		log:        log,
		prefs:      prefs,
		mem:        mem,
		vdc:        vdc,
		env:        env,
		PC:         registers.NewProgramCounter(0),
		A:          registers.NewRegister(0, "A"),
		X:          registers.NewRegister(0, "X"),
		Y:          registers.NewRegister(0, "Y"),
		SP:         registers.NewStackPointer(0xff),
		Status:     registers.NewStatusRegister(),
		acc8:       registers.NewRegister(0, "accumulator"),
		clockSpeed: ClockSpeedHigh,
		lastPC:     -1,
	}
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset the CPU. The memory page registers are returned to their boot values
// and the PC is loaded from the reset vector.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	for i, b := range memorymap.BootBanks {
		mc.mem.SetMPR(i, b)
	}

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()

	mc.cycleDebt = 0
	mc.clockSpeed = ClockSpeedHigh
	mc.idle = false
	mc.lastPC = -1
	mc.errored = false
	mc.abort = false

	mc.PC.Load(mc.read16(memorymap.Reset))
}

// Error returns true if the CPU has encountered an illegal opcode.
func (mc *CPU) Error() bool {
	return mc.errored
}

// Aborted returns true if the most recent call to Step() ended early.
func (mc *CPU) Aborted() bool {
	return mc.abort
}

// Idle returns true if the CPU is waiting in a tight loop.
func (mc *CPU) Idle() bool {
	return mc.idle
}

// ClockSpeed returns the clock speed selected by the CSH and CSL
// instructions.
func (mc *CPU) ClockSpeed() int {
	return mc.clockSpeed
}

// Ticks returns the number of cycles consumed since the CPU was created.
func (mc *CPU) Ticks() int {
	return mc.ticks
}

// CycleDebt returns the number of cycles still to be consumed.
func (mc *CPU) CycleDebt() int {
	return mc.cycleDebt
}

// Dump writes the register and memory state of the CPU.
func (mc *CPU) Dump(w io.Writer) {
	io.WriteString(w, "----------------------------------------\n")
	fmt.Fprintf(w, "ticks %d\n", mc.ticks)
	fmt.Fprintf(w, "Regs : A=%02x X=%02x Y=%02x PC=%04x SP=%02x P=%02x\n",
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.PC.Address(), mc.SP.Value(), mc.Status.Value())

	if d, ok := mc.mem.(interface {
		Dump(w io.Writer, address uint16, length int)
	}); ok {
		d.Dump(w, mc.PC.Address(), 0x100)
	}
}

// Step the CPU forward by n cycles. Before each instruction the environment
// is ticked by the cycle debt of the previous instruction. A halted CPU does
// not step and the environment is not ticked.
func (mc *CPU) Step(n int) {
	mc.abort = false

	for i := 0; i < n; {
		if mc.errored {
			return
		}

		skip := mc.cycleDebt
		if mc.env != nil {
			mc.env.Tick(skip)
		}
		mc.ExecuteInstruction(skip)

		i += max(skip, 1)
		if mc.abort {
			return
		}
	}
}

// Interrupt pushes the PC and status register to the stack and jumps to the
// address in the interrupt vector. The caller is responsible for checking the
// interrupt disable flag. An interrupt takes the CPU out of the idle state.
func (mc *CPU) Interrupt(vector uint16) {
	mc.idle = false
	mc.lastPC = -1

	mc.push(mc.PC.Hi())
	mc.push(mc.PC.Lo())
	mc.push(mc.Status.Value())
	mc.PC.Load(mc.read16(vector))

	mc.Status.MemoryOperation = false
	mc.Status.Break = false
	mc.Status.DecimalMode = false
	mc.Status.InterruptDisable = true

	mc.cycleDebt += 8
}

// note memory errors in the last result. memory errors are never fatal
func (mc *CPU) memError(err error) {
	if err == nil {
		return
	}
	mc.LastResult.Error = err.Error()
	if !curated.Is(err, cpubus.AddressError) {
		mc.log.Log(logger.Allow, "cpu", err)
	}
}

func (mc *CPU) read(address uint16) uint8 {
	v, err := mc.mem.Read(address)
	mc.memError(err)
	return v
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.memError(mc.mem.Write(address, data))
}

// read16 reads a little-endian word from the address.
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.read(address)
	hi := mc.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// readPC reads the byte at the PC and advances the PC.
func (mc *CPU) readPC() uint8 {
	v := mc.read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// readPC16 reads a little-endian word at the PC and advances the PC.
func (mc *CPU) readPC16() uint16 {
	lo := mc.readPC()
	hi := mc.readPC()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push(data uint8) {
	mc.write(mc.SP.Push(), data)
}

func (mc *CPU) pull() uint8 {
	return mc.read(mc.SP.Pull())
}
