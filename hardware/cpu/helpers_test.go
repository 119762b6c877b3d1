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

package cpu_test

import (
	"testing"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/hardware/cpu"
	"github.com/gopherpce/gopherpce/hardware/cpu/execution"
	"github.com/gopherpce/gopherpce/hardware/memory/cpubus"
	"github.com/gopherpce/gopherpce/hardware/memory/memorymap"
	"github.com/gopherpce/gopherpce/hardware/preferences"
	"github.com/gopherpce/gopherpce/logger"
)

// mockMem is a flat 64k address space. the page at 0xfe00 is unreadable and
// unwritable.
type mockMem struct {
	internal []uint8
	mpr      [memorymap.NumSegments]uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putWord(address uint16, word uint16) {
	mem.internal[address] = uint8(word)
	mem.internal[address+1] = uint8(word >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", mem.internal[address], value, address)
	}
}

// Clear sets all bytes in memory to zero.
func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if address&0xff00 == 0xfe00 {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if address&0xff00 == 0xfe00 {
		return curated.Errorf(cpubus.AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) MPR(segment int) uint8 {
	return mem.mpr[segment]
}

func (mem *mockMem) SetMPR(segment int, bank uint8) {
	mem.mpr[segment] = bank
}

type portWrite struct {
	port uint16
	data uint8
}

type mockVDC struct {
	writes []portWrite
}

func (vdc *mockVDC) Write(port uint16, data uint8) {
	vdc.writes = append(vdc.writes, portWrite{port: port, data: data})
}

type mockEnv struct {
	ticks []int
}

func (env *mockEnv) Tick(cycles int) {
	env.ticks = append(env.ticks, cycles)
}

func newCPU(mem *mockMem, vdc *mockVDC, env cpu.Environment) *cpu.CPU {
	mc := cpu.NewCPU(logger.NewLogger(100), preferences.NewDefaultPreferences(), mem, vdc, env)
	mc.Reset()
	return mc
}

// step executes exactly one instruction, paying off any outstanding cycle
// debt first.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	mc.ExecuteInstruction(mc.CycleDebt())
	err := mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}
