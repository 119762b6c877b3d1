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

package psg

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopherpce/gopherpce/logger"
)

// NumChannels is the number of channels in the PSG.
const NumChannels = 6

// LFOMode is the operation of the low frequency oscillator.
type LFOMode uint8

// List of valid LFOMode values.
const (
	LFOStop LFOMode = iota
	LFOx1
	LFOx16
	LFOx256
)

func (m LFOMode) String() string {
	switch m {
	case LFOStop:
		return "OFF "
	case LFOx1:
		return "x1  "
	case LFOx16:
		return "x16 "
	case LFOx256:
		return "x256"
	}
	return "????"
}

// PSG is the programmable sound generator.
type PSG struct {
	log  *logger.Logger
	perm logger.Permission

	channels [NumChannels]Channel
	current  int

	MasterVolL uint8
	MasterVolR uint8

	LFOFreq  uint8
	LFOMode  LFOMode
	LFOReset bool
}

// NewPSG is the preferred method of initialisation for the PSG type.
func NewPSG(log *logger.Logger, perm logger.Permission) *PSG {
	psg := &PSG{
		log:  log,
		perm: perm,
	}
	psg.Reset()
	return psg
}

// Reset all channels and shared state.
func (psg *PSG) Reset() {
	for i := range psg.channels {
		psg.channels[i].reset()
	}
	psg.current = 0
	psg.MasterVolL = 0
	psg.MasterVolR = 0
	psg.LFOFreq = 0
	psg.LFOMode = LFOStop
	psg.LFOReset = false
}

// Channel returns a copy of the channel state. The index is wrapped to the
// number of channels.
func (psg *PSG) Channel(i int) Channel {
	if i < 0 {
		i = -i
	}
	return psg.channels[i%NumChannels]
}

// Selected returns the channel currently being addressed by writes.
func (psg *PSG) Selected() int {
	return psg.current
}

// Read implements the hwbank.Port interface. All registers are write-only.
func (psg *PSG) Read(_ uint16) uint8 {
	return 0
}

// Write implements the hwbank.Port interface.
func (psg *PSG) Write(port uint16, data uint8) {
	ch := &psg.channels[psg.current]

	switch port {
	case 0:
		psg.current = int(data) % NumChannels
		psg.log.Logf(psg.perm, "psg", "channel select %d", psg.current)
	case 1:
		psg.MasterVolL = (data & 0xf0) >> 4
		psg.MasterVolR = data & 0x0f
		psg.log.Logf(psg.perm, "psg", "master volume %d/%d", psg.MasterVolL, psg.MasterVolR)
	case 2:
		ch.freqLo = data
		ch.updateFreq()
	case 3:
		ch.freqHi = data & 0x0f
		ch.updateFreq()
	case 4:
		ch.Volume = data & 0x1f
		switch (data & 0xc0) >> 6 {
		case 0:
			ch.PlaybackEnable = false
		case 1:
			ch.pointer = 0
		case 2:
			ch.PlaybackEnable = true
		case 3:
			ch.DDAEnable = true
		}
		psg.log.Logf(psg.perm, "psg", "channel %d volume %d mode %d", psg.current, ch.Volume, (data&0xc0)>>6)
	case 5:
		ch.VolL = (data & 0xf0) >> 4
		ch.VolR = data & 0x0f
	case 6:
		ch.writeWavetable(data)
	case 7:
		// a rate of 0x1f has a divisor of zero. the noise frequency is zero
		// in that case
		div := (data & 0x1f) ^ 0x1f
		if div == 0 {
			ch.NoiseFreq = 0
		} else {
			ch.NoiseFreq = BaseClock / (64 * float64(div))
		}
		ch.IsNoise = data&0x80 != 0
		psg.log.Logf(psg.perm, "psg", "channel %d noise %g enable=%v", psg.current, ch.NoiseFreq, ch.IsNoise)
	case 8:
		psg.LFOFreq = data
	case 9:
		psg.LFOMode = LFOMode(data & 0x03)
		psg.LFOReset = data&0x80 != 0
		psg.log.Logf(psg.perm, "psg", "lfo op=%d reset=%v", psg.LFOMode, psg.LFOReset)
	}
}

// Dump writes the state of the PSG to the io.Writer.
func (psg *PSG) Dump(w io.Writer) {
	s := strings.Builder{}
	s.WriteString("PSG\n")

	rst := "   "
	if psg.LFOReset {
		rst = "RST "
	}
	s.WriteString(fmt.Sprintf("L %2d R %2d LFO Mode %s freq %-3d%s\n", psg.MasterVolL, psg.MasterVolR, psg.LFOMode, psg.LFOFreq, rst))

	for i := range psg.channels {
		s.WriteString(fmt.Sprintf("CH%d %s\n", i, psg.channels[i].String()))
	}

	io.WriteString(w, s.String())
}
