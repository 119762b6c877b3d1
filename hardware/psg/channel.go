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
)

// BaseClock is the frequency of the clock driving the PSG.
const BaseClock = 3579545

// WavetableSize is the number of samples in a channel's wavetable.
const WavetableSize = 32

// Channel is the state of a single PSG channel.
type Channel struct {
	PlaybackEnable bool
	DDAEnable      bool

	Volume uint8
	VolL   uint8
	VolR   uint8

	freqLo uint8
	freqHi uint8
	Period uint16

	// frequency, in Hz, of one complete pass through the wavetable
	Freq float64

	wavetable [WavetableSize]uint8
	pointer   uint8

	IsNoise   bool
	NoiseFreq float64
}

func (ch *Channel) reset() {
	*ch = Channel{}
}

func (ch *Channel) updateFreq() {
	ch.Period = uint16(ch.freqLo) | uint16(ch.freqHi)<<8
	if ch.Period == 0 {
		ch.Period = 1
	}
	ch.Freq = BaseClock / (32 * float64(ch.Period))
}

func (ch *Channel) writeWavetable(data uint8) {
	ch.wavetable[ch.pointer] = data & 0x1f
	ch.pointer = (ch.pointer + 1) & (WavetableSize - 1)
}

// Pointer returns the index of the next wavetable write.
func (ch *Channel) Pointer() int {
	return int(ch.pointer)
}

// Wavetable returns a copy of the raw 5-bit wavetable.
func (ch *Channel) Wavetable() [WavetableSize]uint8 {
	return ch.wavetable
}

// Samples returns the wavetable as signed 16 bit PCM samples, centred on
// zero.
func (ch *Channel) Samples() []int {
	s := make([]int, WavetableSize)
	for i, v := range ch.wavetable {
		s[i] = (int(v) - 0x10) << 11
	}
	return s
}

func (ch *Channel) String() string {
	freq := ch.Freq
	if ch.IsNoise {
		freq = ch.NoiseFreq
	}

	play := "OFF "
	if ch.PlaybackEnable {
		play = "ON  "
	}

	dda := "    "
	if ch.DDAEnable {
		dda = "DDA "
	}

	noise := "      "
	if ch.IsNoise {
		noise = "(Noise) "
	}

	return fmt.Sprintf("%s%s V %2d L %2d R %2d freq %-6.6s%s", play, dda, ch.Volume, ch.VolL, ch.VolR,
		fmt.Sprintf("%g", freq), noise)
}
