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

package psg_test

import (
	"strings"
	"testing"

	"github.com/gopherpce/gopherpce/hardware/psg"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/test"
)

func TestFrequency(t *testing.T) {
	p := psg.NewPSG(logger.NewLogger(10), logger.Allow)

	p.Write(0, 2)
	p.Write(2, 0xfe)
	p.Write(3, 0xf0)
	ch := p.Channel(2)
	test.ExpectEquality(t, ch.Period, 0xfe)
	test.ExpectApproximate(t, ch.Freq, 440.4, 0.1)

	// high byte is masked to four bits
	p.Write(3, 0xf1)
	test.ExpectEquality(t, p.Channel(2).Period, 0x1fe)

	// period of zero is clamped to one
	p.Write(2, 0x00)
	p.Write(3, 0x00)
	test.ExpectEquality(t, p.Channel(2).Period, 1)
	test.ExpectApproximate(t, p.Channel(2).Freq, psg.BaseClock/32.0, 0.1)
}

func TestChannelSelect(t *testing.T) {
	p := psg.NewPSG(logger.NewLogger(10), logger.Allow)
	p.Write(0, 7)
	test.ExpectEquality(t, p.Selected(), 1)
}

func TestControl(t *testing.T) {
	p := psg.NewPSG(logger.NewLogger(10), logger.Allow)

	p.Write(4, 0x80|0x1f)
	test.ExpectSuccess(t, p.Channel(0).PlaybackEnable)
	test.ExpectEquality(t, p.Channel(0).Volume, 0x1f)

	p.Write(6, 0x01)
	p.Write(6, 0x02)
	ch := p.Channel(0)
	test.ExpectEquality(t, ch.Pointer(), 2)

	// pointer reset does not change playback
	p.Write(4, 0x40)
	ch = p.Channel(0)
	test.ExpectEquality(t, ch.Pointer(), 0)
	test.ExpectSuccess(t, p.Channel(0).PlaybackEnable)

	p.Write(4, 0xc0)
	test.ExpectSuccess(t, p.Channel(0).DDAEnable)

	p.Write(4, 0x00)
	test.ExpectFailure(t, p.Channel(0).PlaybackEnable)
}

func TestWavetable(t *testing.T) {
	p := psg.NewPSG(logger.NewLogger(10), logger.Allow)

	for i := 0; i < psg.WavetableSize+1; i++ {
		p.Write(6, uint8(i))
	}

	// the pointer wraps and the first sample is overwritten
	ch := p.Channel(0)
	test.ExpectEquality(t, ch.Pointer(), 1)
	w := ch.Wavetable()
	test.ExpectEquality(t, w[0], 0x00)
	test.ExpectEquality(t, w[31], 31)

	s := ch.Samples()
	test.ExpectEquality(t, len(s), psg.WavetableSize)
	test.ExpectEquality(t, s[0], -0x8000)
	test.ExpectEquality(t, s[16], 0)
}

func TestNoise(t *testing.T) {
	p := psg.NewPSG(logger.NewLogger(10), logger.Allow)
	p.Write(0, 4)

	p.Write(7, 0x80|0x1e)
	ch := p.Channel(4)
	test.ExpectSuccess(t, ch.IsNoise)
	test.ExpectApproximate(t, ch.NoiseFreq, psg.BaseClock/64.0, 0.1)

	// divisor of zero
	p.Write(7, 0x1f)
	ch = p.Channel(4)
	test.ExpectFailure(t, ch.IsNoise)
	test.ExpectEquality(t, ch.NoiseFreq, 0.0)
}

func TestMasterAndLFO(t *testing.T) {
	p := psg.NewPSG(logger.NewLogger(10), logger.Allow)

	p.Write(1, 0xa5)
	test.ExpectEquality(t, p.MasterVolL, 0x0a)
	test.ExpectEquality(t, p.MasterVolR, 0x05)

	p.Write(8, 0x20)
	p.Write(9, 0x82)
	test.ExpectEquality(t, p.LFOFreq, 0x20)
	test.ExpectEquality(t, p.LFOMode, psg.LFOx16)
	test.ExpectSuccess(t, p.LFOReset)

	p.Write(5, 0x3c)
	test.ExpectEquality(t, p.Channel(0).VolL, 3)
	test.ExpectEquality(t, p.Channel(0).VolR, 0x0c)

	s := &strings.Builder{}
	p.Dump(s)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "PSG\nL 10 R  5 LFO Mode x16  freq 32 RST \n"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "CH0 OFF      V  0 L  3 R 12 freq "))
}
