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

package digest_test

import (
	"testing"

	"github.com/gopherpce/gopherpce/digest"
	"github.com/gopherpce/gopherpce/hardware/psg"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/test"
)

// mockScreen fills every pixel with the same value
type mockScreen struct {
	value uint8
}

func (scr *mockScreen) FillScreen(_ int, _ int, _ int, _ int, buf []uint8) error {
	for i := range buf {
		buf[i] = scr.value
	}
	return nil
}

func TestVideo(t *testing.T) {
	_, err := digest.NewVideo(&mockScreen{}, 0, 10)
	test.ExpectFailure(t, err)

	scr := &mockScreen{}
	dig, err := digest.NewVideo(scr, 16, 16)
	test.DemandSuccess(t, err)

	var _ digest.Digest = dig

	test.ExpectSuccess(t, dig.NewFrame())
	first := dig.Hash()
	test.ExpectSuccess(t, dig.NewFrame())
	second := dig.Hash()

	// identical frames produce different values because the digest is
	// chained
	test.ExpectInequality(t, first, second)
	test.ExpectEquality(t, dig.Frames(), 2)

	// same sequence of frames after a reset produces the same value
	dig.ResetDigest()
	test.ExpectSuccess(t, dig.NewFrame())
	test.ExpectEquality(t, dig.Hash(), first)

	// different screen produces a different value
	dig.ResetDigest()
	scr.value = 1
	test.ExpectSuccess(t, dig.NewFrame())
	test.ExpectInequality(t, dig.Hash(), first)
}

func TestAudio(t *testing.T) {
	p := psg.NewPSG(logger.NewLogger(10), logger.Allow)

	dig := digest.NewAudio()
	var _ digest.Digest = dig

	dig.Sample(p)
	silent := dig.Hash()

	// select channel 2 and write to the wavetable
	p.Write(0, 2)
	p.Write(6, 0x1f)

	dig.ResetDigest()
	dig.Sample(p)
	test.ExpectInequality(t, dig.Hash(), silent)

	// many samples exercise the chaining of the buffer
	dig.ResetDigest()
	for i := 0; i < 100; i++ {
		dig.Sample(p)
	}
	a := dig.Hash()
	dig.ResetDigest()
	for i := 0; i < 100; i++ {
		dig.Sample(p)
	}
	test.ExpectEquality(t, dig.Hash(), a)
}
