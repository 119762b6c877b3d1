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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/gopherpce/gopherpce/hardware/psg"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/test"
	"github.com/gopherpce/gopherpce/wavwriter"
)

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.New(logger.NewLogger(10), "")
	test.ExpectFailure(t, err)
}

func TestWrite(t *testing.T) {
	log := logger.NewLogger(10)
	p := psg.NewPSG(log, logger.Allow)

	fn := filepath.Join(t.TempDir(), "out.wav")
	aw, err := wavwriter.New(log, fn)
	test.DemandSuccess(t, err)

	// silence
	aw.Sample(p, 0.5)
	test.ExpectEquality(t, aw.Len(), wavwriter.SampleRate/2)

	// channel zero playing a flat wavetable at full volume
	for i := 0; i < psg.WavetableSize; i++ {
		p.Write(6, 0x1f)
	}
	p.Write(2, 0xfe)
	p.Write(4, 0x80|0x1f)
	aw.Sample(p, 0.5)
	test.ExpectEquality(t, aw.Len(), wavwriter.SampleRate)

	err = aw.EndMixing()
	test.DemandSuccess(t, err)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.SampleRate), wavwriter.SampleRate)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), wavwriter.SampleRate)
	test.ExpectEquality(t, buf.Data[0], 0)
	test.ExpectEquality(t, buf.Data[len(buf.Data)-1], (0x0f<<11)/psg.NumChannels)
}

func TestReset(t *testing.T) {
	log := logger.NewLogger(10)
	aw, err := wavwriter.New(log, filepath.Join(t.TempDir(), "out.wav"))
	test.DemandSuccess(t, err)
	aw.Sample(psg.NewPSG(log, logger.Allow), 0.1)
	test.ExpectInequality(t, aw.Len(), 0)
	aw.Reset()
	test.ExpectEquality(t, aw.Len(), 0)
}
