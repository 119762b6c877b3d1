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

// Package wavwriter allows writing of PSG output to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
//
// The PSG is not clocked by the emulation so output is synthesised from the
// state of each channel at the moment of sampling. Each enabled channel plays
// its wavetable at the channel frequency, scaled by the channel volume.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/hardware/psg"
	"github.com/gopherpce/gopherpce/logger"
)

// SampleRate of the WAV file.
const SampleRate = 44100

const bitDepth = 16

// maximum volume value of a channel
const maxVolume = 0x1f

// WavWriter buffers synthesised PSG output.
type WavWriter struct {
	log      *logger.Logger
	filename string
	buffer   []int

	// position in each channel's wavetable. measured in wavetable entries
	phase [psg.NumChannels]float64
}

// New is the preferred method of initialisation for the WavWriter type.
func New(log *logger.Logger, filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename specified")
	}

	aw := &WavWriter{
		log:      log,
		filename: filename,
		buffer:   make([]int, 0, SampleRate),
	}

	return aw, nil
}

// Len returns the number of samples currently buffered.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Sample adds the number of samples required to fill the duration (in
// seconds) using the current state of the PSG.
func (aw *WavWriter) Sample(p *psg.PSG, duration float64) {
	n := int(duration * SampleRate)
	for i := 0; i < n; i++ {
		var v int
		for c := 0; c < psg.NumChannels; c++ {
			ch := p.Channel(c)
			if !ch.PlaybackEnable || ch.IsNoise {
				continue
			}

			s := ch.Samples()
			v += s[int(aw.phase[c])%psg.WavetableSize] * int(ch.Volume) / maxVolume

			aw.phase[c] += ch.Freq * psg.WavetableSize / SampleRate
			for aw.phase[c] >= psg.WavetableSize {
				aw.phase[c] -= psg.WavetableSize
			}
		}

		// scale mix so that all channels at full volume cannot clip
		aw.buffer = append(aw.buffer, v/psg.NumChannels)
	}
}

// EndMixing writes the buffered samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// 0x01 is the PCM audio format
	enc := wav.NewEncoder(f, SampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	aw.log.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards all buffered samples.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	for i := range aw.phase {
		aw.phase[i] = 0
	}
}
