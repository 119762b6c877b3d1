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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/gopherpce/gopherpce/hardware/psg"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// to allow us to create digests on audio state longer than audioBufferLength,
// we'll stuff the previous digest value into the first part of the buffer
// array and make sure we include it when we create the next digest value
const audioBufferStart = sha1.Size

// Audio generates a SHA-1 value of the sound generator state. The state
// includes the wavetable and volume of every channel.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements digest.Digest interface. Any buffered state is added to the
// digest first.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.bufferCt = audioBufferStart
}

// Sample adds the current state of the PSG to the digest.
func (dig *Audio) Sample(p *psg.PSG) {
	dig.add(p.MasterVolL)
	dig.add(p.MasterVolR)
	for i := 0; i < psg.NumChannels; i++ {
		ch := p.Channel(i)
		dig.add(ch.Volume)
		dig.add(ch.VolL)
		dig.add(ch.VolR)
		for _, v := range ch.Wavetable() {
			dig.add(v)
		}
	}
}

func (dig *Audio) add(v uint8) {
	dig.buffer[dig.bufferCt] = v
	dig.bufferCt++
	if dig.bufferCt >= len(dig.buffer) {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
