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

	"github.com/gopherpce/gopherpce/curated"
)

// Screen is the source of pixels for the Video digest. It is satisfied by
// hardware.System.
type Screen interface {
	FillScreen(x int, y int, w int, h int, buf []uint8) error
}

// Video generates a SHA-1 value of the visible screen every frame. The value
// of each frame is chained with the value of the previous frame.
type Video struct {
	screen Screen
	width  int
	height int

	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// width and height arguments define the size of the region that is hashed.
func NewVideo(screen Screen, width int, height int) (*Video, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf("digest: illegal screen size (%dx%d)", width, height)
	}

	dig := &Video{
		screen: screen,
		width:  width,
		height: height,
	}

	// length of pixels array contains enough room for the previous frame's
	// digest value
	dig.pixels = make([]byte, sha1.Size+width*height*4)

	return dig, nil
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// Frames returns the number of frames that have contributed to the digest.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// NewFrame adds the current screen to the digest.
func (dig *Video) NewFrame() error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	copy(dig.pixels, dig.digest[:])

	err := dig.screen.FillScreen(0, 0, dig.width, dig.height, dig.pixels[sha1.Size:])
	if err != nil {
		return curated.Errorf("digest: %v", err)
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++

	return nil
}
