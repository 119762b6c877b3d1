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

// Package screenshot saves the visible area of the virtual screen as a PNG
// file. The image can be enlarged by an integer scaling factor.
package screenshot

import (
	"image"
	"image/png"
	"os"

	"github.com/gopherpce/gopherpce/curated"
	"golang.org/x/image/draw"
)

// Default size of the visible screen.
const (
	DefaultWidth  = 256
	DefaultHeight = 224
)

// Screen is implemented by any type that can fill an RGBA buffer with the
// contents of the screen.
type Screen interface {
	FillScreen(x int, y int, w int, h int, buf []uint8) error
}

// Image returns the visible screen as an RGBA image. The image is scaled
// using nearest neighbour interpolation so that pixels remain sharp.
func Image(screen Screen, w int, h int, scale int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, curated.Errorf("screenshot: invalid dimensions (%dx%d)", w, h)
	}
	if scale < 1 {
		return nil, curated.Errorf("screenshot: invalid scale (%d)", scale)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	err := screen.FillScreen(0, 0, w, h, img.Pix)
	if err != nil {
		return nil, curated.Errorf("screenshot: %v", err)
	}

	if scale == 1 {
		return img, nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	return scaled, nil
}

// Save the visible screen to filename. An existing file will not be
// overwritten.
func Save(screen Screen, w int, h int, scale int, filename string) (rerr error) {
	img, err := Image(screen, w, h, scale)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return curated.Errorf("screenshot: image file (%s) already exists", filename)
		}
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	err = png.Encode(f, img)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}
