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

package screenshot_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/screenshot"
	"github.com/gopherpce/gopherpce/test"
)

// a screen of vertical stripes. even columns are red and odd columns are
// blue
type stripes struct{}

func (stripes) FillScreen(x int, y int, w int, h int, buf []uint8) error {
	if len(buf) < w*h*4 {
		return curated.Errorf("short buffer")
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			idx := (j*w + i) * 4
			if (x+i)&1 == 0 {
				buf[idx] = 0xff
			} else {
				buf[idx+2] = 0xff
			}
			buf[idx+3] = 0xff
		}
	}
	return nil
}

func TestImage(t *testing.T) {
	img, err := screenshot.Image(stripes{}, 4, 2, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 4)
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(1, 1), color.RGBA{B: 0xff, A: 0xff})
}

func TestScaledImage(t *testing.T) {
	img, err := screenshot.Image(stripes{}, 4, 2, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 12)
	test.ExpectEquality(t, img.Bounds().Dy(), 6)

	// each source pixel covers three destination pixels
	test.ExpectEquality(t, img.RGBAAt(2, 5), color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(3, 0), color.RGBA{B: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(5, 0), color.RGBA{B: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(6, 0), color.RGBA{R: 0xff, A: 0xff})
}

func TestInvalid(t *testing.T) {
	_, err := screenshot.Image(stripes{}, 0, 2, 1)
	test.ExpectFailure(t, err)
	_, err = screenshot.Image(stripes{}, 4, 2, 0)
	test.ExpectFailure(t, err)
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "screen.png")

	err := screenshot.Save(stripes{}, 8, 8, 2, fn)
	test.DemandSuccess(t, err)

	// file will not be overwritten
	err = screenshot.Save(stripes{}, 8, 8, 2, fn)
	test.ExpectFailure(t, err)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 16)
	test.ExpectEquality(t, img.Bounds().Dy(), 16)
}
