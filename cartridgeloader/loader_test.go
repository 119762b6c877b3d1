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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherpce/gopherpce/cartridgeloader"
	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/test"
)

var image = []byte{0x4c, 0x00, 0xe0, 0x00}

func TestExtensions(t *testing.T) {
	_, err := cartridgeloader.NewLoader("roms/game.pce")
	test.ExpectSuccess(t, err)
	_, err = cartridgeloader.NewLoader("roms/game.BIN")
	test.ExpectSuccess(t, err)
	_, err = cartridgeloader.NewLoader("roms/game.a26")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.UnknownFileType), true)
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.pce")
	test.DemandSuccess(t, os.WriteFile(fn, image, 0o644))

	cl, err := cartridgeloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectEquality(t, cl.HasLoaded(), false)

	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, len(cl.Data), len(image))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(image)))

	// expected hash does not match
	cl = cartridgeloader.Loader{Filename: fn, Hash: "0000"}
	err = cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.UnexpectedHash), true)
	test.ExpectEquality(t, cl.HasLoaded(), false)

	// missing file
	cl = cartridgeloader.Loader{Filename: filepath.Join(t.TempDir(), "missing.pce")}
	test.ExpectFailure(t, cl.Load())
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.pce" {
			http.NotFound(w, r)
			return
		}
		w.Write(image)
	}))
	defer srv.Close()

	cl := cartridgeloader.Loader{Filename: srv.URL + "/game.pce"}
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), len(image))

	cl = cartridgeloader.Loader{Filename: srv.URL + "/missing.pce"}
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.Loader{Filename: "ftp://example.com/game.pce"}
	err := cl.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.UnsupportedURL), true)
}
