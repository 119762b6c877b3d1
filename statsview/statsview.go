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

//go:build statsview

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/gopherpce/gopherpce/logger"
)

// Address of the statistics server.
const Address = "localhost:12640"

const url = "/debug/statsview"

// Launch the statistics server in a new goroutine. The server runs until the
// program ends.
func Launch(log *logger.Logger) error {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go func() {
		mgr.Start()
	}()

	log.Logf(logger.Allow, "statsview", "stats server available at %s%s", Address, url)
	return nil
}

// Available returns true if the statistics server has been compiled in.
func Available() bool {
	return true
}
