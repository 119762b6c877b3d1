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

//go:build !statsview

package statsview

import (
	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/logger"
)

// Launch always fails when the statistics server has not been compiled in.
func Launch(_ *logger.Logger) error {
	return curated.Errorf("statsview: %v", "not available in this build (use the statsview build tag)")
}

// Available returns true if the statistics server has been compiled in.
func Available() bool {
	return false
}
