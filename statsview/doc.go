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

// Package statsview offers runtime statistics of the emulator over HTTP. The
// server is only included when the program is built with the statsview build
// tag. Without the tag, Available() returns false and Launch() reports an
// error.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// Once launched, graphs are viewable at:
//
//	localhost:12640/debug/statsview
//
// And standard Go pprof statistics are at:
//
//	localhost:12640/debug/pprof/
package statsview
