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

// Package cartridgeloader is used to specify the ROM image that is to be
// loaded into the emulated console.
//
// When the image is ready to be loaded the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/game.pce",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function checks that the filename extension is one that is
// recognised.
//
// If the Hash field is set before calling Load() then the hash of the loaded
// data is checked against it.
package cartridgeloader
