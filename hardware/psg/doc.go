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

// Package psg implements the register state of the programmable sound
// generator. There are six channels each with a 32 entry wavetable of 5-bit
// samples, a frequency period and left/right volume. Channels can also be put
// into direct-digital-audio (DDA) mode or noise mode.
//
// No audio is generated by the package. The state is used by debugging tools
// and by the wavwriter package, which renders channel wavetables to disk.
package psg
