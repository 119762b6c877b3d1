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

// Package logger is the logging package used throughout the emulator. Log
// entries are made up of a tag and a detail string. The tag identifies the
// part of the emulation making the entry, for example "vdc" or "memory", and
// the detail is the message itself.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. This is important for emulation logging because a program
// stuck in a loop will often make the same illegal access many thousands of
// times.
//
// An instance of Logger can be created with NewLogger() or the central logger
// can be used with the package level functions. The hardware package receives
// a Logger instance so that tests can inspect exactly what was logged.
package logger
