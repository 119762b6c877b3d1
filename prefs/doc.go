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

// Package prefs facilitates the storage of preference values. Preference
// values are typed (Bool, Int, String) and can be registered with a Disk
// instance so that they can be saved to and loaded from a file.
//
// The file format is simple. The first line is a warning not to edit the file
// by hand and every following line is a key/value pair separated by " :: ".
// Keys from other Disk instances sharing the same file are preserved when a
// Disk is saved.
//
// Preference values can also be set on the command line. A group of values is
// pushed onto the stack with PushCommandLineStack() and consumed by the next
// call to Disk.Load(). For example:
//
//	prefs.PushCommandLineStack("hardware.idleskip::100; hardware.frameskip::1")
//
// Values that are set on the command line are not saved to disk unless the
// Save() function is called explicitly.
package prefs
