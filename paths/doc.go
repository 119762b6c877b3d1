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

// Package paths contains functions to prepare paths to GopherPCE resources.
//
// The ResourcePath() function prepends the supplied resource path with the
// appropriate config directory. For example, the following will return the
// path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the base path is ".gopherpce" in the current
// directory. For release builds (the "release" build tag) the user's config
// directory, as returned by os.UserConfigDir(), is used instead. On a modern
// Linux system the path returned in the example would be:
//
//	/home/user/.config/gopherpce/preferences
//
// The directory is created if it does not exist.
package paths
