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

// Package preferences holds the configuration of the emulated hardware. An
// instance of Preferences is created once and passed to the System at
// construction. Components consult the values they need at the point of use
// so that changes take effect immediately.
//
// The trace preferences implement the logger.Permission interface and decide
// whether a component's register activity is written to the log.
package preferences
