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

package hardware

import "github.com/gopherpce/gopherpce/hardware/gamepad"

// Press a button on the gamepad of the player.
func (sys *System) Press(player int, button gamepad.Button) {
	sys.GamePad.Press(player, button)
}

// Release a button on the gamepad of the player.
func (sys *System) Release(player int, button gamepad.Button) {
	sys.GamePad.Release(player, button)
}

// AOn presses the A button of the player's gamepad.
func (sys *System) AOn(player int) {
	sys.Press(player, gamepad.A)
}

// AOff releases the A button of the player's gamepad.
func (sys *System) AOff(player int) {
	sys.Release(player, gamepad.A)
}

// BOn presses the B button of the player's gamepad.
func (sys *System) BOn(player int) {
	sys.Press(player, gamepad.B)
}

// BOff releases the B button of the player's gamepad.
func (sys *System) BOff(player int) {
	sys.Release(player, gamepad.B)
}

// StartOn presses the Start button of the player's gamepad.
func (sys *System) StartOn(player int) {
	sys.Press(player, gamepad.Start)
}

// StartOff releases the Start button of the player's gamepad.
func (sys *System) StartOff(player int) {
	sys.Release(player, gamepad.Start)
}

// SelectOn presses the Select button of the player's gamepad.
func (sys *System) SelectOn(player int) {
	sys.Press(player, gamepad.Select)
}

// SelectOff releases the Select button of the player's gamepad.
func (sys *System) SelectOff(player int) {
	sys.Release(player, gamepad.Select)
}

// UpOn presses the Up button of the player's gamepad.
func (sys *System) UpOn(player int) {
	sys.Press(player, gamepad.Up)
}

// UpOff releases the Up button of the player's gamepad.
func (sys *System) UpOff(player int) {
	sys.Release(player, gamepad.Up)
}

// DownOn presses the Down button of the player's gamepad.
func (sys *System) DownOn(player int) {
	sys.Press(player, gamepad.Down)
}

// DownOff releases the Down button of the player's gamepad.
func (sys *System) DownOff(player int) {
	sys.Release(player, gamepad.Down)
}

// LeftOn presses the Left button of the player's gamepad.
func (sys *System) LeftOn(player int) {
	sys.Press(player, gamepad.Left)
}

// LeftOff releases the Left button of the player's gamepad.
func (sys *System) LeftOff(player int) {
	sys.Release(player, gamepad.Left)
}

// RightOn presses the Right button of the player's gamepad.
func (sys *System) RightOn(player int) {
	sys.Press(player, gamepad.Right)
}

// RightOff releases the Right button of the player's gamepad.
func (sys *System) RightOff(player int) {
	sys.Release(player, gamepad.Right)
}
