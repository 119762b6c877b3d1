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

package gamepad_test

import (
	"testing"

	"github.com/gopherpce/gopherpce/hardware/gamepad"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/test"
)

func TestReleased(t *testing.T) {
	gp := gamepad.NewGamePad(logger.NewLogger(10), logger.Allow)

	gp.Write(0, 0)
	test.ExpectEquality(t, gp.Read(0), 0x0f)
	gp.Write(0, 1)
	test.ExpectEquality(t, gp.Read(0), 0x0f)
}

func TestButtonNibble(t *testing.T) {
	gp := gamepad.NewGamePad(logger.NewLogger(10), logger.Allow)

	gp.Press(0, gamepad.A)
	gp.Press(0, gamepad.Start)
	gp.Write(0, 0)
	test.ExpectEquality(t, gp.Read(0), 0b0101)

	gp.Release(0, gamepad.A)
	gp.Press(0, gamepad.B)
	test.ExpectEquality(t, gp.Read(0), 0b0110)
	test.ExpectEquality(t, gp.String(), "player=0 select=0 [B START]")
}

func TestDirectionNibble(t *testing.T) {
	gp := gamepad.NewGamePad(logger.NewLogger(10), logger.Allow)

	gp.Press(0, gamepad.Up)
	gp.Press(0, gamepad.Left)
	gp.Write(0, 1)
	test.ExpectEquality(t, gp.Read(0), 0b0110)

	// buttons are unaffected by directions
	gp.Write(0, 0)
	test.ExpectEquality(t, gp.Read(0), 0x0f)
}

func TestPlayers(t *testing.T) {
	log := logger.NewLogger(10)
	gp := gamepad.NewGamePad(log, logger.Allow)

	gp.Press(1, gamepad.A)
	test.ExpectEquality(t, gp.Read(0), 0x0f)
	test.ExpectSuccess(t, gp.IsPressed(1, gamepad.A))

	gp.SelectPlayer(1)
	test.ExpectEquality(t, gp.Read(0), 0x0d)

	// invalid player is logged and ignored
	gp.Press(4, gamepad.A)
	test.ExpectEquality(t, log.Len(), 1)
}
