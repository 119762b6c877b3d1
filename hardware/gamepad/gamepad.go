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

// Package gamepad implements the joypad port. Up to four players are
// supported although only the currently selected player can be read.
//
// Buttons are active-low. A released button reads as 1 and a pressed button
// reads as 0.
package gamepad

import (
	"fmt"
	"strings"

	"github.com/gopherpce/gopherpce/logger"
)

// MaxPlayers is the number of joypads that can be connected.
const MaxPlayers = 4

// Button identifies one of the eight buttons on a joypad.
type Button int

// List of valid Button values.
const (
	A Button = iota
	B
	Select
	Start
	Up
	Right
	Down
	Left
	numButtons
)

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "SELECT"
	case Start:
		return "START"
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	}
	return "unknown"
}

// button levels.
const (
	on  = 0
	off = 1
)

// Buttons is the state of each button for a single player. Each entry is
// either 0 (pressed) or 1 (released).
type Buttons [numButtons]uint8

func (b Buttons) String() string {
	s := strings.Builder{}
	for i, v := range b {
		if v == on {
			s.WriteString(Button(i).String())
			s.WriteRune(' ')
		}
	}
	return strings.TrimSpace(s.String())
}

// GamePad is the joypad peripheral.
type GamePad struct {
	log  *logger.Logger
	perm logger.Permission

	players   [MaxPlayers]Buttons
	playerSel int

	// selects which nibble is returned by Read()
	buttonSel uint8
}

// NewGamePad is the preferred method of initialisation for the GamePad type.
func NewGamePad(log *logger.Logger, perm logger.Permission) *GamePad {
	gp := &GamePad{
		log:  log,
		perm: perm,
	}
	gp.Reset()
	return gp
}

// Reset releases all buttons and selects the first player.
func (gp *GamePad) Reset() {
	for p := range gp.players {
		for b := range gp.players[p] {
			gp.players[p][b] = off
		}
	}
	gp.playerSel = 0
	gp.buttonSel = 0
}

func (gp *GamePad) String() string {
	return fmt.Sprintf("player=%d select=%d [%s]", gp.playerSel, gp.buttonSel, gp.players[gp.playerSel])
}

// Press the button for the player. Players outside the valid range are
// ignored.
func (gp *GamePad) Press(player int, button Button) {
	gp.set(player, button, on)
}

// Release the button for the player.
func (gp *GamePad) Release(player int, button Button) {
	gp.set(player, button, off)
}

func (gp *GamePad) set(player int, button Button, level uint8) {
	if player < 0 || player >= MaxPlayers || button < 0 || button >= numButtons {
		gp.log.Logf(gp.perm, "gamepad", "invalid button (player %d, button %d)", player, button)
		return
	}
	gp.players[player][button] = level
}

// IsPressed returns true if the button for the player is currently pressed.
func (gp *GamePad) IsPressed(player int, button Button) bool {
	if player < 0 || player >= MaxPlayers || button < 0 || button >= numButtons {
		return false
	}
	return gp.players[player][button] == on
}

// SelectPlayer changes which player is returned by Read().
func (gp *GamePad) SelectPlayer(player int) {
	if player < 0 || player >= MaxPlayers {
		return
	}
	gp.playerSel = player
}

// Read implements the hwbank.Port interface.
func (gp *GamePad) Read(_ uint16) uint8 {
	p := gp.players[gp.playerSel]
	if gp.buttonSel == 0 {
		return p[B] | p[A]<<1 | p[Select]<<2 | p[Start]<<3
	}
	return p[Up] | p[Right]<<1 | p[Down]<<2 | p[Left]<<3
}

// Write implements the hwbank.Port interface.
func (gp *GamePad) Write(_ uint16, data uint8) {
	gp.buttonSel = data & 0x01
}
