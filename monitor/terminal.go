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

package monitor

import (
	"github.com/gopherpce/gopherpce/curated"
	"github.com/pkg/term"
)

// Terminal is the controlling terminal in cbreak mode. Key presses are
// available immediately without waiting for the return key.
type Terminal struct {
	*term.Term
}

// OpenTerminal puts the controlling terminal into cbreak mode. Close() must
// be called to return the terminal to its original state.
func OpenTerminal() (*Terminal, error) {
	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("monitor: terminal: %v", err)
	}
	return &Terminal{Term: t}, nil
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	err := t.Term.Restore()
	if err != nil {
		t.Term.Close()
		return curated.Errorf("monitor: terminal: %v", err)
	}
	err = t.Term.Close()
	if err != nil {
		return curated.Errorf("monitor: terminal: %v", err)
	}
	return nil
}
