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

package preferences

import (
	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/paths"
	"github.com/gopherpce/gopherpce/prefs"
)

// default values.
const (
	defaultFrameSkip          = 0
	defaultIdleSkip           = 500
	defaultVRAMIncrementReset = 1
)

// Trace collates the preferences that control logging of register activity
// for each part of the hardware. Each value implements the logger.Permission
// interface and can be passed directly to the component being traced.
type Trace struct {
	CPU     prefs.Bool
	Memory  prefs.Bool
	VDC     prefs.Bool
	PSG     prefs.Bool
	Palette prefs.Bool
	Timer   prefs.Bool
	IRQ     prefs.Bool
	GamePad prefs.Bool
}

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// number of vsync intervals to skip between each decode of the video
	// bitmap. zero means every frame is decoded
	FrameSkip prefs.Int

	// number of cycles to fast-forward for each step while the CPU is in an
	// idle loop
	IdleSkip prefs.Int

	// value of the VRAM pointer increment after a reset of the VDC. the value
	// changes when the VDC control register is written
	VRAMIncrementReset prefs.Int

	Trace Trace
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewDefaultPreferences returns an instance of Preferences with default
// values and no backing file. Load() and Save() have no effect.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

func newPreferences(pth string) (*Preferences, error) {
	p := NewDefaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.frameskip", &p.FrameSkip)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.idleskip", &p.IdleSkip)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.vdc.incrementreset", &p.VRAMIncrementReset)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace.cpu", &p.Trace.CPU)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace.memory", &p.Trace.Memory)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace.vdc", &p.Trace.VDC)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace.psg", &p.Trace.PSG)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace.palette", &p.Trace.Palette)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace.timer", &p.Trace.Timer)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace.irq", &p.Trace.IRQ)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace.gamepad", &p.Trace.GamePad)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all values to their default. Values are not saved.
func (p *Preferences) SetDefaults() {
	_ = p.FrameSkip.Set(defaultFrameSkip)
	_ = p.IdleSkip.Set(defaultIdleSkip)
	_ = p.VRAMIncrementReset.Set(defaultVRAMIncrementReset)
	_ = p.Trace.CPU.Set(false)
	_ = p.Trace.Memory.Set(false)
	_ = p.Trace.VDC.Set(false)
	_ = p.Trace.PSG.Set(false)
	_ = p.Trace.Palette.Set(false)
	_ = p.Trace.Timer.Set(false)
	_ = p.Trace.IRQ.Set(false)
	_ = p.Trace.GamePad.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
