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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/hardware"
	"github.com/gopherpce/gopherpce/hardware/vdc"
)

// the console state as shown by memviz. memory arrays are omitted because
// they would overwhelm the graph.
type vizState struct {
	CPU     *vizCPU
	MPR     [8]uint8
	VDC     *vizVDC
	Timer   *vizTimer
	Frames  int
	Ticks   int
	GamePad string
}

type vizCPU struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status string
}

type vizVDC struct {
	Status   vdc.Status
	Control  vdc.Control
	Geometry vdc.Geometry
	DMA      vdc.DMAControl
	Sprites  []vdc.Sprite
}

type vizTimer struct {
	Counter int
	Max     int
	Pending bool
}

func newVizState(sys *hardware.System) *vizState {
	st := &vizState{
		CPU: &vizCPU{
			PC:     sys.CPU.PC.Address(),
			A:      sys.CPU.A.Value(),
			X:      sys.CPU.X.Value(),
			Y:      sys.CPU.Y.Value(),
			SP:     sys.CPU.SP.Value(),
			Status: sys.CPU.Status.String(),
		},
		VDC: &vizVDC{
			Status:   sys.VDC.Status,
			Control:  sys.VDC.Control,
			Geometry: sys.VDC.Geometry,
			DMA:      sys.VDC.DMAControl,
		},
		Timer: &vizTimer{
			Counter: sys.Timer.Counter(),
			Max:     sys.Timer.Max(),
			Pending: sys.Timer.Pending(),
		},
		Frames:  sys.Frames(),
		Ticks:   sys.CPU.Ticks(),
		GamePad: sys.GamePad.String(),
	}

	for i := range st.MPR {
		st.MPR[i] = sys.Mem.MPR(i)
	}

	// sprites at the origin are unused
	for _, s := range sys.VDC.SATB() {
		if s.X != 0 || s.Y != 0 || s.Pattern != 0 {
			st.VDC.Sprites = append(st.VDC.Sprites, s)
		}
	}

	return st
}

// WriteMemviz writes a graphviz rendering of the console state to filename.
func WriteMemviz(sys *hardware.System, filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	memviz.Map(f, newVizState(sys))

	return nil
}
