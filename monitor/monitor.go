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
	"fmt"
	"io"
	"sync"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/disassembly"
	"github.com/gopherpce/gopherpce/hardware"
	"github.com/gopherpce/gopherpce/hardware/gamepad"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/performance"
	"github.com/gopherpce/gopherpce/performance/limiter"
)

// number of instructions shown by the disassemble command.
const disasmCount = 8

// gamepad button toggled by each key.
var buttonKeys = map[byte]gamepad.Button{
	'w': gamepad.Up,
	'a': gamepad.Left,
	's': gamepad.Down,
	'd': gamepad.Right,
	'j': gamepad.B,
	'k': gamepad.A,
	'n': gamepad.Select,
	'm': gamepad.Start,
}

// Monitor reads single key commands and applies them to the System.
type Monitor struct {
	sys    *hardware.System
	log    *logger.Logger
	output io.Writer

	keys chan byte

	// closed by Interrupt()
	quit     chan struct{}
	quitOnce sync.Once

	// the emulation is running continuously
	running bool
	lim     *limiter.FpsLimiter

	// prefix of files written by the memviz command
	VizPrefix string
	vizCount  int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The System must have an image loaded. Keys are read from input until it is
// exhausted.
func NewMonitor(sys *hardware.System, log *logger.Logger, input io.Reader, output io.Writer) (*Monitor, error) {
	if !sys.IsReady() {
		return nil, curated.Errorf("monitor: %v", curated.Errorf(hardware.NotReady))
	}

	lim, err := limiter.NewFPSLimiter(performance.FramesPerSecond)
	if err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}

	mon := &Monitor{
		sys:       sys,
		log:       log,
		output:    output,
		keys:      make(chan byte, 16),
		quit:      make(chan struct{}),
		lim:       lim,
		VizPrefix: "gopherpce_memviz",
	}

	go func() {
		defer close(mon.keys)
		b := make([]byte, 1)
		for {
			n, err := input.Read(b)
			if n > 0 {
				mon.keys <- b[0]
			}
			if err != nil {
				return
			}
		}
	}()

	return mon, nil
}

func (mon *Monitor) printf(format string, args ...any) {
	io.WriteString(mon.output, fmt.Sprintf(format, args...))
}

// Interrupt causes Run() to return as soon as possible. It is safe to call
// from any goroutine and more than once.
func (mon *Monitor) Interrupt() {
	mon.quitOnce.Do(func() {
		close(mon.quit)
	})
}

// Run the monitor until the quit command, the end of input or a call to
// Interrupt(). Errors from the emulation are printed and do not end the
// monitor.
func (mon *Monitor) Run() error {
	defer mon.lim.Stop()

	mon.printf("%s\n", mon.sys.CPU)

	for {
		var key byte
		var ok bool

		if mon.running {
			select {
			case <-mon.quit:
				return nil
			case key, ok = <-mon.keys:
				if !ok {
					return nil
				}
			default:
				mon.lim.Wait()
				if err := mon.sys.RunForFrameCount(1, nil); err != nil {
					mon.running = false
					mon.printf("%v\n", err)
				}
				continue // for loop
			}
		} else {
			select {
			case <-mon.quit:
				return nil
			case key, ok = <-mon.keys:
				if !ok {
					return nil
				}
			}
		}

		quit, err := mon.command(key)
		if err != nil {
			mon.printf("%v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// command performs the action for a single key press.
func (mon *Monitor) command(key byte) (bool, error) {
	if b, ok := buttonKeys[key]; ok {
		if mon.sys.GamePad.IsPressed(0, b) {
			mon.sys.Release(0, b)
			mon.printf("%s released\n", b)
		} else {
			mon.sys.Press(0, b)
			mon.printf("%s pressed\n", b)
		}
		return false, nil
	}

	switch key {
	case 'q', 'Q':
		return true, nil

	case '.':
		if err := mon.sys.Step(1); err != nil {
			return false, err
		}
		mon.printf("%s\n", disassembly.FormatResult(mon.sys.CPU.LastResult))

	case ',':
		if err := mon.sys.RunForFrameCount(1, nil); err != nil {
			return false, err
		}
		mon.printf("frame %d: %s\n", mon.sys.Frames(), mon.sys.CPU)

	case ' ':
		mon.running = !mon.running
		if mon.running {
			mon.printf("running\n")
		} else {
			mon.printf("stopped at frame %d: %s\n", mon.sys.Frames(), mon.sys.CPU)
		}

	case 'D':
		mon.sys.Dump(mon.output)
		mon.printf("\n")

	case 'L':
		entries := disassembly.FromMemory(mon.sys.Mem, mon.sys.CPU.PC.Address(), disasmCount)
		if err := disassembly.Write(mon.output, entries); err != nil {
			return false, curated.Errorf("monitor: %v", err)
		}

	case 'V':
		mon.vizCount++
		fn := fmt.Sprintf("%s_%d.dot", mon.VizPrefix, mon.vizCount)
		if err := WriteMemviz(mon.sys, fn); err != nil {
			return false, err
		}
		mon.log.Logf(logger.Allow, "monitor", "memviz written to %s", fn)
		mon.printf("memviz written to %s\n", fn)

	case 'R':
		mon.sys.Reset()
		mon.printf("reset: %s\n", mon.sys.CPU)

	case 'h', '?':
		mon.printf("%s", help)

	case '\n', '\r':

	default:
		mon.printf("unknown command (%q). h for help\n", key)
	}

	return false, nil
}

const help = `.     step instruction
,     step frame
space run/stop
D     dump state
L     disassemble
V     memviz
R     reset
q     quit
wasd  up/left/down/right
jknm  B/A/select/start
`
