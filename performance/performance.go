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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/hardware"
)

// the period of emulation before measurement begins. allows the framerate
// to settle down
const leadtime = 2 * time.Second

// Check the performance of the emulator. The System must have an image
// loaded.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, sys *hardware.System, duration string) error {
	if !sys.IsReady() {
		return curated.Errorf("performance: %v", curated.Errorf(hardware.NotReady))
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := sys.Frames()

	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadtime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		var timeout bool

		for !timeout {
			err := sys.RunForFrameCount(1, func(frame int) bool {
				select {
				case v := <-timerChan:
					if v {
						timeout = true
						return false
					}

					// leadtime has concluded
					startFrame = frame
				default:
				}
				return true
			})
			if err != nil {
				return err
			}
		}

		return nil
	}

	// launch runner through the profiler. RunProfiler() will not add any
	// profiling if the profile argument is ProfileNone
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := sys.Frames() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
