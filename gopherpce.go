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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/gopherpce/gopherpce/cartridgeloader"
	"github.com/gopherpce/gopherpce/curated"
	"github.com/gopherpce/gopherpce/digest"
	"github.com/gopherpce/gopherpce/disassembly"
	"github.com/gopherpce/gopherpce/hardware"
	"github.com/gopherpce/gopherpce/hardware/preferences"
	"github.com/gopherpce/gopherpce/logger"
	"github.com/gopherpce/gopherpce/modalflag"
	"github.com/gopherpce/gopherpce/monitor"
	"github.com/gopherpce/gopherpce/paths"
	"github.com/gopherpce/gopherpce/performance"
	"github.com/gopherpce/gopherpce/screenshot"
	"github.com/gopherpce/gopherpce/statsview"
	"github.com/gopherpce/gopherpce/version"
	"github.com/gopherpce/gopherpce/wavwriter"
)

// Sentinel error patterns.
const (
	romRequired  = "ROM image required for %s mode"
	tooManyArgs  = "too many arguments for %s mode"
	unknownChip  = "unknown chip for tracing (%s)"
	stoppedError = "emulation stopped with error: %s"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// the main thread should ignore interrupt signals. used when the mode
	// has its own handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	intSig := true

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			if intSig {
				fmt.Println("\r")
				done = true
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				intSig = false
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "PERFORMANCE", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "MONITOR":
		err = monitorMode(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "DISASM":
		err = disasm(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode that creates a System.
type systemFlags struct {
	log       *bool
	trace     *string
	statsview *bool
}

func addSystemFlags(md *modalflag.Modes) systemFlags {
	return systemFlags{
		log:       md.AddBool("log", false, "echo log to stdout"),
		trace:     md.AddString("trace", "", "comma separated list of chips to trace: CPU, MEMORY, VDC, PSG, PALETTE, TIMER, IRQ, GAMEPAD"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%v)", statsview.Available())),
	}
}

// newSystem creates and loads the System using the single remaining
// argument of the current mode as the ROM filename.
func newSystem(md *modalflag.Modes, flgs systemFlags) (*hardware.System, cartridgeloader.Loader, error) {
	var cl cartridgeloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, cl, curated.Errorf(romRequired, md)
	case 1:
	default:
		return nil, cl, curated.Errorf(tooManyArgs, md)
	}

	log := logger.NewLogger(1000)
	if *flgs.log {
		log.SetEcho(logger.NewColorizer(os.Stdout))
	}

	if *flgs.statsview {
		err := statsview.Launch(log)
		if err != nil {
			return nil, cl, err
		}
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		log.Logf(logger.Allow, "gopherpce", "using default preferences: %v", err)
		prefs = preferences.NewDefaultPreferences()
	}

	err = setTrace(prefs, *flgs.trace)
	if err != nil {
		return nil, cl, err
	}

	cl, err = cartridgeloader.NewLoader(md.GetArg(0))
	if err != nil {
		return nil, cl, err
	}

	err = cl.Load()
	if err != nil {
		return nil, cl, err
	}

	sys := hardware.NewSystem(prefs, log)
	err = sys.Load(cl.Data)
	if err != nil {
		return nil, cl, err
	}

	log.Logf(logger.Allow, "gopherpce", "loaded %s (%s)", cl.ShortName(), cl.Hash)

	return sys, cl, nil
}

// setTrace enables tracing for the chips named in the comma separated list.
func setTrace(prefs *preferences.Preferences, list string) error {
	if list == "" {
		return nil
	}

	for _, s := range strings.Split(list, ",") {
		var err error

		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "CPU":
			err = prefs.Trace.CPU.Set(true)
		case "MEMORY":
			err = prefs.Trace.Memory.Set(true)
		case "VDC":
			err = prefs.Trace.VDC.Set(true)
		case "PSG":
			err = prefs.Trace.PSG.Set(true)
		case "PALETTE":
			err = prefs.Trace.Palette.Set(true)
		case "TIMER":
			err = prefs.Trace.Timer.Set(true)
		case "IRQ":
			err = prefs.Trace.IRQ.Set(true)
		case "GAMEPAD":
			err = prefs.Trace.GamePad.Set(true)
		default:
			return curated.Errorf(unknownChip, s)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	ms := md.AddFloat64("ms", 1000, "milliseconds of emulated time to run for")
	shot := md.AddBool("screenshot", false, "save screenshot on completion")
	scale := md.AddInt("scale", 2, "screenshot scaling")
	wav := md.AddBool("wav", false, "record PSG output to wav file")
	dig := md.AddBool("digest", false, "print digest of video output")
	viz := md.AddBool("memviz", false, "write memviz graph on completion")
	dump := md.AddBool("dump", false, "print chip state on completion")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, cl, err := newSystem(md, flgs)
	if err != nil {
		return err
	}

	if *wav || *dig {
		// run frame by frame so that audio and video can be captured
		var aw *wavwriter.WavWriter
		if *wav {
			aw, err = wavwriter.New(sys.Log(), paths.UniqueFilename("wav", cl.ShortName())+".wav")
			if err != nil {
				return err
			}
		}

		var vid *digest.Video
		if *dig {
			vid, err = digest.NewVideo(sys, screenshot.DefaultWidth, screenshot.DefaultHeight)
			if err != nil {
				return err
			}
		}

		var frameErr error
		numFrames := int(*ms * performance.FramesPerSecond / 1000)
		err = sys.RunForFrameCount(numFrames, func(_ int) bool {
			if aw != nil {
				aw.Sample(sys.PSG, 1.0/performance.FramesPerSecond)
			}
			if vid != nil {
				frameErr = vid.NewFrame()
				if frameErr != nil {
					return false
				}
			}
			return true
		})
		if err != nil {
			return err
		}
		if frameErr != nil {
			return frameErr
		}

		if aw != nil {
			err = aw.EndMixing()
			if err != nil {
				return err
			}
		}

		if vid != nil {
			fmt.Fprintf(md.Output, "%s (%d frames)\n", vid.Hash(), vid.Frames())
		}
	} else {
		err = sys.Run(*ms)
		if err != nil {
			return err
		}
	}

	if *shot {
		fn := paths.UniqueFilename("screenshot", cl.ShortName()) + ".png"
		err = screenshot.Save(sys, screenshot.DefaultWidth, screenshot.DefaultHeight, *scale, fn)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "screenshot saved to %s\n", fn)
	}

	if *viz {
		fn := paths.UniqueFilename("memviz", cl.ShortName()) + ".dot"
		err = monitor.WriteMemviz(sys, fn)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "memviz graph saved to %s\n", fn)
	}

	if *dump {
		sys.Dump(md.Output)
		fmt.Fprintln(md.Output)
	}

	if sys.Error() {
		return curated.Errorf(stoppedError, sys.CPU)
	}

	return nil
}

func monitorMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flgs := addSystemFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, _, err := newSystem(md, flgs)
	if err != nil {
		return err
	}

	term, err := monitor.OpenTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	mon, err := monitor.NewMonitor(sys, sys.Log(), term, os.Stdout)
	if err != nil {
		return err
	}

	// the terminal must be restored before the program ends so the monitor
	// handles ctrl-c itself
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		<-intChan
		mon.Interrupt()
	}()

	return mon.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	sys, _, err := newSystem(md, flgs)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, sys, *duration)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	from := md.AddAddress("from", 0xe000, "address of first instruction")
	count := md.AddInt("count", 32, "number of instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, _, err := newSystem(md, flgs)
	if err != nil {
		return err
	}

	entries := disassembly.FromMemory(sys.Mem, uint16(*from), *count)
	return disassembly.Write(md.Output, entries)
}
