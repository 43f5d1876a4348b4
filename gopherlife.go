// This file is part of Gopherlife.
//
// Gopherlife is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherlife is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherlife.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherlife/curated"
	"github.com/jetsetilly/gopherlife/gui"
	"github.com/jetsetilly/gopherlife/gui/headless"
	"github.com/jetsetilly/gopherlife/gui/sdlleds"
	"github.com/jetsetilly/gopherlife/gui/termleds"
	"github.com/jetsetilly/gopherlife/hardware"
	"github.com/jetsetilly/gopherlife/hardware/buttons"
	"github.com/jetsetilly/gopherlife/hardware/frame"
	"github.com/jetsetilly/gopherlife/logger"
	"github.com/jetsetilly/gopherlife/modalflag"
	"github.com/jetsetilly/gopherlife/paths"
	"github.com/jetsetilly/gopherlife/performance"
	"github.com/jetsetilly/gopherlife/random"
	"github.com/jetsetilly/gopherlife/recorder"
	"github.com/jetsetilly/gopherlife/statsview"
	"github.com/jetsetilly/gopherlife/version"
	"github.com/jetsetilly/gopherlife/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// add a function to the list of functions to run before the program
	// ends. functions are run in the reverse order to which they were added.
	//
	// takes a func() error argument.
	reqCleanup stateReq = "CLEANUP"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread. It should
	// service all gui events that are not safe to do in sub-threads.
	//
	// Returns false if the gui has been closed by the user.
	Service() bool
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// SDL requires that the main goroutine stays on the main thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// functions to run before exiting
	var cleanup []func() error

	// #ctrlc handler. in the case of the terminal display, ctrl-c does not
	// cause an interrupt signal and is handled by the termleds package
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	var win GuiCreator

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	// if there is no gui the loop blocks until one of the first three happens
	done := false
	for !done {
		var creator func() (GuiCreator, error)
		var state stateRequest
		var stateOk bool

		if win == nil {
			select {
			case <-intChan:
				done = true
			case creator = <-sync.creator:
			case state = <-sync.state:
				stateOk = true
			}
		} else {
			select {
			case <-intChan:
				done = true
			case creator = <-sync.creator:
			case state = <-sync.state:
				stateOk = true
			default:
				if !win.Service() {
					done = true
				}
			}
		}

		if creator != nil {
			// destroy existing gui
			if win != nil {
				win.Destroy()
				win = nil
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				win = g
				sync.creation <- win
			}
		}

		if stateOk {
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

			case reqCleanup:
				if f, ok := state.args.(func() error); ok {
					cleanup = append(cleanup, f)
				} else {
					panic(fmt.Sprintf("%s requires a func() error argument", reqCleanup))
				}
			}
		}
	}

	for i := len(cleanup) - 1; i >= 0; i-- {
		if err := cleanup[i](); err != nil {
			fmt.Printf("* error: %v\n", err)
			if exitVal == 0 {
				exitVal = 30
			}
		}
	}

	if win != nil {
		win.Destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PLAYBACK", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		// 10
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "PLAYBACK":
		err = playback(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Println(version.Get())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// addCleanup asks the main thread to run the function before the program
// ends.
func addCleanup(sync *mainSync, f func() error) {
	sync.state <- stateRequest{req: reqCleanup, args: f}
}

// host is the display and the pins of the buttons that the device is running
// with.
type host struct {
	display hardware.Display
	pinA    buttons.Pin
	pinB    buttons.Pin
}

// the list of values accepted by the -display flag.
var displayTypes = []string{"SDL", "TERM", "HEADLESS"}

func createHost(displayType string, scale int, verbose bool, sync *mainSync) (host, error) {
	switch displayType {
	case "SDL":
		sync.creator <- func() (GuiCreator, error) {
			leds, err := sdlleds.NewLEDs(scale)
			if err != nil {
				return nil, err
			}
			return leds, nil
		}

		select {
		case g := <-sync.creation:
			leds := g.(*sdlleds.LEDs)
			return host{display: leds, pinA: leds.PinA(), pinB: leds.PinB()}, nil
		case err := <-sync.creationError:
			return host{}, err
		}

	case "TERM":
		leds, err := termleds.NewLEDs(func() {
			sync.state <- stateRequest{req: reqQuit}
		})
		if err != nil {
			return host{}, err
		}
		addCleanup(sync, func() error {
			leds.CleanUp()
			return nil
		})
		return host{display: leds, pinA: leds.PinA(), pinB: leds.PinB()}, nil

	case "HEADLESS":
		hl := headless.NewHeadless(false, verbose)
		return host{display: hl, pinA: headless.Open{}, pinB: headless.Open{}}, nil
	}

	return host{}, curated.Errorf("unknown display type (%s)", displayType)
}

// observers that can be attached to any host display.
type observers struct {
	displays []hardware.Display
}

func (obs *observers) addWav(filename string, sync *mainSync) error {
	if filename == "" {
		return nil
	}
	aw, err := wavwriter.New(filename)
	if err != nil {
		return err
	}
	obs.displays = append(obs.displays, aw)
	addCleanup(sync, aw.EndMixing)
	return nil
}

func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	display := md.AddChoice("display", "SDL", displayTypes, "display type")
	scale := md.AddInt("scale", 2, "scaling of SDL window")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	record := md.AddBool("record", false, "record button input to a transcript file")
	wav := md.AddString("wav", "", "record audio trace to wav file")
	memvizFile := md.AddString("memviz", "", "write graph of the controller to file (graphviz dot format)")
	stats := md.AddBool("statsview", false, "run stats server (requires statsview build tag)")
	seed := md.AddInt64("seed", 0, "seed for random number generator (zero for a seed based on the current time)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	setLogEcho(*log)

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}

	rnd := random.NewRandom(*seed)

	hst, err := createHost(*display, *scale, *log, sync)
	if err != nil {
		return err
	}

	obs := &observers{}
	err = obs.addWav(*wav, sync)
	if err != nil {
		return err
	}

	pinA := hst.pinA
	pinB := hst.pinB

	if *record {
		f, err := os.Create(paths.UniqueFilename("recording", "txt"))
		if err != nil {
			return curated.Errorf("recorder: %v", err)
		}

		rec, err := recorder.NewRecorder(f, rnd.Seed(), pinA, pinB)
		if err != nil {
			_ = f.Close()
			return err
		}

		pinA = rec.PinA()
		pinB = rec.PinB()
		obs.displays = append(obs.displays, rec)

		addCleanup(sync, func() error {
			err := rec.End()
			if err != nil {
				_ = f.Close()
				return err
			}
			err = f.Close()
			if err != nil {
				return curated.Errorf("recorder: %v", err)
			}
			fmt.Printf("! recording completed (%d frames in %s)\n", rec.Frames(), f.Name())
			return nil
		})
	}

	periph, err := hardware.NewPeripherals(gui.NewTee(hst.display, obs.displays...), rnd, pinA, pinB)
	if err != nil {
		return err
	}

	ctl := frame.NewController(periph)

	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, ctl)
		if err != nil {
			return err
		}
	}

	// run forever. the program ends when the main thread decides it should
	ctl.Run()

	return nil
}

func writeMemviz(filename string, ctl *frame.Controller) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()
	memviz.Map(f, ctl)
	return nil
}

func playback(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	display := md.AddChoice("display", "HEADLESS", displayTypes, "display type")
	scale := md.AddInt("scale", 2, "scaling of SDL window")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	wav := md.AddString("wav", "", "record audio trace to wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("transcript required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	setLogEcho(*log)

	plb, err := openPlayback(md.GetArg(0))
	if err != nil {
		return err
	}

	rnd := random.NewRandom(plb.Seed())
	rnd.ZeroSeed = plb.Seed() == 0

	hst, err := createHost(*display, *scale, *log, sync)
	if err != nil {
		return err
	}

	obs := &observers{displays: []hardware.Display{plb}}
	err = obs.addWav(*wav, sync)
	if err != nil {
		return err
	}

	// the pins of the host are not used during playback
	periph, err := hardware.NewPeripherals(gui.NewTee(hst.display, obs.displays...), rnd, plb.PinA(), plb.PinB())
	if err != nil {
		return err
	}

	ctl := frame.NewController(periph)
	ctl.RunUntil(func() bool {
		return !plb.End() && plb.Err() == nil
	})

	if err := plb.Err(); err != nil {
		return err
	}

	fmt.Printf("! playback completed: %s\n", plb)

	return nil
}

func openPlayback(filename string) (*recorder.Playback, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	defer f.Close()
	return recorder.NewPlayback(f)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	uncapped := md.AddBool("uncapped", true, "run controller without frame rate limit")
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s lead-in)")
	profile := md.AddString("profile", "NONE", "create profile reports: CPU, MEM, TRACE, ALL (comma separated)")
	seed := md.AddInt64("seed", 0, "seed for random number generator (zero for a seed based on the current time)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	setLogEcho(*log)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, *uncapped, *seed, *duration)
}
