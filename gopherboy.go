// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/performance"
	"github.com/jetsetilly/gopherboy/playmode"
	"github.com/jetsetilly/gopherboy/statsview"
	"github.com/jetsetilly/gopherboy/version"
)

func init() {
	// SDL2 requires initialisation, event handling and rendering to all
	// happen on the main thread
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scaling := md.AddFloat64("scale", 3.0, "display scaling")
	fpsCap := md.AddBool("fpscap", true, "cap FPS to the hardware frame rate")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return playmode.Play(cartload, float32(*scaling), *fpsCap)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, ALL, NONE")
	stats := md.AddBool("statsview", false, "run the runtime stats viewer (requires the statsview build tag)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			fmt.Println("! statsview is not available in this build")
		} else {
			statsview.Launch(md.Output)
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return performance.Check(md.Output, prof, cartload, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, version.Version())

	return nil
}
