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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/gopherboy/paths"
)

// Profile defines the different profiling methods.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// ParseProfileString converts a string to a Profile value.
func ParseProfileString(spec string) (Profile, error) {
	switch strings.ToUpper(spec) {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "ALL":
		return ProfileAll, nil
	}
	return ProfileNone, fmt.Errorf("unknown profile type (%s)", spec)
}

// the directory profiles are written to.
const profileDir = "profiling"

// RunProfiler runs the supplied function, optionally capturing a CPU
// profile for its duration and a heap profile at its end. The tag is used
// to name the profile files.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile == ProfileCPU || profile == ProfileAll {
		pth, err := paths.ResourcePath(profileDir, tag+"_cpu.profile")
		if err != nil {
			return err
		}

		f, err := os.Create(pth)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileAll {
		pth, err := paths.ResourcePath(profileDir, tag+"_mem.profile")
		if err != nil {
			return err
		}

		f, err := os.Create(pth)
		if err != nil {
			return err
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}

	return nil
}
