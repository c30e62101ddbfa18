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
	"io"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware"
)

// sentinal error returned by the Run() loop when the measurement period has
// elapsed.
const timedOut = "performance: timed out"

// Check the performance of the emulator using the supplied cartridge. The
// machine is run flat out with no display and no frame rate cap for the
// specified duration; the achieved frame rate is written to output.
//
// A cpu profile, a memory profile, or both, are created as defined by the
// profile argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, duration string) error {
	dmg := hardware.NewDMG()

	err := dmg.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := dmg.PPU.FrameNum()

	runner := func() error {
		// expires when the measurement period has elapsed. a false value
		// signals the end of the leadtime instead
		timerChan := make(chan bool)

		// force a two second leadtime to allow the frame rate to settle down
		// and then restart the timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check the timer channel every PerformanceBrake frames.
		// checking it is relatively expensive
		performanceBrake := 0

		return dmg.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return false, curated.Errorf(timedOut)
					}

					// the leadtime has concluded. measurement starts here
					startFrame = dmg.PPU.FrameNum()
				default:
				}
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := dmg.PPU.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
