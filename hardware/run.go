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

package hardware

// The continueCheck() functions passed to Run() and RunForFrameCount() only
// run at frame boundaries but even so a full check every frame can be
// expensive. The PerformanceBrake is a standard value for filtering out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called at every frame boundary; returning false ends the run
// cleanly.
func (dmg *DMG) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	running := true
	var err error

	for running {
		if err = dmg.StepFrame(); err != nil {
			return err
		}

		running, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for FPS measurement and regression tests.
func (dmg *DMG) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	targetFrame := dmg.PPU.FrameNum() + numFrames

	running := true
	for running && dmg.PPU.FrameNum() < targetFrame {
		if err := dmg.StepFrame(); err != nil {
			return err
		}

		var err error
		running, err = continueCheck(dmg.PPU.FrameNum())
		if err != nil {
			return err
		}
	}

	return nil
}
