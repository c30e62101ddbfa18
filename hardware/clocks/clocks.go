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

// Package clocks defines the timing constants for the DMG machine. Every
// component in the hardware package advances against the same master clock.
package clocks

// Master is the frequency of the master clock in Hz. All cycle counts in the
// emulation are expressed in master clock cycles (sometimes called T-cycles).
// A machine cycle is four master cycles; the emulation does not deal in
// machine cycles.
const Master = 4194304

// CyclesScanline is the number of master cycles in one scanline of the
// display. 154 scanlines in a frame, of which 144 are visible.
const (
	CyclesScanline = 456
	ScanlinesFrame = 154
)

// CyclesFrame is the number of master cycles in one complete frame of the
// display: 154 scanlines of 456 cycles.
const CyclesFrame = CyclesScanline * ScanlinesFrame

// FramesPerSecond is the refresh rate implied by the master clock and the
// frame cycle budget. Wall-clock pacing to this rate is the responsibility of
// whatever is driving the emulation, not of the hardware package.
const FramesPerSecond = float32(Master) / float32(CyclesFrame)
