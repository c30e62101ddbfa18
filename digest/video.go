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

// Package digest fingerprints the video output of the emulation. The
// fingerprint of a frame folds in the fingerprint of the frame before it,
// so a single hash value summarises an entire run. Two runs that end on
// the same hash rendered the same frames in the same order, which is what
// regression comparison relies on.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/ppu"
)

// Video is an implementation of the ppu.PixelRenderer interface. It
// generates a SHA-1 value of the image every frame. It does not display
// the image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{}

	// enough room for the whole frame plus the previous digest value at
	// the head
	dig.pixels = make([]byte, sha1.Size+ppu.Width*ppu.Height)

	return dig
}

// Hash returns the current digest value.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the current digest value to zero.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// FrameNum returns the number of the last frame folded into the digest.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame implements the ppu.PixelRenderer interface. Fingerprints are
// chained by copying the value of the last fingerprint to the head of the
// frame data before hashing.
func (dig *Video) NewFrame(frameNum int, frame *ppu.Frame) error {
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for y := 0; y < ppu.Height; y++ {
		for x := 0; x < ppu.Width; x++ {
			dig.pixels[i] = frame[y][x]
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum

	return nil
}
