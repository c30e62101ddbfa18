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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/digest"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/test"
)

func TestVideo_chainedFingerprint(t *testing.T) {
	var blank ppu.Frame
	var lit ppu.Frame
	lit[0][0] = 3

	a := digest.NewVideo()
	b := digest.NewVideo()

	// identical frame sequences produce identical digests
	test.ExpectedSuccess(t, a.NewFrame(1, &blank))
	test.ExpectedSuccess(t, b.NewFrame(1, &blank))
	test.Equate(t, a.Hash(), b.Hash())

	// a different frame diverges the chain for good
	test.ExpectedSuccess(t, a.NewFrame(2, &lit))
	test.ExpectedSuccess(t, b.NewFrame(2, &blank))
	if a.Hash() == b.Hash() {
		t.Errorf("different frames produced the same digest")
	}

	test.ExpectedSuccess(t, a.NewFrame(3, &blank))
	test.ExpectedSuccess(t, b.NewFrame(3, &blank))
	if a.Hash() == b.Hash() {
		t.Errorf("chained digests converged after diverging")
	}
}

func TestVideo_orderMatters(t *testing.T) {
	var blank ppu.Frame
	var lit ppu.Frame
	lit[10][10] = 2

	a := digest.NewVideo()
	b := digest.NewVideo()

	test.ExpectedSuccess(t, a.NewFrame(1, &blank))
	test.ExpectedSuccess(t, a.NewFrame(2, &lit))
	test.ExpectedSuccess(t, b.NewFrame(1, &lit))
	test.ExpectedSuccess(t, b.NewFrame(2, &blank))

	if a.Hash() == b.Hash() {
		t.Errorf("frame order did not affect the digest")
	}

	test.Equate(t, a.FrameNum(), 2)
}

func TestVideo_resetDigest(t *testing.T) {
	var blank ppu.Frame

	a := digest.NewVideo()
	initial := a.Hash()

	test.ExpectedSuccess(t, a.NewFrame(1, &blank))
	if a.Hash() == initial {
		t.Errorf("digest did not change on a new frame")
	}

	a.ResetDigest()
	test.Equate(t, a.Hash(), initial)
}
