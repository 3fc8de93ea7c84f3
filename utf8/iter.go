// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utf8

// Iter walks the codepoints of a byte window.
//
//	it := utf8.NewIter(p)
//	for it.Next() {
//		use(it.Codepoint())
//	}
//	if it.Status() != utf8.OK {
//		// stopped at a defect at it.Offset()
//	}
type Iter struct {
	src    []byte
	pos    int
	cp     rune
	status Status
}

// NewIter returns an iterator positioned
// before the first codepoint of p.
func NewIter(p []byte) Iter {
	return Iter{src: p}
}

// Next advances to the next codepoint. It returns
// false at the end of the input or at the first
// invalid or incomplete sequence.
func (it *Iter) Next() bool {
	if it.status != OK || it.pos >= len(it.src) {
		return false
	}
	r := Decode(it.src[it.pos:])
	if r.Status != OK {
		it.status = r.Status
		return false
	}
	it.cp = r.Codepoint
	it.pos += int(r.NumBytes)
	return true
}

// Codepoint returns the codepoint produced
// by the last successful call to Next.
func (it *Iter) Codepoint() rune { return it.cp }

// Status is OK unless iteration stopped
// at a malformed sequence.
func (it *Iter) Status() Status { return it.status }

// Offset returns the number of bytes consumed so far.
// After a failed Next it is the offset of the defect.
func (it *Iter) Offset() int { return it.pos }
