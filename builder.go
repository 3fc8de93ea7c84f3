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

package str

// builderSize is the number of fragments
// a builder holds before flattening them.
const builderSize = 64

// builder accumulates fragments as views and
// flattens them into one owned value in slot 0
// whenever the slots run out, so the memory
// held at any time is bounded by the slot count
// times the average fragment size.
//
// The storage behind every appended view must
// stay alive until finish has been called.
type builder struct {
	count int
	buff  [builderSize]Str
}

func (b *builder) append(s Str) {
	if s.IsEmpty() {
		return
	}
	b.buff[b.count] = Ref(s)
	if b.count++; b.count == builderSize {
		ConcatArray(&b.buff[0], b.buff[:])
		b.count = 1
	}
}

func (b *builder) appendBytes(p []byte) {
	b.append(RefBytes(p))
}

// finish flattens the accumulated fragments
// into *dest and empties the builder.
func (b *builder) finish(dest *Str) {
	if b.count != 1 || b.buff[0].IsRef() {
		ConcatArray(&b.buff[0], b.buff[:b.count])
	}
	dest.Assign(b.buff[0].Move())
	b.count = 0
}
