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

// Package str implements a byte string value that tells
// borrowed views apart from owned heap buffers without a
// separate variant tag, a UTF-8 repair pass, and
// single-allocation concatenation.
//
// A Str is two machine words: a data pointer and a word
// holding the length shifted left by one, with the lowest
// bit set when the value owns its buffer. Views never own
// anything and must not outlive the storage they refer to.
// An owned value holds a buffer of exactly Len()+1 bytes,
// the last of which is a zero sentinel, and it must be
// released exactly once (see Free, Assign, Clear and Move).
//
// The zero Str is the null value: an empty view that is
// always safe to release.
//
// Values are not safe for concurrent mutation; distinct
// values that alias the same read-only storage may be
// used from different goroutines.
package str

import (
	"unsafe"

	"github.com/maxim2266/str/internal/mem"
)

// Str is a string value: either a borrowed view
// or the owner of a heap buffer.
type Str struct {
	ptr  *byte
	info uint // length << 1 | owner bit
}

const ownerBit = 1

// zero is what Ptr returns for the null value.
var zero byte

func refInfo(n int) uint   { return uint(n) << 1 }
func ownerInfo(n int) uint { return uint(n)<<1 | ownerBit }

// Len returns the number of bytes in s.
func (s Str) Len() int { return int(s.info >> 1) }

// IsEmpty returns true if s has no bytes.
func (s Str) IsEmpty() bool { return s.Len() == 0 }

// IsOwner returns true if s owns its buffer.
func (s Str) IsOwner() bool { return s.info&ownerBit != 0 }

// IsRef returns true if s is a borrowed view.
func (s Str) IsRef() bool { return !s.IsOwner() }

// Ptr returns a pointer to the first byte of s.
// For an empty value it points at a static zero byte.
func (s Str) Ptr() *byte {
	if s.ptr == nil {
		return &zero
	}
	return s.ptr
}

// End returns the offset one past the last byte of s,
// which is its length. Slicing expressions use it where
// a pointer past the end would be needed.
func (s Str) End() int { return s.Len() }

// Bytes returns the content of s without copying.
// The result must be treated as read-only and is
// valid only as long as s (or its owner) is.
func (s Str) Bytes() []byte {
	if s.ptr == nil {
		return nil
	}
	return unsafe.Slice(s.ptr, s.Len())
}

// String returns a copy of the content of s.
func (s Str) String() string {
	return string(s.Bytes())
}

// constructors

// Lit returns a view of the bytes of a Go string.
func Lit(s string) Str {
	if len(s) == 0 {
		return Str{}
	}
	return Str{unsafe.StringData(s), refInfo(len(s))}
}

// RefBytes returns a view of b. The caller must not
// modify b while the view is in use.
func RefBytes(b []byte) Str {
	if len(b) == 0 {
		return Str{}
	}
	return Str{unsafe.SliceData(b), refInfo(len(b))}
}

// Ref returns a view sharing the storage of s.
func Ref(s Str) Str {
	return Str{s.ptr, s.info &^ ownerBit}
}

// RefSlice returns a view of the bytes [start, end) of s,
// with the range clipped to [0, s.Len()]. An empty or
// inverted range yields the null value.
func RefSlice(s Str, start, end int) Str {
	n := s.Len()
	if end > n {
		end = n
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return Str{}
	}
	return Str{(*byte)(unsafe.Add(unsafe.Pointer(s.ptr), start)), refInfo(end - start)}
}

// alloc returns a buffer for an owned value of n > 0 bytes,
// with the sentinel already in place.
func alloc(n int) []byte {
	buf := mem.Alloc(n + 1)
	buf[n] = 0
	return buf[:n]
}

// owned wraps a buffer obtained from alloc.
func owned(buf []byte) Str {
	return Str{unsafe.SliceData(buf), ownerInfo(len(buf))}
}

// Clone makes *dest an owned copy of s. The previous
// content of *dest is released after the copy is made,
// so s may alias *dest.
func Clone(dest *Str, s Str) {
	n := s.Len()
	if n == 0 {
		dest.Clear()
		return
	}
	buf := alloc(n)
	copy(buf, s.Bytes())
	dest.Assign(owned(buf))
}

// Acquire takes ownership of buf, which the caller must
// not use afterwards. The terminating zero byte is written
// in place when cap(buf) > len(buf); otherwise the content
// is moved into a new buffer that has room for it.
// An empty buf yields the null value.
func Acquire(buf []byte) Str {
	n := len(buf)
	if n == 0 {
		return Str{}
	}
	if cap(buf) > n {
		full := buf[:n+1]
		full[n] = 0
		mem.Adopt(full)
		return owned(full[:n])
	}
	own := alloc(n)
	copy(own, buf)
	return owned(own)
}

// AcquireFrom transfers ownership out of *ps: the result
// owns the buffer (if *ps owned one) and *ps is left as
// a view of the same bytes.
func AcquireFrom(ps *Str) Str {
	s := *ps
	*ps = Ref(s)
	return s
}

// memory control

// Free releases the buffer owned by s, if any.
// It is a no-op for views and for the null value.
// Prefer (*Str).Clear where the binding stays in use.
func Free(s Str) {
	if s.IsOwner() && s.ptr != nil {
		mem.Free(unsafe.Slice(s.ptr, s.Len()+1))
	}
}

// Assign releases the previous content of *ps
// and installs s in its place.
func (ps *Str) Assign(s Str) {
	if *ps == s {
		return
	}
	Free(*ps)
	*ps = s
}

// Clear releases the content of *ps and
// resets it to the null value.
func (ps *Str) Clear() {
	Free(*ps)
	*ps = Str{}
}

// Move returns the value of *ps and resets *ps to
// the null value, so that ownership has exactly
// one holder.
func (ps *Str) Move() Str {
	s := *ps
	*ps = Str{}
	return s
}

// Swap exchanges the values of *a and *b.
func Swap(a, b *Str) {
	*a, *b = *b, *a
}
