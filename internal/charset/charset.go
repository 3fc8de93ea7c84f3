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

// Package charset implements a byte-class matcher:
// a 256-bit set of byte values that is cheap enough
// to build on every call.
package charset

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Set is a set of byte values.
// The zero Set is empty.
type Set [4]uint64

// New returns the set of bytes that occur in chars.
func New(chars []byte) Set {
	var s Set
	for _, c := range chars {
		setBit(s[:], c)
	}
	return s
}

// Add inserts c into s.
func (s *Set) Add(c byte) { setBit(s[:], c) }

// Has returns whether c is a member of s.
func (s *Set) Has(c byte) bool { return testBit(s[:], c) }

// Empty returns true if s has no members.
func (s *Set) Empty() bool {
	return s[0]|s[1]|s[2]|s[3] == 0
}

// Span returns the length of the longest prefix
// of p consisting only of members of s.
func (s *Set) Span(p []byte) int {
	for i, c := range p {
		if !s.Has(c) {
			return i
		}
	}
	return len(p)
}

// Search returns the index of the first member
// of s in p, or len(p) if there is none.
func (s *Set) Search(p []byte) int {
	for i, c := range p {
		if s.Has(c) {
			return i
		}
	}
	return len(p)
}

// testBit checks if the k-th bit is set in "in"
func testBit[T constraints.Unsigned, K constraints.Integer](in []T, k K) bool {
	w := uintptr(unsafe.Sizeof(in[0]) * 8)
	return in[uintptr(k)/w]&(T(1)<<(uintptr(k)%w)) != 0
}

// setBit sets the k-th bit in "in"
func setBit[T constraints.Unsigned, K constraints.Integer](in []T, k K) {
	w := uintptr(unsafe.Sizeof(in[0]) * 8)
	in[uintptr(k)/w] |= T(1) << (uintptr(k) % w)
}
