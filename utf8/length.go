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

import (
	"encoding/binary"
	"math/bits"
)

const highBits = 0x8080808080808080

// ASCIIPrefix returns the length of the longest
// prefix of p that consists of ASCII bytes only.
// It tests eight bytes at a time.
func ASCIIPrefix(p []byte) int {
	i := 0
	for ; len(p)-i >= 8; i += 8 {
		if w := binary.LittleEndian.Uint64(p[i:]) & highBits; w != 0 {
			return i + bits.TrailingZeros64(w)/8
		}
	}
	for i < len(p) && p[i] < RuneSelf {
		i++
	}
	return i
}

// ValidRuneCount returns the number of codepoints
// in p, which must be valid UTF-8.
//
// ASCII runs are skipped with ASCIIPrefix; every other
// codepoint is stepped over by its lead byte alone.
// Invalid input does not panic, but the count is
// then unspecified.
func ValidRuneCount(p []byte) int {
	n := 0
	for {
		k := ASCIIPrefix(p)
		n += k
		p = p[k:]
		if len(p) == 0 {
			return n
		}
		size := int(seqTable[p[0]-0x80].size)
		if size == 0 || size > len(p) {
			size = 1
		}
		p = p[size:]
		n++
	}
}
