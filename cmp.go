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

import "bytes"

// Cmp compares s1 and s2 lexicographically by content
// and returns -1, 0 or +1. When one is a prefix of the
// other, the shorter one is less.
func Cmp(s1, s2 Str) int {
	return bytes.Compare(s1.Bytes(), s2.Bytes())
}

// Eq returns true if s1 and s2 have the same content.
func Eq(s1, s2 Str) bool {
	return bytes.Equal(s1.Bytes(), s2.Bytes())
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// CmpCI is like Cmp, but ASCII letters
// compare without regard to case.
func CmpCI(s1, s2 Str) int {
	p1, p2 := s1.Bytes(), s2.Bytes()
	n := min(len(p1), len(p2))
	for i := 0; i < n; i++ {
		c1, c2 := lower(p1[i]), lower(p2[i])
		if c1 != c2 {
			if c1 < c2 {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(p1) < len(p2):
		return -1
	case len(p1) > len(p2):
		return 1
	default:
		return 0
	}
}

// EqCI returns true if s1 and s2 are equal
// under ASCII case folding.
func EqCI(s1, s2 Str) bool {
	return s1.Len() == s2.Len() && CmpCI(s1, s2) == 0
}

// HasPrefix tests whether s begins with prefix.
// Every string has the empty prefix.
func HasPrefix(s, prefix Str) bool {
	return bytes.HasPrefix(s.Bytes(), prefix.Bytes())
}

// HasSuffix tests whether s ends with suffix.
// Every string has the empty suffix.
func HasSuffix(s, suffix Str) bool {
	return bytes.HasSuffix(s.Bytes(), suffix.Bytes())
}
