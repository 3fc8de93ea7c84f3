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

import "github.com/maxim2266/str/utf8"

var replacement = Lit(utf8.Replacement)

// ToValidUTF8 replaces every maximal invalid subpart of *ps
// with U+FFFD and returns the number of replacements.
//
// Valid input is left untouched: nothing is allocated
// and *ps keeps its storage. Otherwise *ps is replaced
// by a new owned value.
func ToValidUTF8(ps *Str) int {
	p := ps.Bytes()
	var b builder
	nrep, start := 0, 0
	for i := 0; i < len(p); {
		if p[i] < utf8.RuneSelf {
			i += utf8.ASCIIPrefix(p[i:])
			continue
		}
		r := utf8.Decode(p[i:])
		if r.Status == utf8.OK {
			i += int(r.NumBytes)
			continue
		}
		b.appendBytes(p[start:i])
		b.append(replacement)
		nrep++
		// an error of more than one byte reports every byte
		// up to and including the offending one, which has
		// to be decoded again
		if r.Status == utf8.Incomplete || r.NumBytes == 1 {
			i += int(r.NumBytes)
		} else {
			i += int(r.NumBytes) - 1
		}
		start = i
	}
	if nrep == 0 {
		return 0
	}
	b.appendBytes(p[start:])
	b.finish(ps)
	return nrep
}

// IsValidUTF8 returns true if s is entirely valid UTF-8.
func IsValidUTF8(s Str) bool {
	return utf8.Valid(s.Bytes())
}

// RuneCount returns the number of codepoints in s,
// which must be valid UTF-8.
func RuneCount(s Str) int {
	return utf8.ValidRuneCount(s.Bytes())
}
