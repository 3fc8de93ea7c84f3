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

// EncodedLen returns the number of bytes Encode
// would write for cp, or 0 if cp is a surrogate
// or lies beyond MaxRune.
func EncodedLen(cp rune) int {
	switch {
	case cp < 0:
		return 0
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp >= 0xD800 && cp <= 0xDFFF:
		return 0
	case cp < 0x10000:
		return 3
	case cp <= MaxRune:
		return 4
	default:
		return 0
	}
}

// Encode writes the UTF-8 encoding of cp into p
// and returns the number of bytes written.
// Surrogates (U+D800 to U+DFFF) and values above
// MaxRune are rejected by writing nothing and
// returning 0. Encode panics if p is too short
// to hold the encoding.
func Encode(p []byte, cp rune) int {
	switch EncodedLen(cp) {
	case 1:
		p[0] = byte(cp)
		return 1
	case 2:
		_ = p[1]
		p[0] = byte(cp>>6&0x1F) | 0xC0
		p[1] = byte(cp&0x3F) | 0x80
		return 2
	case 3:
		_ = p[2]
		p[0] = byte(cp>>12&0x0F) | 0xE0
		p[1] = byte(cp>>6&0x3F) | 0x80
		p[2] = byte(cp&0x3F) | 0x80
		return 3
	case 4:
		_ = p[3]
		p[0] = byte(cp>>18&0x07) | 0xF0
		p[1] = byte(cp>>12&0x3F) | 0x80
		p[2] = byte(cp>>6&0x3F) | 0x80
		p[3] = byte(cp&0x3F) | 0x80
		return 4
	default:
		return 0
	}
}
