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

import (
	"github.com/maxim2266/str/internal/mem"
	"github.com/maxim2266/str/utf8"
)

// addLen returns a+b, saturating just beyond the
// largest size the allocator will accept.
func addLen(a, b int) int {
	if b > mem.MaxAlloc-a {
		return mem.MaxAlloc
	}
	return a + b
}

// ConcatArray makes *dest an owned concatenation of src
// in a single allocation. Elements of src may alias *dest.
// An empty result clears *dest; a single non-empty element
// is cloned.
func ConcatArray(dest *Str, src []Str) {
	n, nonEmpty, last := 0, 0, 0
	for i := range src {
		if l := src[i].Len(); l > 0 {
			n = addLen(n, l)
			nonEmpty++
			last = i
		}
	}
	switch nonEmpty {
	case 0:
		dest.Clear()
	case 1:
		Clone(dest, src[last])
	default:
		buf := alloc(n)
		p := buf
		for i := range src {
			p = p[copy(p, src[i].Bytes()):]
		}
		dest.Assign(owned(buf))
	}
}

// Concat is the variadic form of ConcatArray.
func Concat(dest *Str, src ...Str) {
	ConcatArray(dest, src)
}

// JoinArray makes *dest an owned concatenation of src
// with sep inserted between adjacent elements.
func JoinArray(dest *Str, sep Str, src []Str) {
	if sep.IsEmpty() {
		ConcatArray(dest, src)
		return
	}
	switch len(src) {
	case 0:
		dest.Clear()
		return
	case 1:
		Clone(dest, src[0])
		return
	}
	n := 0
	for i := range src {
		n = addLen(n, src[i].Len())
	}
	for i := 1; i < len(src); i++ {
		n = addLen(n, sep.Len())
	}
	buf := alloc(n)
	p := buf[copy(buf, src[0].Bytes()):]
	for i := 1; i < len(src); i++ {
		p = p[copy(p, sep.Bytes()):]
		p = p[copy(p, src[i].Bytes()):]
	}
	dest.Assign(owned(buf))
}

// Join is the variadic form of JoinArray.
func Join(dest *Str, sep Str, src ...Str) {
	JoinArray(dest, sep, src)
}

// JoinArrayIgnoreEmpty is like JoinArray, except that
// empty elements of src are skipped together with
// their separators.
func JoinArrayIgnoreEmpty(dest *Str, sep Str, src []Str) {
	if sep.IsEmpty() {
		ConcatArray(dest, src)
		return
	}
	n, nonEmpty, last := 0, 0, 0
	for i := range src {
		if l := src[i].Len(); l > 0 {
			n = addLen(n, l)
			nonEmpty++
			last = i
		}
	}
	switch nonEmpty {
	case 0:
		dest.Clear()
		return
	case 1:
		Clone(dest, src[last])
		return
	}
	for i := 1; i < nonEmpty; i++ {
		n = addLen(n, sep.Len())
	}
	buf := alloc(n)
	p := buf
	first := true
	for i := range src {
		if src[i].IsEmpty() {
			continue
		}
		if !first {
			p = p[copy(p, sep.Bytes()):]
		}
		p = p[copy(p, src[i].Bytes()):]
		first = false
	}
	dest.Assign(owned(buf))
}

// JoinIgnoreEmpty is the variadic form of JoinArrayIgnoreEmpty.
func JoinIgnoreEmpty(dest *Str, sep Str, src ...Str) {
	JoinArrayIgnoreEmpty(dest, sep, src)
}

// repeatLen returns l*n, saturating at mem.MaxAlloc so that
// an oversized request reaches the allocator failure path.
func repeatLen(l, n int) int {
	if n > mem.MaxAlloc/l {
		return mem.MaxAlloc
	}
	return l * n
}

// Repeat makes *dest an owned value holding n copies
// of its current content. Repeating once leaves *dest
// unchanged; repeating zero times clears it.
func Repeat(dest *Str, n int) {
	l := dest.Len()
	switch {
	case n <= 0 || l == 0:
		dest.Clear()
		return
	case n == 1:
		return
	}
	total := repeatLen(l, n)
	buf := alloc(total)
	done := copy(buf, dest.Bytes())
	for done < total {
		done += copy(buf[done:], buf[:done])
	}
	dest.Assign(owned(buf))
}

// AppendCodepoint appends the UTF-8 encoding of cp to *dest.
// It returns false, leaving *dest untouched, if cp is
// a surrogate or lies beyond U+10FFFF.
func AppendCodepoint(dest *Str, cp rune) bool {
	var tmp [utf8.UTFMax]byte
	n := utf8.Encode(tmp[:], cp)
	if n == 0 {
		return false
	}
	Concat(dest, *dest, RefBytes(tmp[:n]))
	return true
}
