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
	"bytes"

	"github.com/maxim2266/str/internal/charset"
)

// SpanChars returns the length of the longest prefix
// of s made only of bytes that occur in set.
func SpanChars(s, set Str) int {
	if s.IsEmpty() || set.IsEmpty() {
		return 0
	}
	cs := charset.New(set.Bytes())
	return cs.Span(s.Bytes())
}

// SpanNonMatchingChars returns the length of the longest
// prefix of s made only of bytes that do not occur in set.
func SpanNonMatchingChars(s, set Str) int {
	if s.IsEmpty() {
		return 0
	}
	if set.IsEmpty() {
		return s.Len()
	}
	cs := charset.New(set.Bytes())
	return cs.Search(s.Bytes())
}

// SpanUntilSubstring returns the offset of the first
// occurrence of sub in s, or s.Len() if there is none.
// It returns 0 if either argument is empty.
func SpanUntilSubstring(s, sub Str) int {
	if s.IsEmpty() || sub.IsEmpty() {
		return 0
	}
	if i := bytes.Index(s.Bytes(), sub.Bytes()); i >= 0 {
		return i
	}
	return s.Len()
}

// ReplaceChars replaces every byte of *ps that occurs
// in set with repl (an empty repl deletes it) and returns
// the number of bytes replaced. *ps is not modified
// when nothing matches.
func ReplaceChars(ps *Str, set, repl Str) int {
	if ps.IsEmpty() || set.IsEmpty() {
		return 0
	}
	cs := charset.New(set.Bytes())
	p := ps.Bytes()
	var b builder
	n, start := 0, 0
	for i, c := range p {
		if cs.Has(c) {
			b.appendBytes(p[start:i])
			b.append(repl)
			start = i + 1
			n++
		}
	}
	if n == 0 {
		return 0
	}
	b.appendBytes(p[start:])
	b.finish(ps)
	return n
}

// ReplaceCharSpans replaces every maximal run of bytes
// of *ps that occur in set with a single repl and returns
// the number of runs replaced.
func ReplaceCharSpans(ps *Str, set, repl Str) int {
	if ps.IsEmpty() || set.IsEmpty() {
		return 0
	}
	cs := charset.New(set.Bytes())
	p := ps.Bytes()
	var b builder
	n, start := 0, 0
	for i := 0; i < len(p); {
		j := i + cs.Search(p[i:])
		if j == len(p) {
			break
		}
		k := j + cs.Span(p[j:])
		b.appendBytes(p[start:j])
		b.append(repl)
		start, i = k, k
		n++
	}
	if n == 0 {
		return 0
	}
	b.appendBytes(p[start:])
	b.finish(ps)
	return n
}

// ReplaceSubstring replaces every non-overlapping
// occurrence of sub in *ps with repl, scanning from the
// left, and returns the number of replacements.
func ReplaceSubstring(ps *Str, sub, repl Str) int {
	if ps.IsEmpty() || sub.IsEmpty() {
		return 0
	}
	p, pat := ps.Bytes(), sub.Bytes()
	var b builder
	n, start := 0, 0
	for {
		i := bytes.Index(p[start:], pat)
		if i < 0 {
			break
		}
		b.appendBytes(p[start : start+i])
		b.append(repl)
		start += i + len(pat)
		n++
	}
	if n == 0 {
		return 0
	}
	b.appendBytes(p[start:])
	b.finish(ps)
	return n
}
